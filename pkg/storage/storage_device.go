package storage

// StorageDevice is an interface for interacting with a byte-addressable
// storage medium. Unlike a BlockDevice, reads and writes may start at
// arbitrary offsets and span arbitrary lengths; implementations take
// care of any alignment the underlying medium requires. This is the
// interface filesystem drivers consume.
type StorageDevice interface {
	// Read fills p with the data stored at the given offset. Either
	// all of p is filled, or an error is returned.
	Read(offset uint64, p []byte) error

	// Write stores p at the given offset. Either all of p is
	// written, or an error is returned. Bytes adjacent to the
	// written range are left unchanged.
	Write(offset uint64, p []byte) error

	// Len returns the total size of the storage device in bytes.
	Len() (uint64, error)
}
