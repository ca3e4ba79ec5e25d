package block

// LengthBytes is the size of a single block in bytes. All device I/O
// performed by this library is expressed in multiples of this size,
// and all offset arithmetic is defined in terms of it.
const LengthBytes = 512

// Block is a fixed-size buffer holding the contents of a single block
// on a block device. It is a plain value type; the zero value is a
// block filled with zero bytes.
type Block [LengthBytes]byte

// BlockIndex is the ordinal position of a block on a block device.
type BlockIndex uint64

// ToByteOffset converts the block index to an offset in bytes from the
// start of the device.
func (i BlockIndex) ToByteOffset() int64 {
	return int64(i) * LengthBytes
}

// BlockCount is the number of blocks held by a block device.
type BlockCount uint64

// ToSizeBytes converts the block count to a size in bytes.
func (c BlockCount) ToSizeBytes() uint64 {
	return uint64(c) * LengthBytes
}
