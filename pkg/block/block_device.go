package block

// BlockDevice is an interface for interacting with a medium that
// stores data as an array of fixed-size blocks, such as a disk image,
// a partition or a memory-backed buffer. Block devices support random
// access reads and writes at block granularity; they differ from plain
// files in that their size is fixed and all I/O is block aligned.
//
// Implementations must reject requests whose addressed range
// [index, index + len(blocks)) does not lie entirely within Count().
// No atomicity is guaranteed across the blocks of a single call beyond
// what the medium itself offers.
//
// Implementations are expected to be safe for use from multiple
// goroutines, either by being stateless or by providing their own
// synchronization.
type BlockDevice interface {
	// RawRead reads len(blocks) contiguous blocks starting at the
	// given index, filling blocks in place. blocks must be
	// non-empty.
	RawRead(blocks []Block, index BlockIndex) error

	// RawWrite writes len(blocks) contiguous blocks starting at
	// the given index. blocks must be non-empty.
	RawWrite(blocks []Block, index BlockIndex) error

	// Count returns the total number of blocks held by the device.
	Count() (BlockCount, error)
}
