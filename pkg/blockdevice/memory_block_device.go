package blockdevice

import (
	"sync"

	"github.com/Thog/kfs-libfs/pkg/block"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type memoryBlockDevice struct {
	lock   sync.RWMutex
	blocks []block.Block
}

// NewMemoryBlockDevice creates a BlockDevice whose contents are stored
// in memory and lost when the device is discarded. It is mainly useful
// for testing and for mounting filesystem images that have already
// been loaded into memory.
func NewMemoryBlockDevice(count block.BlockCount) block.BlockDevice {
	return &memoryBlockDevice{
		blocks: make([]block.Block, count),
	}
}

func (d *memoryBlockDevice) validateRange(blockCount int, index block.BlockIndex) error {
	if blockCount == 0 {
		return status.Error(codes.InvalidArgument, "At least one block must be transferred")
	}
	// Comparing against the remaining space keeps the check free of
	// overflow for indices near the top of the range.
	total := uint64(len(d.blocks))
	if uint64(index) > total || uint64(blockCount) > total-uint64(index) {
		return status.Errorf(codes.InvalidArgument, "Transfer of %d blocks at index %d exceeds device size of %d blocks", blockCount, index, total)
	}
	return nil
}

func (d *memoryBlockDevice) RawRead(blocks []block.Block, index block.BlockIndex) error {
	d.lock.RLock()
	defer d.lock.RUnlock()

	if err := d.validateRange(len(blocks), index); err != nil {
		return block.NewReadError(err)
	}
	copy(blocks, d.blocks[index:])
	return nil
}

func (d *memoryBlockDevice) RawWrite(blocks []block.Block, index block.BlockIndex) error {
	d.lock.Lock()
	defer d.lock.Unlock()

	if err := d.validateRange(len(blocks), index); err != nil {
		return block.NewWriteError(err)
	}
	copy(d.blocks[index:], blocks)
	return nil
}

func (d *memoryBlockDevice) Count() (block.BlockCount, error) {
	return block.BlockCount(len(d.blocks)), nil
}
