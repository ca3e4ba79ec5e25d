package blockdevice

import (
	"github.com/Thog/kfs-libfs/pkg/block"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type offsetBlockDevice struct {
	base  block.BlockDevice
	start block.BlockIndex
	count block.BlockCount
}

// NewOffsetBlockDevice creates a decorator for BlockDevice that exposes
// a contiguous window of an existing device, such as a single
// partition within a full disk image. Block index zero of the
// resulting device corresponds to block partitionStart of the
// underlying one.
func NewOffsetBlockDevice(base block.BlockDevice, partitionStart block.BlockIndex, count block.BlockCount) block.BlockDevice {
	return &offsetBlockDevice{
		base:  base,
		start: partitionStart,
		count: count,
	}
}

func (d *offsetBlockDevice) validateRange(blockCount int, index block.BlockIndex) error {
	// Comparing against the remaining space keeps the check free of
	// overflow for indices near the top of the range.
	if uint64(index) > uint64(d.count) || uint64(blockCount) > uint64(d.count)-uint64(index) {
		return status.Errorf(codes.InvalidArgument, "Transfer of %d blocks at index %d exceeds partition size of %d blocks", blockCount, index, d.count)
	}
	return nil
}

func (d *offsetBlockDevice) RawRead(blocks []block.Block, index block.BlockIndex) error {
	if err := d.validateRange(len(blocks), index); err != nil {
		return block.NewReadError(err)
	}
	return d.base.RawRead(blocks, d.start+index)
}

func (d *offsetBlockDevice) RawWrite(blocks []block.Block, index block.BlockIndex) error {
	if err := d.validateRange(len(blocks), index); err != nil {
		return block.NewWriteError(err)
	}
	return d.base.RawWrite(blocks, d.start+index)
}

func (d *offsetBlockDevice) Count() (block.BlockCount, error) {
	return d.count, nil
}
