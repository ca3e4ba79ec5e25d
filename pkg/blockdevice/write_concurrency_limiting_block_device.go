package blockdevice

import (
	"context"

	"github.com/Thog/kfs-libfs/pkg/block"

	"golang.org/x/sync/semaphore"
)

type writeConcurrencyLimitingBlockDevice struct {
	block.BlockDevice
	semaphore *semaphore.Weighted
}

// NewWriteConcurrencyLimitingBlockDevice is a decorator for BlockDevice
// that limits the number of calls to RawWrite() that may run in
// parallel. This can be used to prevent exhaustion of operating system
// level threads when many goroutines write to a file backed device,
// which can cause the Go runtime to crash the process.
func NewWriteConcurrencyLimitingBlockDevice(base block.BlockDevice, semaphore *semaphore.Weighted) block.BlockDevice {
	return &writeConcurrencyLimitingBlockDevice{
		BlockDevice: base,
		semaphore:   semaphore,
	}
}

func (d *writeConcurrencyLimitingBlockDevice) RawWrite(blocks []block.Block, index block.BlockIndex) error {
	if err := d.semaphore.Acquire(context.Background(), 1); err != nil {
		panic("acquiring semaphore with background context should never fail")
	}
	defer d.semaphore.Release(1)

	return d.BlockDevice.RawWrite(blocks, index)
}
