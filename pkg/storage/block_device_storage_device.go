package storage

import (
	"github.com/Thog/kfs-libfs/pkg/block"
)

type blockDeviceStorageDevice struct {
	device block.BlockDevice
}

// NewBlockDeviceStorageDevice creates a StorageDevice on top of a
// BlockDevice, translating byte ranges at arbitrary offsets into
// block-aligned transfers. A request spanning k blocks costs k block
// reads, plus k block writes when writing: partial blocks are handled
// by reading the whole block, overlaying the affected bytes and
// writing the whole block back.
//
// Wrapping the BlockDevice in a CachedBlockDevice first makes the
// per-block transfers considerably cheaper for overlapping requests.
func NewBlockDeviceStorageDevice(base block.BlockDevice) StorageDevice {
	return &blockDeviceStorageDevice{
		device: base,
	}
}

func (d *blockDeviceStorageDevice) Read(offset uint64, p []byte) error {
	var blocks [1]block.Block
	for len(p) > 0 {
		blockIndex := block.BlockIndex(offset / block.LengthBytes)
		blockOffset := offset % block.LengthBytes
		if err := d.device.RawRead(blocks[:], blockIndex); err != nil {
			return ConvertBlockError(err)
		}
		n := copy(p, blocks[0][blockOffset:])
		p = p[n:]
		offset += uint64(n)
	}
	return nil
}

func (d *blockDeviceStorageDevice) Write(offset uint64, p []byte) error {
	var blocks [1]block.Block
	for len(p) > 0 {
		blockIndex := block.BlockIndex(offset / block.LengthBytes)
		blockOffset := offset % block.LengthBytes
		// Read the block first, so that bytes outside the
		// written range are preserved.
		if err := d.device.RawRead(blocks[:], blockIndex); err != nil {
			return ConvertBlockError(err)
		}
		n := copy(blocks[0][blockOffset:], p)
		if err := d.device.RawWrite(blocks[:], blockIndex); err != nil {
			return ConvertBlockError(err)
		}
		p = p[n:]
		offset += uint64(n)
	}
	return nil
}

func (d *blockDeviceStorageDevice) Len() (uint64, error) {
	count, err := d.device.Count()
	if err != nil {
		return 0, ConvertBlockError(err)
	}
	return count.ToSizeBytes(), nil
}
