package blockdevice

import (
	"io"
	"sync"

	"github.com/Thog/kfs-libfs/pkg/block"
	"github.com/Thog/kfs-libfs/pkg/eviction"
)

// CachedBlockDevice is a BlockDevice that keeps recently used blocks
// in memory. Writes are held back until the block is evicted, flushed
// explicitly, or the device is closed.
type CachedBlockDevice interface {
	block.BlockDevice

	// Flush writes every dirty block held by the cache back to the
	// underlying device and marks it clean. The cache contents and
	// their eviction order are left unchanged. When a write-back
	// fails, flushing stops there: blocks already written are
	// clean, the failing block and blocks not yet reached keep
	// their current state.
	Flush() error

	// Close flushes the cache one final time. Data held in dirty
	// blocks is lost if the returned error is ignored and the
	// device is discarded afterwards. The underlying device is not
	// closed.
	io.Closer
}

type cachedBlock struct {
	data  block.Block
	dirty bool
}

type cachedBlockDevice struct {
	device   block.BlockDevice
	capacity int

	lock        sync.Mutex
	blocks      map[block.BlockIndex]*cachedBlock
	evictionSet eviction.Set[block.BlockIndex]
}

// NewCachedBlockDevice creates a decorator for BlockDevice that reduces
// the number of operations issued against it by keeping up to capacity
// blocks in memory, evicting blocks according to the provided cache
// replacement set. NewLRUSet() is the conventional choice of policy for
// filesystem access patterns.
//
// The cache is guarded by a single lock that is held for the full
// duration of every operation, including device I/O triggered by
// eviction. A capacity of zero turns the cache into a plain
// pass-through.
func NewCachedBlockDevice(base block.BlockDevice, evictionSet eviction.Set[block.BlockIndex], capacity int) CachedBlockDevice {
	return &cachedBlockDevice{
		device:      base,
		capacity:    capacity,
		blocks:      map[block.BlockIndex]*cachedBlock{},
		evictionSet: evictionSet,
	}
}

// insert adds a block to the cache, making room by evicting the block
// at the front of the eviction order first. Evicted blocks that are
// dirty are written back before their slot is reused. The caller must
// hold the lock, and index may not already be present.
func (d *cachedBlockDevice) insert(index block.BlockIndex, entry cachedBlock) error {
	if d.capacity == 0 {
		return nil
	}
	for len(d.blocks) >= d.capacity {
		victimIndex := d.evictionSet.Peek()
		victim := d.blocks[victimIndex]
		if victim.dirty {
			if err := d.device.RawWrite([]block.Block{victim.data}, victimIndex); err != nil {
				return err
			}
		}
		d.evictionSet.Remove()
		delete(d.blocks, victimIndex)
	}
	d.blocks[index] = &entry
	d.evictionSet.Insert(index)
	return nil
}

func (d *cachedBlockDevice) RawRead(blocks []block.Block, index block.BlockIndex) error {
	d.lock.Lock()
	defer d.lock.Unlock()

	// When every requested block is in cache, the device doesn't
	// need to be touched at all. The size comparison makes the
	// common case of a miss on a large request cheap.
	fullyCached := len(blocks) <= len(d.blocks)
	if fullyCached {
		for i := range blocks {
			if _, ok := d.blocks[index+block.BlockIndex(i)]; !ok {
				fullyCached = false
				break
			}
		}
	}

	if !fullyCached {
		if err := d.device.RawRead(blocks, index); err != nil {
			return err
		}
	}

	for i := range blocks {
		blockIndex := index + block.BlockIndex(i)
		if entry, ok := d.blocks[blockIndex]; ok {
			d.evictionSet.Touch(blockIndex)
			// Dirty blocks shadow whatever the device
			// returned. If the device wasn't read at all,
			// clean blocks need to be copied out as well.
			if fullyCached || entry.dirty {
				blocks[i] = entry.data
			}
		} else if err := d.insert(blockIndex, cachedBlock{data: blocks[i]}); err != nil {
			return err
		}
	}
	return nil
}

func (d *cachedBlockDevice) RawWrite(blocks []block.Block, index block.BlockIndex) error {
	d.lock.Lock()
	defer d.lock.Unlock()

	if len(blocks) < d.capacity {
		return d.writeSmall(blocks, index)
	}
	return d.writeLarge(blocks, index)
}

// writeSmall stores every block in the cache as dirty, deferring all
// device writes to eviction, Flush() or Close().
func (d *cachedBlockDevice) writeSmall(blocks []block.Block, index block.BlockIndex) error {
	for i := range blocks {
		blockIndex := index + block.BlockIndex(i)
		if entry, ok := d.blocks[blockIndex]; ok {
			entry.data = blocks[i]
			entry.dirty = true
			d.evictionSet.Touch(blockIndex)
		} else if err := d.insert(blockIndex, cachedBlock{data: blocks[i], dirty: true}); err != nil {
			return err
		}
	}
	return nil
}

// writeLarge handles writes that span at least the full cache
// capacity. Storing such a write block by block would replace the
// entire cache contents and turn every eviction into a device write,
// so the data is written to the device in a single operation instead.
func (d *cachedBlockDevice) writeLarge(blocks []block.Block, index block.BlockIndex) error {
	end := index + block.BlockIndex(len(blocks))

	// Dirty blocks outside the written range must be persisted
	// before their slots can be reused. Dirty blocks inside the
	// range are superseded by this write, so writing them back
	// first would be redundant.
	for blockIndex, entry := range d.blocks {
		if entry.dirty && (blockIndex < index || blockIndex >= end) {
			if err := d.device.RawWrite([]block.Block{entry.data}, blockIndex); err != nil {
				return err
			}
			entry.dirty = false
		}
	}

	if err := d.device.RawWrite(blocks, index); err != nil {
		return err
	}

	// The device now holds newer data for the written range than
	// any cache entry covering it. Dropping such entries only once
	// the bulk write has succeeded keeps their dirty data
	// available for retries when it fails.
	for blockIndex := range d.blocks {
		if blockIndex >= index && blockIndex < end {
			d.evictionSet.Erase(blockIndex)
			delete(d.blocks, blockIndex)
		}
	}

	// Repopulate the cache with a capacity-bounded prefix of the
	// write. These blocks match the device, so they are inserted
	// clean; the whole cache is clean at this point, making the
	// resulting evictions write-free.
	for i := 0; i < len(blocks) && i < d.capacity; i++ {
		if err := d.insert(index+block.BlockIndex(i), cachedBlock{data: blocks[i]}); err != nil {
			return err
		}
	}
	return nil
}

func (d *cachedBlockDevice) Count() (block.BlockCount, error) {
	return d.device.Count()
}

func (d *cachedBlockDevice) Flush() error {
	d.lock.Lock()
	defer d.lock.Unlock()

	for blockIndex, entry := range d.blocks {
		if entry.dirty {
			if err := d.device.RawWrite([]block.Block{entry.data}, blockIndex); err != nil {
				return err
			}
			entry.dirty = false
		}
	}
	return nil
}

func (d *cachedBlockDevice) Close() error {
	return d.Flush()
}
