package blockdevice

import (
	"io"

	"github.com/Thog/kfs-libfs/pkg/block"
)

// FileBlockDevice is a BlockDevice bound to a local file or device
// node. Writes may be cached by the operating system; Sync() blocks
// until all previously written blocks are persisted.
type FileBlockDevice interface {
	block.BlockDevice

	Sync() error
	io.Closer
}
