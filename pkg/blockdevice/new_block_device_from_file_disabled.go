//go:build !darwin && !freebsd && !linux
// +build !darwin,!freebsd,!linux

package blockdevice

import (
	"github.com/Thog/kfs-libfs/pkg/block"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NewBlockDeviceFromFile creates a BlockDevice that is backed by a
// regular file stored in a file system, such as a disk image.
func NewBlockDeviceFromFile(path string, minimumBlockCount block.BlockCount, zeroInitialize bool) (FileBlockDevice, error) {
	return nil, status.Error(codes.Unimplemented, "File backed block devices are not supported on this platform")
}
