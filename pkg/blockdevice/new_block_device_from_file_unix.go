//go:build darwin || freebsd || linux
// +build darwin freebsd linux

package blockdevice

import (
	"runtime/debug"
	"syscall"

	"github.com/Thog/kfs-libfs/pkg/block"
	"github.com/Thog/kfs-libfs/pkg/util"

	"golang.org/x/sys/unix"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type fileBlockDevice struct {
	fd   int
	data []byte
}

// NewBlockDeviceFromFile creates a BlockDevice that is backed by a
// regular file stored in a file system, such as a disk image. The file
// is created if it does not exist, and grown to hold the requested
// number of blocks. When zeroInitialize is set, existing contents are
// discarded.
//
// To speed up reads, a memory map is used. Writes go through the file
// descriptor, as writing through a memory map would trigger a page
// fault that causes data to be read.
func NewBlockDeviceFromFile(path string, minimumBlockCount block.BlockCount, zeroInitialize bool) (FileBlockDevice, error) {
	flags := unix.O_CREAT | unix.O_RDWR
	if zeroInitialize {
		flags |= unix.O_TRUNC
	}
	fd, err := unix.Open(path, flags, 0o666)
	if err != nil {
		return nil, util.StatusWrapf(err, "Failed to open file %#v", path)
	}

	// Grow the file to hold at least the requested number of
	// blocks, keeping any blocks it already holds.
	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		unix.Close(fd)
		return nil, util.StatusWrapf(err, "Failed to obtain size of file %#v", path)
	}
	blockCount := block.BlockCount((uint64(stat.Size) + block.LengthBytes - 1) / block.LengthBytes)
	if blockCount < minimumBlockCount {
		blockCount = minimumBlockCount
	}
	sizeBytes := int64(blockCount.ToSizeBytes())
	if err := unix.Ftruncate(fd, sizeBytes); err != nil {
		unix.Close(fd)
		return nil, util.StatusWrapf(err, "Failed to truncate file %#v to %d bytes", path, sizeBytes)
	}

	data, err := unix.Mmap(fd, 0, int(sizeBytes), syscall.PROT_READ, syscall.MAP_SHARED)
	if err != nil {
		unix.Close(fd)
		return nil, util.StatusWrapf(err, "Failed to memory map file %#v", path)
	}
	return &fileBlockDevice{
		fd:   fd,
		data: data,
	}, nil
}

func (d *fileBlockDevice) validateRange(blockCount int, index block.BlockIndex) error {
	if blockCount == 0 {
		return status.Error(codes.InvalidArgument, "At least one block must be transferred")
	}
	// Comparing against the remaining space keeps the check free of
	// overflow for indices near the top of the range.
	total := uint64(len(d.data)) / block.LengthBytes
	if uint64(index) > total || uint64(blockCount) > total-uint64(index) {
		return status.Errorf(codes.InvalidArgument, "Transfer of %d blocks at index %d exceeds device size of %d blocks", blockCount, index, total)
	}
	return nil
}

func (d *fileBlockDevice) RawRead(blocks []block.Block, index block.BlockIndex) (err error) {
	if err := d.validateRange(len(blocks), index); err != nil {
		return block.NewReadError(err)
	}

	// Install a page fault handler, so that I/O errors against the
	// memory map (e.g., due to disk failure) don't cause us to
	// crash.
	old := debug.SetPanicOnFault(true)
	defer func() {
		debug.SetPanicOnFault(old)
		if recover() != nil {
			err = block.NewReadError(status.Error(codes.Internal, "Page fault occurred while reading from memory map"))
		}
	}()

	offset := index.ToByteOffset()
	for i := range blocks {
		copy(blocks[i][:], d.data[offset:])
		offset += block.LengthBytes
	}
	return nil
}

func (d *fileBlockDevice) RawWrite(blocks []block.Block, index block.BlockIndex) error {
	if err := d.validateRange(len(blocks), index); err != nil {
		return block.NewWriteError(err)
	}

	// The pwrite() system call cannot return a size and error at
	// the same time. If an error occurs after one or more bytes are
	// written, it returns the size without an error (a "short
	// write"), so it must be invoked repeatedly.
	offset := index.ToByteOffset()
	for i := range blocks {
		p := blocks[i][:]
		for len(p) > 0 {
			n, err := unix.Pwrite(d.fd, p, offset)
			if err != nil {
				return block.NewWriteError(util.StatusWrapf(err, "Failed to write block at index %d", uint64(index)+uint64(i)))
			}
			p = p[n:]
			offset += int64(n)
		}
	}
	return nil
}

func (d *fileBlockDevice) Count() (block.BlockCount, error) {
	return block.BlockCount(uint64(len(d.data)) / block.LengthBytes), nil
}

func (d *fileBlockDevice) Sync() error {
	if err := unix.Fsync(d.fd); err != nil {
		return block.NewWriteError(util.StatusWrap(err, "Failed to synchronize file contents"))
	}
	return nil
}

func (d *fileBlockDevice) Close() error {
	var errs []error

	if err := unix.Munmap(d.data); err != nil {
		errs = append(errs, util.StatusWrap(err, "Failed to unmap memory region"))
	}

	if err := unix.Close(d.fd); err != nil {
		errs = append(errs, util.StatusWrap(err, "Failed to close file descriptor"))
	}

	if len(errs) == 0 {
		return nil
	}
	return util.StatusFromMultiple(errs)
}
