package blockdevice_test

import (
	"testing"

	"github.com/Thog/kfs-libfs/internal/mock"
	"github.com/Thog/kfs-libfs/pkg/block"
	"github.com/Thog/kfs-libfs/pkg/blockdevice"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"golang.org/x/sync/semaphore"
)

func TestWriteConcurrencyLimitingBlockDevice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	base := mock.NewMockBlockDevice(ctrl)
	device := blockdevice.NewWriteConcurrencyLimitingBlockDevice(base, semaphore.NewWeighted(1))

	// Both operations are forwarded unchanged; only the number of
	// concurrently running writes is bounded.
	aa := filledBlock(0xaa)
	base.EXPECT().RawWrite([]block.Block{aa}, block.BlockIndex(0)).Return(nil)
	require.NoError(t, device.RawWrite([]block.Block{aa}, 0))

	base.EXPECT().RawRead(gomock.Len(1), block.BlockIndex(1)).Return(nil)
	var out [1]block.Block
	require.NoError(t, device.RawRead(out[:], 1))

	base.EXPECT().Count().Return(block.BlockCount(16), nil)
	count, err := device.Count()
	require.NoError(t, err)
	require.Equal(t, block.BlockCount(16), count)
}
