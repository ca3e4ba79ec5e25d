package block_test

import (
	"testing"

	"github.com/Thog/kfs-libfs/pkg/block"
	"github.com/stretchr/testify/require"
)

func TestBlockZeroValue(t *testing.T) {
	// The zero value of a Block must be entirely zero filled, as
	// freshly created devices hand out copies of it.
	var b block.Block
	require.Len(t, b[:], block.LengthBytes)
	for _, c := range b {
		require.Equal(t, byte(0), c)
	}
}

func TestBlockIndexToByteOffset(t *testing.T) {
	require.Equal(t, int64(0), block.BlockIndex(0).ToByteOffset())
	require.Equal(t, int64(512), block.BlockIndex(1).ToByteOffset())
	require.Equal(t, int64(0x2504c00), block.BlockIndex(76057).ToByteOffset())
}

func TestBlockCountToSizeBytes(t *testing.T) {
	require.Equal(t, uint64(0), block.BlockCount(0).ToSizeBytes())
	require.Equal(t, uint64(1024), block.BlockCount(2).ToSizeBytes())
	require.Equal(t, uint64(1<<30), block.BlockCount(1<<21).ToSizeBytes())
}
