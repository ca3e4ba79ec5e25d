package util_test

import (
	"testing"

	"github.com/Thog/kfs-libfs/pkg/util"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestStatusWrap(t *testing.T) {
	err := util.StatusWrap(status.Error(codes.Internal, "Disk on fire"), "Failed to read block")
	s := status.Convert(err)
	require.Equal(t, codes.Internal, s.Code())
	require.Equal(t, "Failed to read block: Disk on fire", s.Message())
}

func TestStatusFromMultiple(t *testing.T) {
	require.NoError(t, util.StatusFromMultiple(nil))

	err := util.StatusFromMultiple([]error{
		status.Error(codes.Internal, "Failed to unmap memory region"),
		status.Error(codes.Unknown, "Failed to close file descriptor"),
	})
	s := status.Convert(err)
	require.Equal(t, codes.Internal, s.Code())
	require.Equal(t, "Failed to unmap memory region, Failed to close file descriptor", s.Message())
}
