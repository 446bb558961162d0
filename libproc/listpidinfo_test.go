package libproc

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func putFDInfo(buf []byte, fd int32, fdType FDType) {
	binary.LittleEndian.PutUint32(buf[0:], uint32(fd))
	binary.LittleEndian.PutUint32(buf[4:], uint32(fdType))
}

func TestListFDsReturnsWhatTheKernelWrote(t *testing.T) {
	withSyscaller(t, &fakeSyscaller{
		pidInfo: func(pid, flavor int32, arg uint64, buf []byte) (int, error) {
			assert.Equal(t, int32(PidInfoFlavorListFDs), flavor)
			assert.Len(t, buf, 10*fdInfoSize)

			// The kernel fills three of the ten requested entries.
			putFDInfo(buf[0:], 0, FDTypeVNode)
			putFDInfo(buf[8:], 4, FDTypeSocket)
			putFDInfo(buf[16:], 5, FDTypeKQueue)
			return 3 * fdInfoSize, nil
		},
	})

	fds, err := ListFDs(100, 10)
	require.NoError(t, err)
	require.Len(t, fds, 3)

	assert.Equal(t, FDInfo{FD: 0, Type: FDTypeVNode}, fds[0])
	assert.Equal(t, FDInfo{FD: 4, Type: FDTypeSocket}, fds[1])
	assert.Equal(t, FDInfo{FD: 5, Type: FDTypeKQueue}, fds[2])
}

func TestListFDsFullBuffer(t *testing.T) {
	const maxLen = 4

	withSyscaller(t, &fakeSyscaller{
		pidInfo: func(pid, flavor int32, arg uint64, buf []byte) (int, error) {
			for i := 0; i < maxLen; i++ {
				putFDInfo(buf[i*fdInfoSize:], int32(i), FDTypePipe)
			}
			return maxLen * fdInfoSize, nil
		},
	})

	fds, err := ListFDs(100, maxLen)
	require.NoError(t, err)
	assert.Len(t, fds, maxLen)
}

func TestListFDsZeroReturnIsEmptyList(t *testing.T) {
	withSyscaller(t, &fakeSyscaller{
		pidInfo: func(pid, flavor int32, arg uint64, buf []byte) (int, error) {
			return 0, nil
		},
	})

	fds, err := ListFDs(100, 16)
	require.NoError(t, err)
	assert.NotNil(t, fds)
	assert.Empty(t, fds)
}

func TestListFDsNegativeReturnIsError(t *testing.T) {
	withSyscaller(t, &fakeSyscaller{
		pidInfo: func(pid, flavor int32, arg uint64, buf []byte) (int, error) {
			return -1, unix.ESRCH
		},
	})

	_, err := ListFDs(100, 16)
	require.Error(t, err)
	assert.True(t, errors.Is(err, unix.ESRCH))
}

func TestListFDsRejectsOversizedRequest(t *testing.T) {
	called := false

	withSyscaller(t, &fakeSyscaller{
		pidInfo: func(pid, flavor int32, arg uint64, buf []byte) (int, error) {
			called = true
			return 0, nil
		},
	})

	_, err := ListFDs(100, PathInfoMaxSize+1)
	require.ErrorIs(t, err, ErrTooManyElements)
	assert.False(t, called, "the query must be rejected before the syscall")
}

func TestListThreads(t *testing.T) {
	withSyscaller(t, &fakeSyscaller{
		pidInfo: func(pid, flavor int32, arg uint64, buf []byte) (int, error) {
			assert.Equal(t, int32(PidInfoFlavorListThreads), flavor)

			binary.LittleEndian.PutUint64(buf[0:], 0x1001)
			binary.LittleEndian.PutUint64(buf[8:], 0x1002)
			return 2 * threadIDSize, nil
		},
	})

	threads, err := ListThreads(100, 8)
	require.NoError(t, err)
	assert.Equal(t, []uint64{0x1001, 0x1002}, threads)
}

func TestFDTypeString(t *testing.T) {
	assert.Equal(t, "socket", FDTypeSocket.String())
	assert.Equal(t, "vnode", FDTypeVNode.String())
	assert.Equal(t, "unknown", FDType(99).String())
}
