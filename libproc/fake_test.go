package libproc

import (
	"testing"

	"golang.org/x/sys/unix"
)

// fakeSyscaller stands in for the kernel during tests: each entry
// point is a function field returning canned byte buffers. Unset
// entry points fail with ENOSYS so a test can't silently exercise a
// call it didn't mean to.
type fakeSyscaller struct {
	listPIDs       func(kind, arg uint32, buf []byte) (int, error)
	pidInfo        func(pid, flavor int32, arg uint64, buf []byte) (int, error)
	pidFDInfo      func(pid, fd, flavor int32, buf []byte) (int, error)
	name           func(pid int32, buf []byte) (int, error)
	regionFileName func(pid int32, address uint64, buf []byte) (int, error)
	pidPath        func(pid int32, buf []byte) (int, error)
	libVersion     func() (int32, int32, int, error)
}

func (f *fakeSyscaller) ListPIDs(kind uint32, arg uint32, buf []byte) (int, error) {
	if f.listPIDs == nil {
		return -1, unix.ENOSYS
	}
	return f.listPIDs(kind, arg, buf)
}

func (f *fakeSyscaller) PidInfo(pid int32, flavor int32, arg uint64, buf []byte) (int, error) {
	if f.pidInfo == nil {
		return -1, unix.ENOSYS
	}
	return f.pidInfo(pid, flavor, arg, buf)
}

func (f *fakeSyscaller) PidFDInfo(pid int32, fd int32, flavor int32, buf []byte) (int, error) {
	if f.pidFDInfo == nil {
		return -1, unix.ENOSYS
	}
	return f.pidFDInfo(pid, fd, flavor, buf)
}

func (f *fakeSyscaller) Name(pid int32, buf []byte) (int, error) {
	if f.name == nil {
		return -1, unix.ENOSYS
	}
	return f.name(pid, buf)
}

func (f *fakeSyscaller) RegionFileName(pid int32, address uint64, buf []byte) (int, error) {
	if f.regionFileName == nil {
		return -1, unix.ENOSYS
	}
	return f.regionFileName(pid, address, buf)
}

func (f *fakeSyscaller) PidPath(pid int32, buf []byte) (int, error) {
	if f.pidPath == nil {
		return -1, unix.ENOSYS
	}
	return f.pidPath(pid, buf)
}

func (f *fakeSyscaller) LibVersion() (int32, int32, int, error) {
	if f.libVersion == nil {
		return 0, 0, -1, unix.ENOSYS
	}
	return f.libVersion()
}

// withSyscaller swaps the package syscall layer for the duration of a
// test and restores it afterwards.
func withSyscaller(t *testing.T, s Syscaller) {
	t.Helper()
	old := sys
	sys = s
	t.Cleanup(func() { sys = old })
}

func allZero(buf []byte) bool {
	for _, b := range buf {
		if b != 0 {
			return false
		}
	}
	return true
}
