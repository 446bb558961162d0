//go:build !darwin || !cgo

package libproc

import "golang.org/x/sys/unix"

// stubSyscaller stands in where the libproc library does not exist.
// Every call fails with ENOTSUP, which surfaces as an ordinary
// QueryError; tests replace the syscall layer with a fake anyway, so
// the decode logic stays exercisable on any platform.
type stubSyscaller struct{}

func newDefaultSyscaller() Syscaller { return stubSyscaller{} }

func (stubSyscaller) ListPIDs(uint32, uint32, []byte) (int, error) {
	return -1, unix.ENOTSUP
}

func (stubSyscaller) PidInfo(int32, int32, uint64, []byte) (int, error) {
	return -1, unix.ENOTSUP
}

func (stubSyscaller) PidFDInfo(int32, int32, int32, []byte) (int, error) {
	return -1, unix.ENOTSUP
}

func (stubSyscaller) Name(int32, []byte) (int, error) {
	return -1, unix.ENOTSUP
}

func (stubSyscaller) RegionFileName(int32, uint64, []byte) (int, error) {
	return -1, unix.ENOTSUP
}

func (stubSyscaller) PidPath(int32, []byte) (int, error) {
	return -1, unix.ENOTSUP
}

func (stubSyscaller) LibVersion() (int32, int32, int, error) {
	return 0, 0, -1, unix.ENOTSUP
}
