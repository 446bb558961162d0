//go:build darwin && cgo

package libproc

/*
#include <libproc.h>
*/
import "C"

import "unsafe"

// darwinSyscaller binds the real libproc library. Each method passes
// the caller's buffer straight through and captures errno via cgo's
// comma-error form, so a failing return value always travels with the
// errno observed at the call site.
type darwinSyscaller struct{}

func newDefaultSyscaller() Syscaller { return darwinSyscaller{} }

func bufPtr(buf []byte) unsafe.Pointer {
	if len(buf) == 0 {
		return nil
	}
	return unsafe.Pointer(&buf[0])
}

func (darwinSyscaller) ListPIDs(kind uint32, arg uint32, buf []byte) (int, error) {
	ret, err := C.proc_listpids(C.uint32_t(kind), C.uint32_t(arg), bufPtr(buf), C.uint32_t(len(buf)))
	return int(ret), err
}

func (darwinSyscaller) PidInfo(pid int32, flavor int32, arg uint64, buf []byte) (int, error) {
	ret, err := C.proc_pidinfo(C.int(pid), C.int(flavor), C.uint64_t(arg), bufPtr(buf), C.int(len(buf)))
	return int(ret), err
}

func (darwinSyscaller) PidFDInfo(pid int32, fd int32, flavor int32, buf []byte) (int, error) {
	ret, err := C.proc_pidfdinfo(C.int(pid), C.int(fd), C.int(flavor), bufPtr(buf), C.int(len(buf)))
	return int(ret), err
}

func (darwinSyscaller) Name(pid int32, buf []byte) (int, error) {
	ret, err := C.proc_name(C.int(pid), bufPtr(buf), C.uint32_t(len(buf)))
	return int(ret), err
}

func (darwinSyscaller) RegionFileName(pid int32, address uint64, buf []byte) (int, error) {
	ret, err := C.proc_regionfilename(C.int(pid), C.uint64_t(address), bufPtr(buf), C.uint32_t(len(buf)))
	return int(ret), err
}

func (darwinSyscaller) PidPath(pid int32, buf []byte) (int, error) {
	ret, err := C.proc_pidpath(C.int(pid), bufPtr(buf), C.uint32_t(len(buf)))
	return int(ret), err
}

func (darwinSyscaller) LibVersion() (int32, int32, int, error) {
	var major, minor C.int
	ret, err := C.proc_libversion(&major, &minor)
	return int32(major), int32(minor), int(ret), err
}
