// Package libproc provides typed queries against the macOS libproc
// interface: per-process CPU and memory accounting, open file
// descriptor tables, thread lists and socket connection state.
//
// The architecture keeps the kernel boundary behind a small interface:
// 1. Record types carry their own protocol flavor and exact byte size,
//    so a query can never pair a buffer with the wrong layout
// 2. All decoding happens at explicit byte offsets rather than through
//    struct overlays, keeping the wire contract in one place
// 3. Tests substitute a fake syscall layer returning canned buffers,
//    so the decode logic runs on any platform
package libproc

// Syscaller is the boundary to the host libproc library. Every query
// in this package goes through exactly one of these entry points.
//
// The integer return value is the raw result of the underlying call:
// for everything except LibVersion, values > 0 are the number of bytes
// written and values <= 0 are failures. The error return carries the
// errno captured at the call site and is only meaningful when the raw
// result indicates failure.
type Syscaller interface {
	// ListPIDs wraps proc_listpids. A nil buf issues the size probe.
	ListPIDs(kind uint32, arg uint32, buf []byte) (int, error)

	// PidInfo wraps proc_pidinfo.
	PidInfo(pid int32, flavor int32, arg uint64, buf []byte) (int, error)

	// PidFDInfo wraps proc_pidfdinfo.
	PidFDInfo(pid int32, fd int32, flavor int32, buf []byte) (int, error)

	// Name wraps proc_name.
	Name(pid int32, buf []byte) (int, error)

	// RegionFileName wraps proc_regionfilename.
	RegionFileName(pid int32, address uint64, buf []byte) (int, error)

	// PidPath wraps proc_pidpath.
	PidPath(pid int32, buf []byte) (int, error)

	// LibVersion wraps proc_libversion. Unlike the rest of the family
	// the raw result is 0 on success.
	LibVersion() (major int32, minor int32, ret int, err error)
}

// sys is the active syscall layer. The real libproc binding is
// selected on darwin builds; everywhere else a stub reports ENOTSUP.
// Tests swap in a fake.
var sys Syscaller = newDefaultSyscaller()
