package libproc

// Constants from bsd/sys/proc_info.h and bsd/sys/param.h. These are
// part of the kernel's binary contract and never change at runtime.
const (
	// MaxPathLen is MAXPATHLEN, the ceiling on a single path.
	MaxPathLen = 1024

	// PathInfoMaxSize is PROC_PIDPATHINFO_MAXSIZE (4 * MAXPATHLEN).
	// Text query buffers must be smaller than this, and list queries
	// reject element counts above it.
	PathInfoMaxSize = 4 * MaxPathLen

	maxComLen        = 16
	maxThreadNameLen = 64
	maxKCtlNameLen   = 96
	ifNameSize       = 16
	sockMaxAddrLen   = 255
)

// ProcType selects which processes proc_listpids reports.
type ProcType uint32

const (
	ProcAllPIDs  ProcType = 1 // every process on the host
	ProcPGRPOnly ProcType = 2 // members of the process group in arg
	ProcTTYOnly  ProcType = 3 // processes on the tty in arg
	ProcUIDOnly  ProcType = 4 // processes with effective uid in arg
	ProcRUIDOnly ProcType = 5 // processes with real uid in arg
	ProcPPIDOnly ProcType = 6 // children of the pid in arg
)

// PidInfoFlavor names the record layout a proc_pidinfo query fills.
// One flavor maps to exactly one layout; the pairing is carried by the
// record types themselves so callers cannot mismatch them.
type PidInfoFlavor int32

const (
	PidInfoFlavorListFDs       PidInfoFlavor = 1  // list of proc_fdinfo
	PidInfoFlavorTaskAllInfo   PidInfoFlavor = 2  // struct proc_taskallinfo
	PidInfoFlavorTBSDInfo      PidInfoFlavor = 3  // struct proc_bsdinfo
	PidInfoFlavorTaskInfo      PidInfoFlavor = 4  // struct proc_taskinfo
	PidInfoFlavorThreadInfo    PidInfoFlavor = 5  // struct proc_threadinfo
	PidInfoFlavorListThreads   PidInfoFlavor = 6  // list of thread ids
	PidInfoFlavorRegionInfo    PidInfoFlavor = 7
	PidInfoFlavorRegionPath    PidInfoFlavor = 8
	PidInfoFlavorVNodePath     PidInfoFlavor = 9
	PidInfoFlavorThreadPath    PidInfoFlavor = 10
	PidInfoFlavorPath          PidInfoFlavor = 11
	PidInfoFlavorWorkQueueInfo PidInfoFlavor = 12 // struct proc_workqueueinfo
)

// PidFDInfoFlavor names the record layout a proc_pidfdinfo query fills
// for a single file descriptor.
type PidFDInfoFlavor int32

const (
	PidFDInfoFlavorVNodeInfo     PidFDInfoFlavor = 1
	PidFDInfoFlavorVNodePathInfo PidFDInfoFlavor = 2
	PidFDInfoFlavorSocketInfo    PidFDInfoFlavor = 3
	PidFDInfoFlavorPSEMInfo      PidFDInfoFlavor = 4
	PidFDInfoFlavorPSHMInfo      PidFDInfoFlavor = 5
	PidFDInfoFlavorPipeInfo      PidFDInfoFlavor = 6
	PidFDInfoFlavorKQueueInfo    PidFDInfoFlavor = 7
	PidFDInfoFlavorATalkInfo     PidFDInfoFlavor = 8
)

// FDType is the file descriptor kind code reported by the ListFDs
// query (PROX_FDTYPE_* in proc_info.h).
type FDType uint32

const (
	FDTypeATalk    FDType = 0 // AppleTalk
	FDTypeVNode    FDType = 1 // vnode (regular files, directories)
	FDTypeSocket   FDType = 2 // socket
	FDTypePSHM     FDType = 3 // POSIX shared memory
	FDTypePSEM     FDType = 4 // POSIX semaphore
	FDTypeKQueue   FDType = 5 // kqueue
	FDTypePipe     FDType = 6 // pipe
	FDTypeFSEvents FDType = 7 // fsevents
)

func (t FDType) String() string {
	switch t {
	case FDTypeATalk:
		return "appletalk"
	case FDTypeVNode:
		return "vnode"
	case FDTypeSocket:
		return "socket"
	case FDTypePSHM:
		return "pshm"
	case FDTypePSEM:
		return "psem"
	case FDTypeKQueue:
		return "kqueue"
	case FDTypePipe:
		return "pipe"
	case FDTypeFSEvents:
		return "fsevents"
	default:
		return "unknown"
	}
}
