package libproc

// pidInfoRecord binds a record type to exactly one proc_pidinfo flavor
// and one byte size. The methods are unexported on purpose: the set of
// queryable records is closed, and a caller can never pair a flavor
// with a layout the kernel didn't define for it.
type pidInfoRecord interface {
	pidInfoFlavor() PidInfoFlavor
	pidInfoSize() int
	decode(buf []byte)
}

// pidRecordPtr constrains PidInfo to pointers of registered record
// types so the result can be allocated and filled in place.
type pidRecordPtr[T any] interface {
	*T
	pidInfoRecord
}

// PidInfo performs a single proc_pidinfo query for the record type T
// and returns the fully decoded record.
//
// The buffer is zeroed before the call: some flavors legitimately
// write fewer bytes than the record's full size, and fields beyond
// what the kernel wrote must read as zero values, never as garbage.
//
// The meaning of arg depends on the flavor and is passed through
// untouched; most flavors ignore it.
func PidInfo[T any, P pidRecordPtr[T]](pid int32, arg uint64) (*T, error) {
	rec := new(T)
	p := P(rec)

	buf := make([]byte, p.pidInfoSize())
	ret, errno := sys.PidInfo(pid, int32(p.pidInfoFlavor()), arg, buf)
	if ret <= 0 {
		return nil, &QueryError{Op: "proc_pidinfo", Err: errno}
	}

	p.decode(buf)
	return rec, nil
}

// TaskInfo mirrors struct proc_taskinfo: per-task CPU, memory and
// scheduling accounting.
//
// Layout (96 bytes):
//
//	 0  u64  pti_virtual_size      40  u64  pti_threads_system
//	 8  u64  pti_resident_size     48  i32  pti_policy
//	16  u64  pti_total_user        52.. i32 x11 counters
//	24  u64  pti_total_system
//	32  u64  pti_threads_user
type TaskInfo struct {
	VirtualSize      uint64 // virtual memory size (bytes)
	ResidentSize     uint64 // resident memory size (bytes)
	TotalUser        uint64 // total user run time
	TotalSystem      uint64 // total system run time
	ThreadsUser      uint64 // existing threads only
	ThreadsSystem    uint64
	Policy           int32 // default policy for new threads
	Faults           int32 // number of page faults
	PageIns          int32 // number of actual pageins
	COWFaults        int32 // number of copy-on-write faults
	MessagesSent     int32
	MessagesReceived int32
	SyscallsMach     int32
	SyscallsUnix     int32
	ContextSwitches  int32
	ThreadNum        int32 // number of threads in the task
	NumRunning       int32 // number of running threads
	Priority         int32 // task priority
}

const taskInfoSize = 96

func (*TaskInfo) pidInfoFlavor() PidInfoFlavor { return PidInfoFlavorTaskInfo }
func (*TaskInfo) pidInfoSize() int             { return taskInfoSize }

func (t *TaskInfo) decode(buf []byte) {
	d := &decoder{buf: buf}
	t.VirtualSize = d.u64()
	t.ResidentSize = d.u64()
	t.TotalUser = d.u64()
	t.TotalSystem = d.u64()
	t.ThreadsUser = d.u64()
	t.ThreadsSystem = d.u64()
	t.Policy = d.i32()
	t.Faults = d.i32()
	t.PageIns = d.i32()
	t.COWFaults = d.i32()
	t.MessagesSent = d.i32()
	t.MessagesReceived = d.i32()
	t.SyscallsMach = d.i32()
	t.SyscallsUnix = d.i32()
	t.ContextSwitches = d.i32()
	t.ThreadNum = d.i32()
	t.NumRunning = d.i32()
	t.Priority = d.i32()
}

// BSDInfo mirrors struct proc_bsdinfo: BSD-level process metadata.
//
// Layout (136 bytes):
//
//	 0  u32 x5   flags, status, xstatus, pid, ppid
//	20  u32 x6   uid, gid, ruid, rgid, svuid, svgid
//	44  u32      reserved
//	48  char[16] pbi_comm
//	64  char[32] pbi_name
//	96  u32 x5   nfiles, pgid, pjobc, e_tdev, e_tpgid
//	116 i32      pbi_nice
//	120 u64 x2   pbi_start_tvsec, pbi_start_tvusec
type BSDInfo struct {
	Flags     uint32 // 64bit; emulated etc
	Status    uint32
	XStatus   uint32
	PID       uint32
	PPID      uint32
	UID       uint32
	GID       uint32
	RUID      uint32
	RGID      uint32
	SVUID     uint32
	SVGID     uint32
	Comm      string
	Name      string // empty if no name is registered
	NFiles    uint32
	PGID      uint32
	PJobC     uint32
	TDev      uint32 // controlling tty dev
	TPGID     uint32 // tty process group id
	Nice      int32
	StartSec  uint64
	StartUSec uint64
}

const bsdInfoSize = 136

func (*BSDInfo) pidInfoFlavor() PidInfoFlavor { return PidInfoFlavorTBSDInfo }
func (*BSDInfo) pidInfoSize() int             { return bsdInfoSize }

func (b *BSDInfo) decode(buf []byte) {
	d := &decoder{buf: buf}
	b.Flags = d.u32()
	b.Status = d.u32()
	b.XStatus = d.u32()
	b.PID = d.u32()
	b.PPID = d.u32()
	b.UID = d.u32()
	b.GID = d.u32()
	b.RUID = d.u32()
	b.RGID = d.u32()
	b.SVUID = d.u32()
	b.SVGID = d.u32()
	d.skip(4) // rfu_1
	b.Comm = d.str(maxComLen)
	b.Name = d.str(2 * maxComLen)
	b.NFiles = d.u32()
	b.PGID = d.u32()
	b.PJobC = d.u32()
	b.TDev = d.u32()
	b.TPGID = d.u32()
	b.Nice = d.i32()
	b.StartSec = d.u64()
	b.StartUSec = d.u64()
}

// TaskAllInfo mirrors struct proc_taskallinfo: proc_bsdinfo followed
// by proc_taskinfo in one record (232 bytes).
type TaskAllInfo struct {
	BSD  BSDInfo
	Task TaskInfo
}

const taskAllInfoSize = bsdInfoSize + taskInfoSize

func (*TaskAllInfo) pidInfoFlavor() PidInfoFlavor { return PidInfoFlavorTaskAllInfo }
func (*TaskAllInfo) pidInfoSize() int             { return taskAllInfoSize }

func (a *TaskAllInfo) decode(buf []byte) {
	a.BSD.decode(buf[:bsdInfoSize])
	a.Task.decode(buf[bsdInfoSize:taskAllInfoSize])
}

// ThreadInfo mirrors struct proc_threadinfo.
//
// Layout (112 bytes):
//
//	 0  u64 x2   pth_user_time, pth_system_time
//	16  i32 x8   cpu_usage, policy, run_state, flags,
//	            sleep_time, curpri, priority, maxpriority
//	48  char[64] pth_name
type ThreadInfo struct {
	UserTime    uint64 // user run time
	SystemTime  uint64 // system run time
	CPUUsage    int32  // scaled cpu usage percentage
	Policy      int32  // scheduling policy in effect
	RunState    int32
	Flags       int32
	SleepTime   int32
	CurPri      int32
	Priority    int32
	MaxPriority int32
	Name        string // thread name, if any
}

const threadInfoSize = 112

func (*ThreadInfo) pidInfoFlavor() PidInfoFlavor { return PidInfoFlavorThreadInfo }
func (*ThreadInfo) pidInfoSize() int             { return threadInfoSize }

func (t *ThreadInfo) decode(buf []byte) {
	d := &decoder{buf: buf}
	t.UserTime = d.u64()
	t.SystemTime = d.u64()
	t.CPUUsage = d.i32()
	t.Policy = d.i32()
	t.RunState = d.i32()
	t.Flags = d.i32()
	t.SleepTime = d.i32()
	t.CurPri = d.i32()
	t.Priority = d.i32()
	t.MaxPriority = d.i32()
	t.Name = d.str(maxThreadNameLen)
}

// WorkQueueInfo mirrors struct proc_workqueueinfo (16 bytes: three
// u32 counters and one reserved word).
type WorkQueueInfo struct {
	TotalThreads   uint32 // total number of workqueue threads
	RunThreads     uint32 // running workqueue threads
	BlockedThreads uint32 // blocked workqueue threads
}

const workQueueInfoSize = 16

func (*WorkQueueInfo) pidInfoFlavor() PidInfoFlavor { return PidInfoFlavorWorkQueueInfo }
func (*WorkQueueInfo) pidInfoSize() int             { return workQueueInfoSize }

func (w *WorkQueueInfo) decode(buf []byte) {
	d := &decoder{buf: buf}
	w.TotalThreads = d.u32()
	w.RunThreads = d.u32()
	w.BlockedThreads = d.u32()
	d.skip(4) // reserved
}
