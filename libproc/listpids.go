package libproc

import "encoding/binary"

const pidEntrySize = 4 // proc_listpids reports 32-bit pids

// ListPIDs returns the pids of the processes matching the selector.
// arg qualifies the selector (process group, tty device, uid, real
// uid or parent pid depending on kind; ignored for ProcAllPIDs).
//
// The query runs in two phases: a nil-buffer probe discovers how many
// bytes the kernel would write, then a buffer of exactly that size,
// rounded to whole entries, is filled. The kernel appends one trailing
// sentinel entry to the response, which is discounted from the final
// count.
func ListPIDs(kind ProcType, arg uint32) ([]uint32, error) {
	probe, errno := sys.ListPIDs(uint32(kind), arg, nil)
	if probe <= 0 {
		return nil, &QueryError{Op: "proc_listpids", Err: errno}
	}

	capacity := probe / pidEntrySize
	buf := make([]byte, capacity*pidEntrySize)

	ret, errno := sys.ListPIDs(uint32(kind), arg, buf)
	if ret <= 0 {
		return nil, &QueryError{Op: "proc_listpids", Err: errno}
	}

	count := ret / pidEntrySize
	if count > 0 {
		count-- // drop the trailing sentinel entry
	}

	pids := make([]uint32, count)
	for i := range pids {
		pids[i] = binary.LittleEndian.Uint32(buf[i*pidEntrySize:])
	}
	return pids, nil
}
