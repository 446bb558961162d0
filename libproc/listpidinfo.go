package libproc

import "encoding/binary"

// listPidInfo is the engine behind the per-pid list queries: allocate
// room for maxLen fixed-size elements, issue a single proc_pidinfo
// call and decode however many whole elements the kernel wrote.
//
// A return of 0 bytes is a valid empty list, not an error. The result
// never exceeds maxLen and keeps the kernel's ordering.
func listPidInfo[T any](pid int32, flavor PidInfoFlavor, itemSize, maxLen int, decodeItem func([]byte) T) ([]T, error) {
	if maxLen > PathInfoMaxSize {
		return nil, ErrTooManyElements
	}

	buf := make([]byte, itemSize*maxLen)
	ret, errno := sys.PidInfo(pid, int32(flavor), 0, buf)
	if ret < 0 {
		return nil, &QueryError{Op: "proc_pidinfo", Err: errno}
	}
	if ret == 0 {
		return []T{}, nil
	}

	count := ret / itemSize
	if count > maxLen {
		count = maxLen
	}

	items := make([]T, count)
	for i := range items {
		items[i] = decodeItem(buf[i*itemSize : (i+1)*itemSize])
	}
	return items, nil
}

// FDInfo mirrors struct proc_fdinfo, one entry of the open file
// descriptor table: the descriptor number and its kind code.
type FDInfo struct {
	FD   int32
	Type FDType
}

const fdInfoSize = 8

func decodeFDInfo(buf []byte) FDInfo {
	return FDInfo{
		FD:   int32(binary.LittleEndian.Uint32(buf)),
		Type: FDType(binary.LittleEndian.Uint32(buf[4:])),
	}
}

// ListFDs returns up to maxLen open file descriptors of pid, in the
// order the kernel reported them. BSDInfo.NFiles is the natural choice
// for maxLen.
func ListFDs(pid int32, maxLen int) ([]FDInfo, error) {
	return listPidInfo(pid, PidInfoFlavorListFDs, fdInfoSize, maxLen, decodeFDInfo)
}

const threadIDSize = 8

func decodeThreadID(buf []byte) uint64 {
	return binary.LittleEndian.Uint64(buf)
}

// ListThreads returns up to maxLen thread ids of pid, suitable as the
// arg of a ThreadInfo query. TaskInfo.ThreadNum is the natural choice
// for maxLen.
func ListThreads(pid int32, maxLen int) ([]uint64, error) {
	return listPidInfo(pid, PidInfoFlavorListThreads, threadIDSize, maxLen, decodeThreadID)
}
