package libproc

import "unicode/utf8"

// textBufSize is the shared buffer capacity for string-valued queries.
// The kernel rejects buffers of PROC_PIDPATHINFO_MAXSIZE or larger, so
// the buffer stops one byte short of it.
const textBufSize = PathInfoMaxSize - 1

// textQuery runs one string-valued query: issue the call with the
// shared maximum buffer, truncate to the byte count the kernel
// reported, and validate the result as UTF-8 text.
func textQuery(op string, call func(buf []byte) (int, error)) (string, error) {
	buf := make([]byte, textBufSize)
	ret, errno := call(buf)
	if ret <= 0 {
		return "", &QueryError{Op: op, Err: errno}
	}

	raw := buf[:ret]
	if !utf8.Valid(raw) {
		return "", &DecodeError{Op: op, Raw: raw}
	}
	return string(raw), nil
}

// Name returns the name of the process with the given pid.
func Name(pid int32) (string, error) {
	return textQuery("proc_name", func(buf []byte) (int, error) {
		return sys.Name(pid, buf)
	})
}

// PidPath returns the full path of the executable backing pid.
func PidPath(pid int32) (string, error) {
	return textQuery("proc_pidpath", func(buf []byte) (int, error) {
		return sys.PidPath(pid, buf)
	})
}

// RegionFileName returns the name of the file mapped at the given
// virtual address in pid's address space.
func RegionFileName(pid int32, address uint64) (string, error) {
	return textQuery("proc_regionfilename", func(buf []byte) (int, error) {
		return sys.RegionFileName(pid, address, buf)
	})
}
