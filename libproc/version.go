package libproc

// LibVersion returns the major and minor version of the host libproc
// library.
//
// proc_libversion signals success with a return of exactly 0, inverted
// from every other call in the family; that asymmetry is the
// library's contract, not ours to normalize.
func LibVersion() (major, minor int32, err error) {
	major, minor, ret, errno := sys.LibVersion()
	if ret != 0 {
		return 0, 0, &QueryError{Op: "proc_libversion", Err: errno}
	}
	return major, minor, nil
}
