package libproc

// fdInfoRecord binds a record type to exactly one proc_pidfdinfo
// flavor and byte size, the same closed pairing pidInfoRecord gives
// the per-process queries.
type fdInfoRecord interface {
	fdInfoFlavor() PidFDInfoFlavor
	fdInfoSize() int
	decode(buf []byte)
}

type fdRecordPtr[T any] interface {
	*T
	fdInfoRecord
}

// PidFDInfo performs a single proc_pidfdinfo query for the record
// type T against one file descriptor of pid. The buffer is zeroed
// before the call for the same reason as PidInfo.
func PidFDInfo[T any, P fdRecordPtr[T]](pid int32, fd int32) (*T, error) {
	rec := new(T)
	p := P(rec)

	buf := make([]byte, p.fdInfoSize())
	ret, errno := sys.PidFDInfo(pid, fd, int32(p.fdInfoFlavor()), buf)
	if ret <= 0 {
		return nil, &QueryError{Op: "proc_pidfdinfo", Err: errno}
	}

	p.decode(buf)
	return rec, nil
}

// ProcFileInfo mirrors struct proc_fileinfo, the open-file header
// every fdinfo record starts with.
//
// Layout (24 bytes):
//
//	 0  u32  fi_openflags    8  i64  fi_offset
//	 4  u32  fi_status      16  i32  fi_type, 20 reserved
type ProcFileInfo struct {
	OpenFlags uint32
	Status    uint32
	Offset    int64
	Type      int32
}

const procFileInfoSize = 24

func (f *ProcFileInfo) decode(buf []byte) {
	d := &decoder{buf: buf}
	f.OpenFlags = d.u32()
	f.Status = d.u32()
	f.Offset = d.i64()
	f.Type = d.i32()
	d.skip(4) // rfu_1
}

// SocketFDInfo mirrors struct socket_fdinfo (792 bytes): the file
// header followed by the socket record and its protocol union.
type SocketFDInfo struct {
	File   ProcFileInfo
	Socket SocketInfo
}

const socketFDInfoSize = procFileInfoSize + socketInfoSize

func (*SocketFDInfo) fdInfoFlavor() PidFDInfoFlavor { return PidFDInfoFlavorSocketInfo }
func (*SocketFDInfo) fdInfoSize() int               { return socketFDInfoSize }

func (s *SocketFDInfo) decode(buf []byte) {
	s.File.decode(buf[:procFileInfoSize])
	s.Socket.decode(buf[procFileInfoSize:socketFDInfoSize])
}
