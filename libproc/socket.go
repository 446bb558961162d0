package libproc

import "net"

// SocketInfoKind is the discriminant naming which protocol sub-record
// of a socket_info is valid. Exactly one arm is ever valid at a time.
type SocketInfoKind int32

const (
	SocketKindGeneric   SocketInfoKind = 0
	SocketKindIn        SocketInfoKind = 1 // IPv4 and IPv6 sockets
	SocketKindTCP       SocketInfoKind = 2
	SocketKindUnix      SocketInfoKind = 3 // Unix domain sockets
	SocketKindNdrv      SocketInfoKind = 4 // PF_NDRV sockets
	SocketKindKernEvent SocketInfoKind = 5
	SocketKindKernCtl   SocketInfoKind = 6
)

func (k SocketInfoKind) String() string {
	switch k {
	case SocketKindGeneric:
		return "generic"
	case SocketKindIn:
		return "in"
	case SocketKindTCP:
		return "tcp"
	case SocketKindUnix:
		return "unix"
	case SocketKindNdrv:
		return "ndrv"
	case SocketKindKernEvent:
		return "kernevent"
	case SocketKindKernCtl:
		return "kernctl"
	default:
		return "unknown"
	}
}

// VInfoStat mirrors struct vinfo_stat (136 bytes), the stat block
// embedded in socket and vnode records.
type VInfoStat struct {
	Dev           uint32
	Mode          uint16
	NLink         uint16
	Ino           uint64
	UID           uint32
	GID           uint32
	ATime         int64
	ATimeNsec     int64
	MTime         int64
	MTimeNsec     int64
	CTime         int64
	CTimeNsec     int64
	BirthTime     int64
	BirthTimeNsec int64
	Size          int64
	Blocks        int64
	BlkSize       int32
	Flags         uint32
	Gen           uint32
	RDev          uint32
}

const vInfoStatSize = 136

func (v *VInfoStat) decode(buf []byte) {
	d := &decoder{buf: buf}
	v.Dev = d.u32()
	v.Mode = d.u16()
	v.NLink = d.u16()
	v.Ino = d.u64()
	v.UID = d.u32()
	v.GID = d.u32()
	v.ATime = d.i64()
	v.ATimeNsec = d.i64()
	v.MTime = d.i64()
	v.MTimeNsec = d.i64()
	v.CTime = d.i64()
	v.CTimeNsec = d.i64()
	v.BirthTime = d.i64()
	v.BirthTimeNsec = d.i64()
	v.Size = d.i64()
	v.Blocks = d.i64()
	v.BlkSize = d.i32()
	v.Flags = d.u32()
	v.Gen = d.u32()
	v.RDev = d.u32()
	d.skip(16) // vst_qspare
}

// SockBufInfo mirrors struct sockbuf_info (24 bytes), one direction of
// socket buffer accounting.
type SockBufInfo struct {
	CC      uint32 // bytes queued
	HiWat   uint32
	MBCnt   uint32
	MBMax   uint32
	LoWat   uint32
	Flags   int16
	Timeout int16
}

const sockBufInfoSize = 24

func (s *SockBufInfo) decode(buf []byte) {
	d := &decoder{buf: buf}
	s.CC = d.u32()
	s.HiWat = d.u32()
	s.MBCnt = d.u32()
	s.MBMax = d.u32()
	s.LoWat = d.u32()
	s.Flags = d.i16()
	s.Timeout = d.i16()
}

// socketProtoSize is sizeof the soi_proto union: the widest arm is
// struct un_sockinfo at 528 bytes.
const socketProtoSize = 528

// SocketInfo mirrors struct socket_info: common socket statistics, the
// Kind discriminant, and the protocol union held as an opaque byte
// area. The union is never read directly; the TCP, In, Unix, Ndrv,
// KernEvent and KernCtl accessors decode the matching arm only when
// Kind selects it.
//
// Layout (768 bytes):
//
//	  0  vinfo_stat  soi_stat      178  u16       soi_error
//	136  u64         soi_so        180  u32       soi_oobmark
//	144  u64         soi_pcb       184  sockbuf   soi_rcv
//	152  i32 x3      type, protocol, family
//	164  i16 x7      options, linger, state,
//	                 qlen, incqlen, qlimit, timeo
//	                               208  sockbuf   soi_snd
//	                               232  i32       soi_kind
//	                               236  u32       reserved
//	                               240  union     soi_proto (528)
type SocketInfo struct {
	Stat        VInfoStat
	SO          uint64 // opaque kernel socket address
	PCB         uint64 // opaque protocol control block address
	Type        int32
	Protocol    int32
	Family      int32
	Options     int16
	Linger      int16
	State       int16
	QueueLen    int16
	IncQueueLen int16
	QueueLimit  int16
	Timeout     int16
	Error       uint16
	OOBMark     uint32
	Receive     SockBufInfo
	Send        SockBufInfo
	Kind        SocketInfoKind

	proto [socketProtoSize]byte
}

const socketInfoSize = 768

func (s *SocketInfo) decode(buf []byte) {
	s.Stat.decode(buf[:vInfoStatSize])
	d := &decoder{buf: buf, off: vInfoStatSize}
	s.SO = d.u64()
	s.PCB = d.u64()
	s.Type = d.i32()
	s.Protocol = d.i32()
	s.Family = d.i32()
	s.Options = d.i16()
	s.Linger = d.i16()
	s.State = d.i16()
	s.QueueLen = d.i16()
	s.IncQueueLen = d.i16()
	s.QueueLimit = d.i16()
	s.Timeout = d.i16()
	s.Error = d.u16()
	s.OOBMark = d.u32()
	s.Receive.decode(buf[184 : 184+sockBufInfoSize])
	s.Send.decode(buf[208 : 208+sockBufInfoSize])
	d.off = 232
	s.Kind = SocketInfoKind(d.i32())
	d.skip(4) // rfu_1
	copy(s.proto[:], buf[240:240+socketProtoSize])
}

// In returns the IPv4/IPv6 arm of the protocol union, or ok == false
// when the discriminant selects a different arm.
func (s *SocketInfo) In() (*InSockInfo, bool) {
	if s.Kind != SocketKindIn {
		return nil, false
	}
	var in InSockInfo
	in.decode(s.proto[:inSockInfoSize])
	return &in, true
}

// TCP returns the TCP arm of the protocol union, or ok == false when
// the discriminant selects a different arm.
func (s *SocketInfo) TCP() (*TCPSockInfo, bool) {
	if s.Kind != SocketKindTCP {
		return nil, false
	}
	var t TCPSockInfo
	t.decode(s.proto[:tcpSockInfoSize])
	return &t, true
}

// Unix returns the Unix domain arm of the protocol union, or
// ok == false when the discriminant selects a different arm.
func (s *SocketInfo) Unix() (*UnSockInfo, bool) {
	if s.Kind != SocketKindUnix {
		return nil, false
	}
	var u UnSockInfo
	u.decode(s.proto[:unSockInfoSize])
	return &u, true
}

// Ndrv returns the raw network driver arm of the protocol union, or
// ok == false when the discriminant selects a different arm.
func (s *SocketInfo) Ndrv() (*NdrvInfo, bool) {
	if s.Kind != SocketKindNdrv {
		return nil, false
	}
	var n NdrvInfo
	n.decode(s.proto[:ndrvInfoSize])
	return &n, true
}

// KernEvent returns the kernel event arm of the protocol union, or
// ok == false when the discriminant selects a different arm.
func (s *SocketInfo) KernEvent() (*KernEventInfo, bool) {
	if s.Kind != SocketKindKernEvent {
		return nil, false
	}
	var k KernEventInfo
	k.decode(s.proto[:kernEventInfoSize])
	return &k, true
}

// KernCtl returns the kernel control arm of the protocol union, or
// ok == false when the discriminant selects a different arm.
func (s *SocketInfo) KernCtl() (*KernCtlInfo, bool) {
	if s.Kind != SocketKindKernCtl {
		return nil, false
	}
	var k KernCtlInfo
	k.decode(s.proto[:kernCtlInfoSize])
	return &k, true
}

// Version flags for InSockInfo.VFlag.
const (
	VFlagIPv4 = 0x1
	VFlagIPv6 = 0x2
)

// InSockInfo mirrors struct in_sockinfo, the connection endpoints
// shared by the In and TCP arms. Ports and addresses are kept exactly
// as the kernel reports them — in network byte order — and converted
// by the accessor methods.
//
// Layout (80 bytes):
//
//	 0  i32  insi_fport (network order)
//	 4  i32  insi_lport (network order)
//	 8  u64  insi_gencnt     24  u8  insi_vflag, 25 u8 ip_ttl
//	16  u32  insi_flags      28  u32 reserved
//	20  u32  insi_flow       32  [16]byte insi_faddr
//	                         48  [16]byte insi_laddr
//	                         64  u8  v4 tos
//	                         68  v6: hlim, cksum, ifindex, hops
type InSockInfo struct {
	FPort     int32 // foreign port, network byte order
	LPort     int32 // local port, network byte order
	GenCnt    uint64
	Flags     uint32
	Flow      uint32
	VFlag     uint8 // VFlagIPv4 and/or VFlagIPv6
	TTL       uint8
	FAddr     [16]byte // foreign address, network byte order
	LAddr     [16]byte // local address, network byte order
	V4TOS     uint8
	V6HLim    uint8
	V6Cksum   int32
	V6IfIndex uint16
	V6Hops    int16
}

const inSockInfoSize = 80

func (in *InSockInfo) decode(buf []byte) {
	d := &decoder{buf: buf}
	in.FPort = d.i32()
	in.LPort = d.i32()
	in.GenCnt = d.u64()
	in.Flags = d.u32()
	in.Flow = d.u32()
	in.VFlag = d.u8()
	in.TTL = d.u8()
	d.skip(2) // padding
	d.skip(4) // rfu_1
	copy(in.FAddr[:], d.bytes(16))
	copy(in.LAddr[:], d.bytes(16))
	in.V4TOS = d.u8()
	d.skip(3) // padding
	in.V6HLim = d.u8()
	d.skip(3) // padding
	in.V6Cksum = d.i32()
	in.V6IfIndex = d.u16()
	in.V6Hops = d.i16()
}

// portHostOrder converts the low 16 bits of a port field from network
// byte order to host order by swapping the two bytes.
func portHostOrder(v int32) uint16 {
	u := uint32(v)
	return uint16(u>>8&0x00ff | u<<8&0xff00)
}

// LocalPort returns insi_lport converted to host byte order.
func (in *InSockInfo) LocalPort() uint16 { return portHostOrder(in.LPort) }

// ForeignPort returns insi_fport converted to host byte order.
func (in *InSockInfo) ForeignPort() uint16 { return portHostOrder(in.FPort) }

// LocalIPv4 returns the local IPv4 address. The kernel stores it in
// the last four bytes of the address area, network byte order, which
// net.IPv4 renders as dotted octets directly.
func (in *InSockInfo) LocalIPv4() net.IP {
	return net.IPv4(in.LAddr[12], in.LAddr[13], in.LAddr[14], in.LAddr[15])
}

// ForeignIPv4 returns the foreign IPv4 address.
func (in *InSockInfo) ForeignIPv4() net.IP {
	return net.IPv4(in.FAddr[12], in.FAddr[13], in.FAddr[14], in.FAddr[15])
}

// LocalIPv6 returns the local IPv6 address; meaningful only when
// VFlag has VFlagIPv6 set.
func (in *InSockInfo) LocalIPv6() net.IP {
	ip := make(net.IP, 16)
	copy(ip, in.LAddr[:])
	return ip
}

// ForeignIPv6 returns the foreign IPv6 address; meaningful only when
// VFlag has VFlagIPv6 set.
func (in *InSockInfo) ForeignIPv6() net.IP {
	ip := make(net.IP, 16)
	copy(ip, in.FAddr[:])
	return ip
}

// TCPState is the connection state reported in tcp_sockinfo.
type TCPState int32

const (
	TCPStateClosed      TCPState = 0  // closed
	TCPStateListen      TCPState = 1  // listening for connection
	TCPStateSynSent     TCPState = 2  // active, have sent syn
	TCPStateSynReceived TCPState = 3  // have sent and received syn
	TCPStateEstablished TCPState = 4  // established
	TCPStateCloseWait   TCPState = 5  // rcvd fin, waiting for close
	TCPStateFinWait1    TCPState = 6  // have closed, sent fin
	TCPStateClosing     TCPState = 7  // closed xchd FIN, await FIN ACK
	TCPStateLastAck     TCPState = 8  // had fin and close, await FIN ACK
	TCPStateFinWait2    TCPState = 9  // have closed, fin is acked
	TCPStateTimeWait    TCPState = 10 // in 2*msl quiet wait after close
	TCPStateReserved    TCPState = 11
)

func (s TCPState) String() string {
	switch s {
	case TCPStateClosed:
		return "CLOSED"
	case TCPStateListen:
		return "LISTEN"
	case TCPStateSynSent:
		return "SYN_SENT"
	case TCPStateSynReceived:
		return "SYN_RCVD"
	case TCPStateEstablished:
		return "ESTABLISHED"
	case TCPStateCloseWait:
		return "CLOSE_WAIT"
	case TCPStateFinWait1:
		return "FIN_WAIT_1"
	case TCPStateClosing:
		return "CLOSING"
	case TCPStateLastAck:
		return "LAST_ACK"
	case TCPStateFinWait2:
		return "FIN_WAIT_2"
	case TCPStateTimeWait:
		return "TIME_WAIT"
	case TCPStateReserved:
		return "RESERVED"
	default:
		return "UNKNOWN"
	}
}

// TCPSockInfo mirrors struct tcp_sockinfo.
//
// Layout (120 bytes):
//
//	 0  in_sockinfo  tcpsi_ini    100  i32  tcpsi_mss
//	80  i32          tcpsi_state  104  u32  tcpsi_flags
//	84  i32 x4       tcpsi_timer  108  u32  reserved
//	                              112  u64  tcpsi_tp
type TCPSockInfo struct {
	In    InSockInfo
	State TCPState
	Timer [4]int32
	MSS   int32
	Flags uint32
	TP    uint64 // opaque kernel tcpcb address
}

const tcpSockInfoSize = 120

func (t *TCPSockInfo) decode(buf []byte) {
	t.In.decode(buf[:inSockInfoSize])
	d := &decoder{buf: buf, off: inSockInfoSize}
	t.State = TCPState(d.i32())
	for i := range t.Timer {
		t.Timer[i] = d.i32()
	}
	t.MSS = d.i32()
	t.Flags = d.u32()
	d.skip(4) // rfu_1
	t.TP = d.u64()
}

// UnSockInfo mirrors struct un_sockinfo. The two sockaddr_un areas are
// exposed as their path strings.
//
// Layout (528 bytes):
//
//	  0  u64  unsi_conn_so     16  sockaddr_un area  unsi_addr (255)
//	  8  u64  unsi_conn_pcb   271  sockaddr_un area  unsi_caddr (255)
type UnSockInfo struct {
	ConnSO   uint64
	ConnPCB  uint64
	Path     string // bound address
	PeerPath string // connected address
}

const unSockInfoSize = 528

// decodeSockaddrUn pulls the NUL-terminated path out of a sockaddr_un
// area: one length byte, one family byte, then the path.
func decodeSockaddrUn(buf []byte) string {
	d := &decoder{buf: buf}
	d.skip(2) // sun_len, sun_family
	return d.str(104)
}

func (u *UnSockInfo) decode(buf []byte) {
	d := &decoder{buf: buf}
	u.ConnSO = d.u64()
	u.ConnPCB = d.u64()
	u.Path = decodeSockaddrUn(buf[16 : 16+sockMaxAddrLen])
	u.PeerPath = decodeSockaddrUn(buf[271 : 271+sockMaxAddrLen])
}

// NdrvInfo mirrors struct ndrv_info (24 bytes).
type NdrvInfo struct {
	IfFamily uint32
	IfUnit   uint32
	IfName   string
}

const ndrvInfoSize = 24

func (n *NdrvInfo) decode(buf []byte) {
	d := &decoder{buf: buf}
	n.IfFamily = d.u32()
	n.IfUnit = d.u32()
	n.IfName = d.str(ifNameSize)
}

// KernEventInfo mirrors struct kern_event_info (12 bytes).
type KernEventInfo struct {
	VendorCodeFilter uint32
	ClassFilter      uint32
	SubclassFilter   uint32
}

const kernEventInfoSize = 12

func (k *KernEventInfo) decode(buf []byte) {
	d := &decoder{buf: buf}
	k.VendorCodeFilter = d.u32()
	k.ClassFilter = d.u32()
	k.SubclassFilter = d.u32()
}

// KernCtlInfo mirrors struct kern_ctl_info (120 bytes).
type KernCtlInfo struct {
	ID          uint32
	RegUnit     uint32
	Flags       uint32
	RecvBufSize uint32
	SendBufSize uint32
	Unit        uint32
	Name        string
}

const kernCtlInfoSize = 120

func (k *KernCtlInfo) decode(buf []byte) {
	d := &decoder{buf: buf}
	k.ID = d.u32()
	k.RegUnit = d.u32()
	k.Flags = d.u32()
	k.RecvBufSize = d.u32()
	k.SendBufSize = d.u32()
	k.Unit = d.u32()
	k.Name = d.str(maxKCtlNameLen)
}
