package libproc

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Offsets of interest inside a raw socket_fdinfo buffer. The socket
// record starts after the 24-byte file header; the protocol union
// starts 240 bytes into the socket record.
const (
	sockKindOff  = procFileInfoSize + 232
	sockProtoOff = procFileInfoSize + 240
)

// tcpSocketBuffer builds a synthetic socket_fdinfo for an IPv4 TCP
// socket with the given local endpoint already in network byte order.
func tcpSocketBuffer(portNet [2]byte, addr [4]byte, state TCPState) []byte {
	buf := make([]byte, socketFDInfoSize)

	// soi_type SOCK_STREAM, soi_protocol IPPROTO_TCP, soi_family AF_INET
	binary.LittleEndian.PutUint32(buf[procFileInfoSize+152:], 1)
	binary.LittleEndian.PutUint32(buf[procFileInfoSize+156:], 6)
	binary.LittleEndian.PutUint32(buf[procFileInfoSize+160:], 2)
	binary.LittleEndian.PutUint32(buf[sockKindOff:], uint32(SocketKindTCP))

	proto := buf[sockProtoOff:]
	proto[4], proto[5] = portNet[0], portNet[1] // insi_lport, network order
	proto[24] = VFlagIPv4
	copy(proto[48+12:], addr[:]) // insi_laddr holds IPv4 in its last 4 bytes
	binary.LittleEndian.PutUint32(proto[80:], uint32(state)) // tcpsi_state

	return buf
}

func TestTCPSocketRoundTrip(t *testing.T) {
	// Local port 8080 is 0x1F90 in network order; address 127.0.0.1.
	raw := tcpSocketBuffer([2]byte{0x1f, 0x90}, [4]byte{127, 0, 0, 1}, TCPStateListen)

	withSyscaller(t, &fakeSyscaller{
		pidFDInfo: func(pid, fd, flavor int32, buf []byte) (int, error) {
			assert.Equal(t, int32(PidFDInfoFlavorSocketInfo), flavor)
			require.Len(t, buf, socketFDInfoSize)
			assert.True(t, allZero(buf), "buffer must be zeroed before the call")
			copy(buf, raw)
			return len(buf), nil
		},
	})

	info, err := PidFDInfo[SocketFDInfo](100, 4)
	require.NoError(t, err)

	assert.Equal(t, SocketKindTCP, info.Socket.Kind)
	assert.Equal(t, int32(6), info.Socket.Protocol)
	assert.Equal(t, int32(2), info.Socket.Family)

	tcp, ok := info.Socket.TCP()
	require.True(t, ok)
	assert.Equal(t, uint16(8080), tcp.In.LocalPort())
	assert.Equal(t, "127.0.0.1", tcp.In.LocalIPv4().String())
	assert.Equal(t, TCPStateListen, tcp.State)
	assert.Equal(t, "LISTEN", tcp.State.String())

	// A TCP record is not an In record: the other arms stay closed.
	_, ok = info.Socket.In()
	assert.False(t, ok)
	_, ok = info.Socket.Unix()
	assert.False(t, ok)
}

func TestNonTCPDiscriminantIsNotApplicable(t *testing.T) {
	var si SocketInfo
	buf := make([]byte, socketInfoSize)
	binary.LittleEndian.PutUint32(buf[232:], uint32(SocketKindUnix))
	copy(buf[240+16+2:], "/var/run/test.sock") // unsi_addr sun_path
	si.decode(buf)

	// The discriminant says Unix domain: a TCP decode must yield
	// "not applicable", never a garbage record.
	tcp, ok := si.TCP()
	assert.False(t, ok)
	assert.Nil(t, tcp)

	un, ok := si.Unix()
	require.True(t, ok)
	assert.Equal(t, "/var/run/test.sock", un.Path)
	assert.Empty(t, un.PeerPath)
}

func TestUnknownDiscriminantClosesAllArms(t *testing.T) {
	var si SocketInfo
	buf := make([]byte, socketInfoSize)
	binary.LittleEndian.PutUint32(buf[232:], 99)
	si.decode(buf)

	assert.Equal(t, "unknown", si.Kind.String())

	_, ok := si.In()
	assert.False(t, ok)
	_, ok = si.TCP()
	assert.False(t, ok)
	_, ok = si.Unix()
	assert.False(t, ok)
	_, ok = si.Ndrv()
	assert.False(t, ok)
	_, ok = si.KernEvent()
	assert.False(t, ok)
	_, ok = si.KernCtl()
	assert.False(t, ok)
}

func TestInSocketForeignEndpoint(t *testing.T) {
	buf := make([]byte, socketInfoSize)
	binary.LittleEndian.PutUint32(buf[232:], uint32(SocketKindIn))

	proto := buf[240:]
	proto[0] = 0x01 // insi_fport 443, network order
	proto[1] = 0xbb
	proto[24] = VFlagIPv4
	copy(proto[32+12:], []byte{93, 184, 216, 34}) // insi_faddr

	var si SocketInfo
	si.decode(buf)

	in, ok := si.In()
	require.True(t, ok)
	assert.Equal(t, uint16(443), in.ForeignPort())
	assert.Equal(t, "93.184.216.34", in.ForeignIPv4().String())
	assert.EqualValues(t, VFlagIPv4, in.VFlag)
}

func TestKernCtlDecode(t *testing.T) {
	buf := make([]byte, socketInfoSize)
	binary.LittleEndian.PutUint32(buf[232:], uint32(SocketKindKernCtl))

	proto := buf[240:]
	binary.LittleEndian.PutUint32(proto[0:], 7)  // kcsi_id
	binary.LittleEndian.PutUint32(proto[20:], 2) // kcsi_unit
	copy(proto[24:], "com.apple.netsrc")         // kcsi_name

	var si SocketInfo
	si.decode(buf)

	ctl, ok := si.KernCtl()
	require.True(t, ok)
	assert.Equal(t, uint32(7), ctl.ID)
	assert.Equal(t, uint32(2), ctl.Unit)
	assert.Equal(t, "com.apple.netsrc", ctl.Name)
}

func TestSocketCommonStatistics(t *testing.T) {
	buf := make([]byte, socketInfoSize)
	binary.LittleEndian.PutUint64(buf[136:], 0xfeed)    // soi_so
	binary.LittleEndian.PutUint16(buf[170:], 5)         // soi_qlen
	binary.LittleEndian.PutUint32(buf[184:], 1024)      // soi_rcv.sbi_cc
	binary.LittleEndian.PutUint32(buf[208+4:], 64*1024) // soi_snd.sbi_hiwat
	binary.LittleEndian.PutUint32(buf[232:], uint32(SocketKindGeneric))

	var si SocketInfo
	si.decode(buf)

	assert.Equal(t, uint64(0xfeed), si.SO)
	assert.Equal(t, int16(5), si.QueueLen)
	assert.Equal(t, uint32(1024), si.Receive.CC)
	assert.Equal(t, uint32(64*1024), si.Send.HiWat)
	assert.Equal(t, SocketKindGeneric, si.Kind)
}
