package libproc

import (
	"bytes"
	"encoding/binary"
)

// decoder walks a raw kernel record at explicit byte offsets. The
// kernel writes records in host byte order, which is little-endian on
// every darwin machine this interface exists for; fields the kernel
// stores in network byte order are kept raw here and converted by the
// accessors that expose them.
type decoder struct {
	buf []byte
	off int
}

func (d *decoder) u8() uint8 {
	v := d.buf[d.off]
	d.off++
	return v
}

func (d *decoder) u16() uint16 {
	v := binary.LittleEndian.Uint16(d.buf[d.off:])
	d.off += 2
	return v
}

func (d *decoder) u32() uint32 {
	v := binary.LittleEndian.Uint32(d.buf[d.off:])
	d.off += 4
	return v
}

func (d *decoder) u64() uint64 {
	v := binary.LittleEndian.Uint64(d.buf[d.off:])
	d.off += 8
	return v
}

func (d *decoder) i16() int16 { return int16(d.u16()) }
func (d *decoder) i32() int32 { return int32(d.u32()) }
func (d *decoder) i64() int64 { return int64(d.u64()) }

// bytes copies the next n bytes out of the record.
func (d *decoder) bytes(n int) []byte {
	v := make([]byte, n)
	copy(v, d.buf[d.off:d.off+n])
	d.off += n
	return v
}

// str reads a fixed-width NUL-padded C string field.
func (d *decoder) str(n int) string {
	v := d.buf[d.off : d.off+n]
	d.off += n
	return string(bytes.TrimRight(v, "\x00"))
}

// skip advances over reserved or padding bytes.
func (d *decoder) skip(n int) {
	d.off += n
}
