// Package kmesg reads the kernel message ring buffer, the text the
// dmesg tool prints. Reading the buffer requires root.
package kmesg

import "os"

// Root reports whether the current process runs as root, which the
// kernel requires for reading the message buffer.
func Root() bool {
	return os.Getuid() == 0
}

// Buffer returns the current contents of the kernel message buffer as
// text.
func Buffer() (string, error) {
	raw, err := readMsgBuf()
	if err != nil {
		return "", err
	}
	return scrub(raw), nil
}

// scrub turns the raw ring buffer into printable text: the ring is
// NUL-padded and may carry stray control bytes from wrapped records.
func scrub(raw []byte) string {
	out := make([]byte, 0, len(raw))
	for _, b := range raw {
		switch {
		case b == '\n' || b == '\t':
			out = append(out, b)
		case b < 0x20 || b == 0x7f:
			// NUL padding and control bytes are dropped
		default:
			out = append(out, b)
		}
	}
	return string(out)
}
