//go:build darwin

package kmesg

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func readMsgBuf() ([]byte, error) {
	raw, err := unix.SysctlRaw("kern.msgbuf")
	if err != nil {
		return nil, fmt.Errorf("failed to read kern.msgbuf: %v", err)
	}
	return raw, nil
}
