//go:build !darwin

package kmesg

import "golang.org/x/sys/unix"

func readMsgBuf() ([]byte, error) {
	return nil, unix.ENOTSUP
}
