//go:build unix

package core

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// listenControl tunes the listening socket before bind: SO_REUSEADDR so
// a restarted server can rebind while old connections drain in TIME_WAIT
func listenControl(network, address string, c syscall.RawConn) error {
	var sockErr error
	err := c.Control(func(fd uintptr) {
		sockErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
	})
	if err != nil {
		return err
	}
	return sockErr
}
