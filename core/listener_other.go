//go:build !unix

package core

import "syscall"

// listenControl is a no-op on platforms without sockopt tuning
func listenControl(network, address string, c syscall.RawConn) error {
	return nil
}
