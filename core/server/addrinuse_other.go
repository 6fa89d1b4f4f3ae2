//go:build !windows

package server

import (
	"errors"
	"syscall"
)

func isAddrInUseErrno(err error) bool {
	return errors.Is(err, syscall.EADDRINUSE)
}
