//go:build windows

package server

import (
	"errors"
	"syscall"

	"golang.org/x/sys/windows"
)

func isAddrInUseErrno(err error) bool {
	return errors.Is(err, windows.WSAEADDRINUSE) || errors.Is(err, syscall.EADDRINUSE)
}
