package server

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrPortInUse is returned when another socket already holds the port.
	ErrPortInUse = errors.New("port already in use")
	// ErrBind is returned for every other failure to open the listener.
	ErrBind = errors.New("failed to bind listener")
)

// IsAddrInUse reports whether err means the address is taken. The errno is
// checked first; message matching only covers platforms whose errors carry no
// usable code.
func IsAddrInUse(err error) bool {
	if err == nil {
		return false
	}
	if isAddrInUseErrno(err) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "address already in use") ||
		strings.Contains(msg, "only one usage of each socket address")
}

func classifyBindError(addr string, err error) error {
	if IsAddrInUse(err) {
		return fmt.Errorf("%w: %s: %w", ErrPortInUse, addr, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrBind, addr, err)
}
