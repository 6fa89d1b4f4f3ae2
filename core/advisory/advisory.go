// Package advisory runs best-effort side effects whose failure never affects
// the correctness of the caller, such as opening a browser tab.
package advisory

import (
	"fmt"

	"go.uber.org/zap"
)

// Outcome is the result of an advisory action. It is not an error and is
// never returned as one.
type Outcome struct {
	Name string
	Err  error
}

// OK reports whether the action succeeded.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Advise runs action, logging (never returning) any failure or panic.
func Advise(logger *zap.Logger, name string, action func() error) (out Outcome) {
	out.Name = name
	defer func() {
		if r := recover(); r != nil {
			out.Err = fmt.Errorf("advisory action panicked: %v", r)
		}
		if out.Err != nil {
			logger.Info("Advisory action failed", zap.String("action", name), zap.Error(out.Err))
		} else {
			logger.Debug("Advisory action done", zap.String("action", name))
		}
	}()

	out.Err = action()
	return out
}
