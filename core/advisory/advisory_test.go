package advisory_test

import (
	"errors"
	"testing"

	"demo-server/core/advisory"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestAdvise(t *testing.T) {
	tests := []struct {
		name   string
		action func() error
		ok     bool
		logged int
	}{
		{"Success", func() error { return nil }, true, 0},
		{"Failure", func() error { return errors.New("no display") }, false, 1},
		{"Panic", func() error { panic("exec missing") }, false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.InfoLevel)

			out := advisory.Advise(zap.New(core), "open browser", tt.action)

			assert.Equal(t, "open browser", out.Name)
			assert.Equal(t, tt.ok, out.OK())
			assert.Equal(t, tt.logged, logs.FilterMessage("Advisory action failed").Len())
		})
	}
}

func TestOpenerFunc(t *testing.T) {
	var got string
	opener := advisory.OpenerFunc(func(url string) error {
		got = url
		return nil
	})

	assert.NoError(t, opener.Open("http://localhost:8080/demo.html"))
	assert.Equal(t, "http://localhost:8080/demo.html", got)
}
