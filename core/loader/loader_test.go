package loader_test

import (
	"errors"
	"testing"

	"demo-server/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loads   int
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }
func (s *stubFeature) Load(app fiber.Router) error {
	s.loads++
	return s.err
}

func TestManager_LoadAll(t *testing.T) {
	on := &stubFeature{name: "on", enabled: true}
	off := &stubFeature{name: "off", enabled: false}

	mgr := loader.NewManager()
	mgr.Register(on)
	mgr.Register(off)

	err := mgr.LoadAll(fiber.New())
	assert.NoError(t, err)
	assert.Equal(t, 1, on.loads)
	assert.Equal(t, 0, off.loads)
	assert.Equal(t, []string{"on"}, mgr.Loaded())
}

func TestManager_LoadAllStopsOnError(t *testing.T) {
	broken := &stubFeature{name: "broken", enabled: true, err: errors.New("bad routes")}
	after := &stubFeature{name: "after", enabled: true}

	mgr := loader.NewManager()
	mgr.Register(broken)
	mgr.Register(after)

	err := mgr.LoadAll(fiber.New())
	assert.EqualError(t, err, "failed to load feature broken: bad routes")
	assert.Equal(t, 0, after.loads)
	assert.Empty(t, mgr.Loaded())
}
