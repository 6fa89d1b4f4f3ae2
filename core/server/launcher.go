package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"demo-server/core/advisory"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/net/netutil"
)

// Launcher binds the listener, opens the browser and serves the app until
// its context is cancelled.
type Launcher struct {
	cfg     Config
	baseDir string
	app     *fiber.App
	logger  *zap.Logger
	status  *Status
	opener  advisory.Opener

	mu    sync.Mutex
	addr  net.Addr
	ready chan struct{}
}

// Option customizes a Launcher.
type Option func(*Launcher)

// WithStatus sets where operator status lines are written.
func WithStatus(w io.Writer) Option {
	return func(l *Launcher) {
		l.status = NewStatus(w)
	}
}

// WithOpener sets the browser opener used after startup.
func WithOpener(o advisory.Opener) Option {
	return func(l *Launcher) {
		l.opener = o
	}
}

// NewLauncher creates a launcher for app serving baseDir.
func NewLauncher(cfg Config, baseDir string, app *fiber.App, logger *zap.Logger, opts ...Option) *Launcher {
	l := &Launcher{
		cfg:     cfg,
		baseDir: baseDir,
		app:     app,
		logger:  logger,
		status:  NewStatus(nil),
		opener:  advisory.SystemBrowser{},
		ready:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Ready is closed once the listener is bound.
func (l *Launcher) Ready() <-chan struct{} {
	return l.ready
}

// Addr returns the bound address, or nil before Ready.
func (l *Launcher) Addr() net.Addr {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.addr
}

// Start binds the listener and serves until ctx is cancelled, which is a
// clean shutdown and returns nil. Bind failures wrap ErrPortInUse or
// ErrBind. The listener is closed on every return path.
func (l *Launcher) Start(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", l.cfg.Address())
	if err != nil {
		err = classifyBindError(l.cfg.Address(), err)
		l.status.Banner(l.cfg, l.baseDir, l.cfg.Port)
		if errors.Is(err, ErrPortInUse) {
			l.status.PortInUse(l.cfg.Port)
		} else {
			l.status.StartFailed(err)
		}
		l.logger.Error("Server failed to start", zap.Error(err))
		return err
	}
	defer ln.Close()

	if l.cfg.MaxConnections > 0 {
		ln = netutil.LimitListener(ln, l.cfg.MaxConnections)
	}

	l.mu.Lock()
	l.addr = ln.Addr()
	l.mu.Unlock()
	close(l.ready)

	l.logger.Info("Starting server",
		zap.String("addr", ln.Addr().String()),
		zap.String("dir", l.baseDir),
		zap.Int("max_connections", l.cfg.MaxConnections),
	)
	l.status.Banner(l.cfg, l.baseDir, boundPort(ln.Addr(), l.cfg.Port))
	l.status.Running()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- l.app.Listener(ln)
	}()

	if l.cfg.OpenBrowser {
		l.openBrowser(ln.Addr())
	}

	select {
	case <-ctx.Done():
		l.status.Stopped()
		l.logger.Info("Shutting down server...")
		if err := l.app.ShutdownWithTimeout(l.cfg.ShutdownTimeout()); err != nil {
			l.logger.Warn("Graceful shutdown incomplete", zap.Error(err))
		}
		// Unblocks Serve if shutdown raced its start.
		_ = ln.Close()
		<-serveErr
		return nil
	case err := <-serveErr:
		return fmt.Errorf("server stopped unexpectedly: %w", err)
	}
}

// boundPort returns the port the kernel assigned, which differs from the
// configured one when that is 0.
func boundPort(addr net.Addr, fallback int) int {
	if tcp, ok := addr.(*net.TCPAddr); ok {
		return tcp.Port
	}
	return fallback
}

func (l *Launcher) openBrowser(addr net.Addr) {
	url := LocalURL(boundPort(addr, l.cfg.Port), l.cfg.LandingPage)

	out := advisory.Advise(l.logger, "open browser", func() error {
		return l.opener.Open(url)
	})
	if out.OK() {
		l.status.BrowserOpened()
	} else {
		l.status.ManualOpen(url)
	}
}
