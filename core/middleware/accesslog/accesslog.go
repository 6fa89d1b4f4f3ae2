// Package accesslog logs completed requests and forwards them to an optional recorder.
package accesslog

import (
	"context"
	"errors"
	"time"

	"demo-server/core/logger"
	"demo-server/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// Hit describes a single served request.
type Hit struct {
	Method   string
	Path     string
	Status   int
	Bytes    int
	Duration time.Duration
	RayID    string
	RemoteIP string
	At       time.Time
}

// Recorder persists hits. Implementations must be safe for concurrent use.
type Recorder interface {
	Record(ctx context.Context, hit Hit) error
}

// New returns the request logging middleware. rec may be nil.
func New(logg *zap.Logger, rec Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		elapsed := time.Since(start)

		l := logger.WithRayID(logg, c)
		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
			l.Error("Request error", zap.Error(err))
		}

		hit := Hit{
			Method:   c.Method(),
			Path:     c.Path(),
			Status:   status,
			Bytes:    bodySize(c.Response()),
			Duration: elapsed,
			RayID:    rayid.FromCtx(c),
			RemoteIP: c.IP(),
			At:       start,
		}

		l.Info("Request completed",
			zap.String("method", hit.Method),
			zap.String("path", hit.Path),
			zap.Int("status", hit.Status),
			zap.Duration("duration", hit.Duration),
			zap.String("ip", hit.RemoteIP),
		)

		if rec != nil {
			if recErr := rec.Record(c.UserContext(), hit); recErr != nil {
				l.Warn("Failed to record hit", zap.Error(recErr))
			}
		}

		return err
	}
}

// bodySize avoids draining streamed file bodies, whose size is already in the header.
func bodySize(resp *fasthttp.Response) int {
	if resp.IsBodyStream() {
		return max(resp.Header.ContentLength(), 0)
	}
	return len(resp.Body())
}
