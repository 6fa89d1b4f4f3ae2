package integrity

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"time"

	"demo-server/feature/integrity/checks"

	"go.uber.org/zap"
)

// Service runs deployment checks against a site directory.
type Service struct {
	baseDir  string
	fsys     fs.FS
	required []string
	logger   *zap.Logger
	now      func() time.Time
}

// NewService creates a new integrity service for baseDir.
func NewService(baseDir string, required []string, logger *zap.Logger) *Service {
	return &Service{
		baseDir:  baseDir,
		fsys:     os.DirFS(baseDir),
		required: required,
		logger:   logger,
		now:      time.Now,
	}
}

// Run executes every check in order and returns the combined report. An error
// is returned only when the directory cannot be read at all.
func (s *Service) Run(ctx context.Context) (*Report, error) {
	if _, err := fs.Stat(s.fsys, "."); err != nil {
		return nil, fmt.Errorf("failed to read base directory %s: %w", s.baseDir, err)
	}

	var results []checks.Result

	files, err := checks.CheckFiles(s.fsys, s.required)
	if err != nil {
		return nil, err
	}
	results = append(results, files...)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	results = append(results, checks.CheckManifest(s.fsys), checks.CheckServiceWorker(s.fsys))

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	scripts, err := checks.CheckScripts(s.fsys)
	if err != nil {
		return nil, err
	}
	results = append(results, scripts...)

	report := &Report{
		Timestamp: s.now().UTC(),
		BaseDir:   s.baseDir,
		Checks:    results,
		Summary:   summarize(results),
	}

	s.logger.Info("Integrity checks completed",
		zap.String("base_dir", s.baseDir),
		zap.Int("total", report.Summary.Total),
		zap.Int("passed", report.Summary.Passed),
		zap.Int("failed", report.Summary.Failed),
		zap.Int("warnings", report.Summary.Warnings),
	)
	return report, nil
}
