package hits

import (
	"context"
	"fmt"

	"demo-server/core/middleware/accesslog"

	"gorm.io/gorm"
)

const (
	// DefaultLimit is the number of paths returned when no limit is given.
	DefaultLimit = 10
	// MaxLimit caps the number of paths returned by Top.
	MaxLimit = 100
)

// Store persists page hits. It implements accesslog.Recorder.
type Store struct {
	db *gorm.DB
}

var _ accesslog.Recorder = (*Store)(nil)

// NewStore creates a store backed by db.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the page_hits table.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&PageHit{}); err != nil {
		return fmt.Errorf("failed to migrate page hits: %w", err)
	}
	return nil
}

// Record inserts one hit.
func (s *Store) Record(ctx context.Context, hit accesslog.Hit) error {
	row := PageHit{
		Path:       hit.Path,
		Method:     hit.Method,
		Status:     hit.Status,
		Bytes:      hit.Bytes,
		DurationMS: hit.Duration.Milliseconds(),
		RayID:      hit.RayID,
		RemoteIP:   hit.RemoteIP,
		CreatedAt:  hit.At,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to record hit: %w", err)
	}
	return nil
}

// Top returns the most requested paths, most hits first and ties by path.
func (s *Store) Top(ctx context.Context, limit int) ([]PathCount, error) {
	if limit <= 0 || limit > MaxLimit {
		return nil, fmt.Errorf("limit must be between 1 and %d, got %d", MaxLimit, limit)
	}

	var counts []PathCount
	err := s.db.WithContext(ctx).
		Model(&PageHit{}).
		Select("path, COUNT(*) AS hits").
		Group("path").
		Order("hits DESC, path ASC").
		Limit(limit).
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query top paths: %w", err)
	}
	return counts, nil
}
