package publish

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sync/atomic"

	"demo-server/core/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// EnsureBucket creates bucket when it does not exist yet. It reports whether
// the bucket was created.
func EnsureBucket(ctx context.Context, client storage.Client, bucket, region string) (bool, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return false, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return false, nil
	}

	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		return false, fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}
	return true, nil
}

// Apply executes the actions in plan and returns how many succeeded.
// Nothing runs unless opts.Confirmed is set and opts.DryRun is not.
// Uploads run concurrently; deletions run afterwards, one at a time.
func Apply(
	ctx context.Context,
	client storage.Client,
	bucket string,
	baseDir string,
	plan *Plan,
	opts Options,
	logger *zap.Logger,
) (executed int, err error) {
	// Safety check: do not execute if not confirmed or dry-run
	if !opts.Confirmed || opts.DryRun {
		return 0, nil
	}

	limit := opts.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	fsys := os.DirFS(baseDir)
	var uploaded atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, action := range plan.Actions {
		if action.Type != ActionUpload {
			continue
		}
		g.Go(func() error {
			if err := upload(gctx, client, bucket, fsys, action); err != nil {
				return err
			}
			uploaded.Add(1)
			logger.Debug("Uploaded object", zap.String("key", action.Key), zap.Int64("size", action.Size))
			return nil
		})
	}
	err = g.Wait()
	executed = int(uploaded.Load())
	if err != nil {
		return executed, err
	}

	for _, action := range plan.Actions {
		if action.Type != ActionDelete {
			continue
		}
		if err := client.RemoveObject(ctx, bucket, action.Key, minio.RemoveObjectOptions{}); err != nil {
			return executed, fmt.Errorf("failed to delete %s: %w", action.Key, err)
		}
		executed++
		logger.Debug("Deleted object", zap.String("key", action.Key))
	}

	return executed, nil
}

func upload(ctx context.Context, client storage.Client, bucket string, fsys fs.FS, action Action) error {
	f, err := fsys.Open(action.Source)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", action.Source, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", action.Source, err)
	}

	_, err = client.PutObject(ctx, bucket, action.Key, f, info.Size(), minio.PutObjectOptions{
		ContentType: contentType(action.Source),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", action.Key, err)
	}
	return nil
}

func contentType(name string) string {
	if mime := utils.GetMIME(path.Ext(name)); mime != "" {
		return mime
	}
	return fiber.MIMEOctetStream
}
