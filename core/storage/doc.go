// Package storage wraps the MinIO Go client used to publish the demo site to
// an S3-compatible bucket (AWS S3 or self-hosted MinIO).
//
// The Client interface only exposes the calls the publish feature needs, so
// it can be mocked in unit tests (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
