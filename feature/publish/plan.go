package publish

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"demo-server/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/samber/lo"
)

// BuildPlan compares the files under baseDir with the objects under prefix
// in bucket and returns the actions needed to mirror the directory.
// It does NOT execute actions; use Apply for that.
func BuildPlan(
	ctx context.Context,
	client storage.Client,
	bucket string,
	prefix string,
	baseDir string,
	opts Options,
) (*Plan, error) {
	prefix = strings.Trim(prefix, "/")

	local, err := localFiles(os.DirFS(baseDir))
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", baseDir, err)
	}

	remote, err := remoteObjects(ctx, client, bucket, prefix)
	if err != nil {
		return nil, err
	}

	plan := &Plan{}
	plan.Summary.LocalFiles = len(local)
	plan.Summary.RemoteObjects = len(remote)

	for _, f := range local {
		key := objectKey(prefix, f.path)
		size, exists := remote[key]
		switch {
		case !exists:
			plan.Actions = append(plan.Actions, Action{
				Type: ActionUpload, Key: key, Source: f.path, Size: f.size, Reason: "missing in bucket",
			})
		case size != f.size:
			plan.Actions = append(plan.Actions, Action{
				Type: ActionUpload, Key: key, Source: f.path, Size: f.size,
				Reason: fmt.Sprintf("size differs: local=%d remote=%d", f.size, size),
			})
		default:
			plan.Summary.Unchanged++
		}
	}

	localKeys := make(map[string]struct{}, len(local))
	for _, f := range local {
		localKeys[objectKey(prefix, f.path)] = struct{}{}
	}

	orphans := lo.Filter(lo.Keys(remote), func(key string, _ int) bool {
		_, ok := localKeys[key]
		return !ok
	})
	slices.Sort(orphans)
	plan.Summary.Orphans = len(orphans)

	if opts.Prune {
		for _, key := range orphans {
			plan.Actions = append(plan.Actions, Action{Type: ActionDelete, Key: key, Reason: "missing locally"})
		}
	}

	plan.Summary.Uploads = lo.CountBy(plan.Actions, func(a Action) bool { return a.Type == ActionUpload })
	plan.Summary.Deletes = lo.CountBy(plan.Actions, func(a Action) bool { return a.Type == ActionDelete })

	return plan, nil
}

type localFile struct {
	path string
	size int64
}

// localFiles walks fsys in lexical order, skipping dot-prefixed files and directories.
func localFiles(fsys fs.FS) ([]localFile, error) {
	var files []localFile
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p != "." && isHidden(d.Name()) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		files = append(files, localFile{path: p, size: info.Size()})
		return nil
	})
	return files, err
}

const noSuchBucket = "NoSuchBucket"

// remoteObjects lists every object under prefix, keyed by object key.
// Folder markers and hidden objects are ignored.
func remoteObjects(ctx context.Context, client storage.Client, bucket, prefix string) (map[string]int64, error) {
	opts := minio.ListObjectsOptions{Recursive: true}
	if prefix != "" {
		opts.Prefix = prefix + "/"
	}

	// Cancelling stops the lister goroutine when returning early.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	objects := make(map[string]int64)
	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			// A bucket that does not exist yet is published into from scratch.
			if minio.ToErrorResponse(obj.Err).Code == noSuchBucket {
				return map[string]int64{}, nil
			}
			return nil, fmt.Errorf("failed to list objects in %s: %w", bucket, obj.Err)
		}
		if strings.HasSuffix(obj.Key, "/") || hasHiddenSegment(obj.Key) {
			continue
		}
		objects[obj.Key] = obj.Size
	}
	return objects, nil
}

func objectKey(prefix, rel string) string {
	if prefix == "" {
		return rel
	}
	return path.Join(prefix, rel)
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

func hasHiddenSegment(key string) bool {
	return lo.SomeBy(strings.Split(key, "/"), isHidden)
}
