// Package publish mirrors the served site directory into an S3-compatible bucket.
//
// Publishing is split into two phases, like a reconcile:
//
//  1. BuildPlan lists the local files and the objects under the configured
//     prefix. A file whose object is missing or has a different size gets an
//     upload action. With Options.Prune, an object without a local file gets
//     a delete action. Dot-prefixed files and directories are never published.
//  2. Apply executes a plan. It does nothing unless Options.Confirmed is set
//     and Options.DryRun is not. Uploads run on a bounded errgroup; deletions
//     run sequentially once every upload succeeded.
//
// EnsureBucket creates the target bucket on first publish.
package publish
