// Package checks implements the individual deployment checks run against a
// site directory. Every check reads through an fs.FS so it can be exercised
// against an in-memory tree.
package checks
