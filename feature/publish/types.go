package publish

// ActionType represents the type of publish action.
type ActionType string

const (
	// ActionUpload uploads a local file to the bucket.
	ActionUpload ActionType = "upload"
	// ActionDelete removes an object that has no local counterpart.
	ActionDelete ActionType = "delete"
)

// Action represents a planned mutation of the bucket.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the object key in the bucket.
	Key string `json:"key"`

	// Source is the slash-separated path relative to the base directory.
	// Empty for deletions.
	Source string `json:"source,omitempty"`

	// Size is the local file size in bytes. Zero for deletions.
	Size int64 `json:"size"`

	// Reason explains why this action is needed.
	Reason string `json:"reason"`
}

// Plan contains the actions needed to mirror the base directory into the bucket.
type Plan struct {
	// Actions contains planned uploads followed by planned deletions.
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

// Summary provides aggregate statistics for a publish plan.
type Summary struct {
	// LocalFiles is the number of publishable files in the base directory.
	LocalFiles int `json:"local_files"`

	// RemoteObjects is the number of objects found under the prefix.
	RemoteObjects int `json:"remote_objects"`

	// Unchanged counts local files whose object already matches.
	Unchanged int `json:"unchanged"`

	// Uploads counts planned uploads.
	Uploads int `json:"uploads"`

	// Deletes counts planned deletions.
	Deletes int `json:"deletes"`

	// Orphans counts remote objects without a local file, pruned or not.
	Orphans int `json:"orphans"`
}

// Options controls publish behavior.
type Options struct {
	// Prune plans deletion of objects that have no local file.
	Prune bool

	// DryRun prevents execution of any mutations if true.
	DryRun bool

	// Confirmed indicates the user has confirmed the mutations.
	// If false, nothing is executed regardless of DryRun.
	Confirmed bool

	// Concurrency bounds parallel uploads. Defaults to DefaultConcurrency.
	Concurrency int
}

// DefaultConcurrency is the number of parallel uploads when Options.Concurrency is unset.
const DefaultConcurrency = 4
