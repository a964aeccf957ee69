package domain

import "time"

// BuildRequest describes one build matrix.
type BuildRequest struct {
	RunID     string
	ImageName string
	Platforms []Platform
	Spec      BuildSpec
	RunnerOS  string
	// Day selects the cache fragment generation. Zero means today.
	Day time.Time
}

// PublishRequest is everything the publisher needs for one run.
type PublishRequest struct {
	RunID    string
	Target   ImageTarget
	Tags     []PublishTag
	Archives ArchiveSet
	// Expected is the configured platform set. Every expected platform must be
	// recovered and nothing else; nil disables the check.
	Expected []Platform
}

// PublishResult lists what was pushed.
type PublishResult struct {
	// Pushed holds architecture-qualified references in push order.
	Pushed    []string
	Manifests []ManifestList
}

// RunRequest starts a full release run.
type RunRequest struct {
	RunID   string
	Trigger Trigger
	// External holds gate statuses reported by the CI host.
	External []GateResult
}
