package domain

// Outcome summarizes a run. A skip is not a failure.
type Outcome string

const (
	OutcomePublished Outcome = "published"
	OutcomeSkipped   Outcome = "skipped"
	OutcomeFailed    Outcome = "failed"
)

// RunReport is the record of one release run.
type RunReport struct {
	RunID      string
	Ref        string
	Tags       []PublishTag
	Outcome    Outcome
	SkipReason SkipReason
	Gates      GateReport
	Builds     []BuildResult
	Manifests  []ManifestList
	Err        error
}
