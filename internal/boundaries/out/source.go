package out

import (
	"context"

	"github.com/bnema/hoist/internal/domain"
)

// ReferenceSource discovers the reference checked out in the working tree.
type ReferenceSource interface {
	HeadReference(ctx context.Context) (string, error)
}

// ReportWriter persists the record of a run.
type ReportWriter interface {
	WriteReport(ctx context.Context, report domain.RunReport) error
}
