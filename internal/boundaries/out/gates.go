package out

import (
	"context"

	"github.com/bnema/hoist/internal/domain"
)

// GateRunner executes one external verification step.
// A gate that cannot be started is reported as failed, never as an error.
type GateRunner interface {
	Run(ctx context.Context, gate domain.GateSpec) domain.GateResult
}
