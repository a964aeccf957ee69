// Package gate implements quality gate aggregation and publish policy.
package gate

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/zerowrap"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/hoist/internal/boundaries/out"
	"github.com/bnema/hoist/internal/domain"
)

// Service runs gates and evaluates the publish policy.
type Service struct {
	runner out.GateRunner
	policy domain.PublishPolicy
}

// NewService creates a new gate service.
func NewService(runner out.GateRunner, policy domain.PublishPolicy) *Service {
	return &Service{
		runner: runner,
		policy: policy,
	}
}

// RunGates runs every gate in parallel and reports results in input order.
// A failing gate never interrupts the others.
func (s *Service) RunGates(ctx context.Context, gates []domain.GateSpec) domain.GateReport {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "RunGates",
	})
	log := zerowrap.FromCtx(ctx)

	results := make([]domain.GateResult, len(gates))
	var g errgroup.Group
	for i, gate := range gates {
		g.Go(func() error {
			results[i] = s.runner.Run(ctx, gate)
			return nil
		})
	}
	_ = g.Wait()

	report := domain.GateReport{Results: results}
	if report.Passed() {
		log.Info().Int(zerowrap.FieldCount, len(results)).Msg("all gates passed")
	} else {
		log.Warn().Strs("failed", report.Failed()).Msg("gates failed")
	}
	return report
}

// EvaluatePolicy decides whether a run may publish, independent of gate results.
func (s *Service) EvaluatePolicy(ctx context.Context, trigger domain.Trigger) domain.PolicyDecision {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "EvaluatePolicy",
		"ref":                 trigger.Ref.String(),
		"actor":               trigger.Actor,
		"event":               string(trigger.Event),
	})
	log := zerowrap.FromCtx(ctx)

	decision := s.policy.Evaluate(trigger)
	if !decision.Allowed {
		log.Info().Str("reason", string(decision.Reason)).Msg("publishing skipped by policy")
	}
	return decision
}

// ParseExternal converts name=status pairs reported by a CI host into gate results.
// Only "success" passes.
func ParseExternal(values []string) ([]domain.GateResult, error) {
	results := make([]domain.GateResult, 0, len(values))
	for _, v := range values {
		name, status, ok := strings.Cut(v, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: gate status %q must be name=status", domain.ErrInvalidConfig, v)
		}
		passed := strings.EqualFold(strings.TrimSpace(status), "success")
		res := domain.GateResult{Name: name, Passed: passed}
		if !passed {
			res.ExitCode = 1
		}
		results = append(results, res)
	}
	return results, nil
}
