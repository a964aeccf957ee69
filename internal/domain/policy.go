package domain

import "strings"

// SkipReason explains why publishing was intentionally skipped.
type SkipReason string

const (
	SkipNone        SkipReason = ""
	SkipPullRequest SkipReason = "pull-request"
	SkipBotActor    SkipReason = "bot-actor"
	SkipBranch      SkipReason = "skip-branch"
	SkipNoTags      SkipReason = "no-tags"
)

// DefaultBotActors are dependency-update bots that never publish.
var DefaultBotActors = []string{"dependabot[bot]"}

// PublishPolicy holds the authorization rules applied before publishing.
// These are not quality checks and apply even when every gate passed.
type PublishPolicy struct {
	BotActors    []string
	SkipBranches []string
}

// PolicyDecision is the outcome of evaluating a PublishPolicy.
type PolicyDecision struct {
	Allowed bool
	Reason  SkipReason
}

// Evaluate applies the policy to a trigger.
func (p PublishPolicy) Evaluate(t Trigger) PolicyDecision {
	if t.Event == EventPullRequest {
		return PolicyDecision{Reason: SkipPullRequest}
	}

	for _, bot := range p.BotActors {
		if strings.EqualFold(bot, t.Actor) {
			return PolicyDecision{Reason: SkipBotActor}
		}
	}

	if t.Ref.IsBranch() {
		for _, branch := range p.SkipBranches {
			if branch == t.Ref.Name() {
				return PolicyDecision{Reason: SkipBranch}
			}
		}
	}

	return PolicyDecision{Allowed: true}
}
