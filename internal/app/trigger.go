package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/zerowrap"
	"github.com/google/uuid"

	"github.com/bnema/hoist/internal/boundaries/out"
	"github.com/bnema/hoist/internal/domain"
)

// TriggerInput holds explicit trigger values from the command line.
// Empty fields fall back to the CI environment, then to the local repository.
type TriggerInput struct {
	Ref   string
	Actor string
	Event string
}

// ResolveTrigger reads the run trigger once.
func ResolveTrigger(ctx context.Context, input TriggerInput, getenv func(string) string, source out.ReferenceSource) (domain.Trigger, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:  "app",
		zerowrap.FieldAction: "ResolveTrigger",
	})
	log := zerowrap.FromCtx(ctx)

	ref := input.Ref
	if ref == "" {
		ref = refFromEnv(getenv)
	}
	if ref == "" && source != nil {
		head, err := source.HeadReference(ctx)
		if err != nil {
			return domain.Trigger{}, log.WrapErr(err, "no reference given and none found in the environment or repository")
		}
		ref = head
	}
	if ref == "" {
		return domain.Trigger{}, fmt.Errorf("%w: no reference given", domain.ErrInvalidReference)
	}

	actor := firstNonEmpty(input.Actor, getenv("HOIST_ACTOR"), getenv("GITHUB_ACTOR"), getenv("GITLAB_USER_LOGIN"))

	var event domain.EventKind
	if input.Event != "" {
		kind, err := domain.ParseEventKind(input.Event)
		if err != nil {
			return domain.Trigger{}, err
		}
		event = kind
	} else {
		raw := firstNonEmpty(getenv("HOIST_EVENT"), getenv("GITHUB_EVENT_NAME"))
		kind, err := domain.ParseEventKind(raw)
		if err != nil {
			// CI hosts report many event names; only pull requests change behavior.
			log.Debug().Str("event", raw).Msg("unrecognized CI event treated as push")
			kind = domain.EventPush
		}
		event = kind
	}

	trigger := domain.Trigger{
		Ref:   domain.ParseReference(ref),
		Actor: actor,
		Event: event,
	}
	log.Debug().
		Str("ref", trigger.Ref.String()).
		Str("kind", string(trigger.Ref.Kind)).
		Str("actor", trigger.Actor).
		Str("event", string(trigger.Event)).
		Msg("trigger resolved")
	return trigger, nil
}

// refFromEnv returns the full git reference reported by the CI host.
func refFromEnv(getenv func(string) string) string {
	if ref := getenv("HOIST_REF"); ref != "" {
		return ref
	}
	if ref := getenv("GITHUB_REF"); strings.HasPrefix(ref, "refs/") {
		return ref
	}
	if name := getenv("GITHUB_REF_NAME"); name != "" {
		switch getenv("GITHUB_REF_TYPE") {
		case "tag":
			return "refs/tags/" + name
		case "branch":
			return "refs/heads/" + name
		}
	}
	if tag := getenv("CI_COMMIT_TAG"); tag != "" {
		return "refs/tags/" + tag
	}
	if branch := getenv("CI_COMMIT_BRANCH"); branch != "" {
		return "refs/heads/" + branch
	}
	if ref := getenv("BUILD_SOURCEBRANCH"); strings.HasPrefix(ref, "refs/") {
		return ref
	}
	return ""
}

// ResolveRunID returns the identifier shared by every job of one CI run.
// Outside CI a random id is generated.
func ResolveRunID(explicit string, getenv func(string) string) string {
	if id := firstNonEmpty(explicit, getenv("HOIST_RUN_ID"), getenv("GITHUB_RUN_ID"), getenv("CI_PIPELINE_ID"), getenv("BUILD_BUILDID")); id != "" {
		return id
	}
	return uuid.New().String()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
