package domain

import (
	"fmt"
	"strings"
)

// EventKind is the source-control event that started a run.
type EventKind string

const (
	EventPush        EventKind = "push"
	EventPullRequest EventKind = "pull_request"
)

// ParseEventKind normalizes CI event names. Unknown events are rejected.
func ParseEventKind(s string) (EventKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "push", "tag", "workflow_dispatch":
		return EventPush, nil
	case "pull_request", "pull_request_target", "pull-request", "merge_request":
		return EventPullRequest, nil
	default:
		return "", fmt.Errorf("%w: unknown event %q", ErrInvalidConfig, s)
	}
}

// Trigger describes what started a run. Read once, immutable afterwards.
type Trigger struct {
	Ref   Reference
	Actor string
	Event EventKind
}
