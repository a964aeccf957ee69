package domain

import "strings"

const (
	branchRefPrefix = "refs/heads/"
	tagRefPrefix    = "refs/tags/"
)

// RefKind classifies a source-control reference.
type RefKind string

const (
	RefKindBranch     RefKind = "branch"
	RefKindVersionTag RefKind = "version-tag"
	RefKindOther      RefKind = "other"
)

// Reference is the source-control pointer that triggered a run.
type Reference struct {
	Raw  string
	Kind RefKind
}

// ParseReference classifies a raw git reference.
// A tag is a version tag only when its short name is "v" followed by at least one character.
func ParseReference(raw string) Reference {
	raw = strings.TrimSpace(raw)
	ref := Reference{Raw: raw, Kind: RefKindOther}

	switch {
	case strings.HasPrefix(raw, branchRefPrefix) && len(raw) > len(branchRefPrefix):
		ref.Kind = RefKindBranch
	case strings.HasPrefix(raw, tagRefPrefix):
		name := strings.TrimPrefix(raw, tagRefPrefix)
		if len(name) > 1 && name[0] == 'v' {
			ref.Kind = RefKindVersionTag
		}
	}

	return ref
}

// Name returns the short branch or tag name, or the raw value for other references.
func (r Reference) Name() string {
	switch {
	case strings.HasPrefix(r.Raw, branchRefPrefix):
		return strings.TrimPrefix(r.Raw, branchRefPrefix)
	case strings.HasPrefix(r.Raw, tagRefPrefix):
		return strings.TrimPrefix(r.Raw, tagRefPrefix)
	default:
		return r.Raw
	}
}

// Version returns the version string of a version tag without its leading "v".
func (r Reference) Version() string {
	if r.Kind != RefKindVersionTag {
		return ""
	}
	return strings.TrimPrefix(r.Name(), "v")
}

// IsBranch reports whether the reference points at a branch.
func (r Reference) IsBranch() bool { return r.Kind == RefKindBranch }

// IsVersionTag reports whether the reference is a version tag.
func (r Reference) IsVersionTag() bool { return r.Kind == RefKindVersionTag }

func (r Reference) String() string { return r.Raw }
