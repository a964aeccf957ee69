package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// LatestTag is the floating tag updated by version releases.
const LatestTag PublishTag = "latest"

// PublishTag is a logical version label pushed to the registry.
type PublishTag string

func (t PublishTag) String() string { return string(t) }

// Qualified returns the architecture-qualified tag for a platform.
func (t PublishTag) Qualified(p Platform) string {
	return string(t) + "-" + p.Slug()
}

// tagPattern is the registry tag grammar.
var tagPattern = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_.-]{0,127}$`)

// ValidateTags checks every tag, and every architecture-qualified form of it,
// against the registry tag grammar.
func ValidateTags(tags []PublishTag, platforms []Platform) error {
	for _, t := range tags {
		if !tagPattern.MatchString(string(t)) {
			return fmt.Errorf("%w: %q", ErrInvalidTag, t)
		}
		for _, p := range platforms {
			if q := t.Qualified(p); !tagPattern.MatchString(q) {
				return fmt.Errorf("%w: %q", ErrInvalidTag, q)
			}
		}
	}
	return nil
}

// TagPolicy controls how version tags map to floating tags.
type TagPolicy struct {
	// LatestOnPrerelease publishes "latest" for semver prerelease tags such as v1.0.0-rc1.
	LatestOnPrerelease bool
}

// DefaultTagPolicy publishes "latest" for every version tag.
func DefaultTagPolicy() TagPolicy {
	return TagPolicy{LatestOnPrerelease: true}
}

// DeriveTags maps a reference to the ordered, de-duplicated set of tags to publish.
//
//	refs/tags/v<version> -> v<version>, latest
//	refs/heads/<branch>  -> <branch>
//	anything else        -> none
//
// Slashes are replaced with dashes.
func DeriveTags(ref Reference, policy TagPolicy) []PublishTag {
	var candidates []string

	switch ref.Kind {
	case RefKindVersionTag:
		candidates = append(candidates, ref.Name())
		if policy.LatestOnPrerelease || !IsPrerelease(ref.Version()) {
			candidates = append(candidates, string(LatestTag))
		}
	case RefKindBranch:
		candidates = append(candidates, ref.Name())
	default:
		return nil
	}

	tags := make([]PublishTag, 0, len(candidates))
	seen := make(map[PublishTag]struct{}, len(candidates))
	for _, c := range candidates {
		tag := PublishTag(SanitizeTag(c))
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	return tags
}

// SanitizeTag replaces slashes, which registries reject in tags.
func SanitizeTag(s string) string {
	return strings.ReplaceAll(s, "/", "-")
}

// IsPrerelease reports whether version parses as semver with a prerelease component.
// Versions that are not semver are never prereleases.
func IsPrerelease(version string) bool {
	v, err := semver.NewVersion(version)
	if err != nil {
		return false
	}
	return v.Prerelease() != ""
}
