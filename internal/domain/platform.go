package domain

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// ArchiveExtension is appended to a platform slug to name its image archive.
const ArchiveExtension = ".tar.gz"

var platformPartRegex = regexp.MustCompile(`^[a-z0-9_]+$`)

// Platform identifies a build target as os/architecture[/variant].
type Platform struct {
	OS           string
	Architecture string
	Variant      string
}

// ParsePlatform parses "os/arch" or "os/arch/variant".
func ParsePlatform(s string) (Platform, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) < 2 || len(parts) > 3 {
		return Platform{}, fmt.Errorf("%w: %q must be os/arch[/variant]", ErrInvalidPlatform, s)
	}

	p := Platform{OS: parts[0], Architecture: parts[1]}
	if len(parts) == 3 {
		p.Variant = parts[2]
	}

	if err := p.Validate(); err != nil {
		return Platform{}, err
	}
	return p, nil
}

// ParsePlatforms parses a list of platform strings, rejecting duplicates.
func ParsePlatforms(values []string) ([]Platform, error) {
	seen := make(map[Platform]struct{}, len(values))
	platforms := make([]Platform, 0, len(values))

	for _, v := range values {
		p, err := ParsePlatform(v)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[p]; dup {
			return nil, fmt.Errorf("%w: %s listed twice", ErrInvalidPlatform, p)
		}
		seen[p] = struct{}{}
		platforms = append(platforms, p)
	}

	return platforms, nil
}

// PlatformFromSlug is the inverse of Platform.Slug.
func PlatformFromSlug(slug string) (Platform, error) {
	parts := strings.Split(slug, "-")
	if len(parts) < 2 || len(parts) > 3 {
		return Platform{}, fmt.Errorf("%w: slug %q must be os-arch[-variant]", ErrInvalidPlatform, slug)
	}
	return ParsePlatform(strings.Join(parts, "/"))
}

// PlatformFromArchiveName recovers the platform encoded in an archive file name.
func PlatformFromArchiveName(name string) (Platform, error) {
	if !strings.HasSuffix(name, ArchiveExtension) {
		return Platform{}, fmt.Errorf("%w: %q is not a %s archive", ErrInvalidPlatform, name, ArchiveExtension)
	}
	return PlatformFromSlug(strings.TrimSuffix(name, ArchiveExtension))
}

// Validate checks that every component is a lowercase token.
func (p Platform) Validate() error {
	if !platformPartRegex.MatchString(p.OS) {
		return fmt.Errorf("%w: os %q", ErrInvalidPlatform, p.OS)
	}
	if !platformPartRegex.MatchString(p.Architecture) {
		return fmt.Errorf("%w: architecture %q", ErrInvalidPlatform, p.Architecture)
	}
	if p.Variant != "" && !platformPartRegex.MatchString(p.Variant) {
		return fmt.Errorf("%w: variant %q", ErrInvalidPlatform, p.Variant)
	}
	return nil
}

// String returns the canonical os/arch[/variant] form.
func (p Platform) String() string {
	if p.Variant == "" {
		return p.OS + "/" + p.Architecture
	}
	return p.OS + "/" + p.Architecture + "/" + p.Variant
}

// Slug returns the filesystem and tag safe form, slashes replaced with dashes.
func (p Platform) Slug() string {
	return strings.ReplaceAll(p.String(), "/", "-")
}

// ArchiveName is the artifact file name for this platform's image.
func (p Platform) ArchiveName() string {
	return p.Slug() + ArchiveExtension
}

// SortPlatforms orders platforms by their canonical string.
func SortPlatforms(platforms []Platform) {
	sort.Slice(platforms, func(i, j int) bool {
		return platforms[i].String() < platforms[j].String()
	})
}
