package domain

import (
	"fmt"
	"time"
)

const cacheKeyPrefix = "buildx"

// CacheKey addresses a platform's build-layer cache fragment.
// Primary is the exact key written after the build; RestoreKeys are prefixes
// tried in order when Primary has no fragment yet.
type CacheKey struct {
	Primary     string
	RestoreKeys []string
}

// NewCacheKey derives the cache key for (runner OS, platform) on a given day.
func NewCacheKey(runnerOS string, p Platform, day time.Time) CacheKey {
	prefix := fmt.Sprintf("%s-%s-%s-", cacheKeyPrefix, runnerOS, p.Slug())
	return CacheKey{
		Primary:     prefix + day.UTC().Format("20060102"),
		RestoreKeys: []string{prefix},
	}
}

// BuildSpec describes how to build the project into an image.
type BuildSpec struct {
	Dockerfile string
	Context    string
	BuildArgs  []string
}

// BuildJob is one build matrix entry.
type BuildJob struct {
	Platform Platform
	// LocalRef is the tag given to the locally loaded image, <image-name>:<platform-slug>.
	LocalRef string
	CacheKey CacheKey
	Spec     BuildSpec
}

// LocalImageRef is the in-archive tag identifying a platform's image.
func LocalImageRef(imageName string, p Platform) string {
	return imageName + ":" + p.Slug()
}

// BuildStatus is the state of a finished matrix entry.
type BuildStatus string

const (
	BuildSucceeded BuildStatus = "success"
	BuildFailed    BuildStatus = "failed"
)

// BuildResult is the outcome of one matrix entry, including its archive.
type BuildResult struct {
	Platform Platform
	Status   BuildStatus
	LocalRef string
	Archive  *ImageArchive
	Duration time.Duration
	Err      error
}

// Succeeded reports whether the image was built and archived.
func (r BuildResult) Succeeded() bool {
	return r.Status == BuildSucceeded && r.Err == nil
}

// ArchivesFromResults collects the archives of successful builds.
func ArchivesFromResults(results []BuildResult) ArchiveSet {
	set := make(ArchiveSet, len(results))
	for _, r := range results {
		if r.Succeeded() && r.Archive != nil {
			set[r.Platform] = *r.Archive
		}
	}
	return set
}
