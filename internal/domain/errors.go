// Package domain contains the release model: references, platforms, tags,
// archives, gates and manifests. It has no infrastructure dependencies.
package domain

import "errors"

// Domain errors represent release-level failures that cross layers.
// Callers match them with errors.Is.
var (
	// Reference and tag errors
	ErrInvalidReference = errors.New("invalid source reference")
	ErrInvalidTag       = errors.New("invalid publish tag")

	// Platform errors
	ErrInvalidPlatform  = errors.New("invalid platform")
	ErrPlatformMismatch = errors.New("archive platform does not match its file name")
	ErrNoPlatforms      = errors.New("no platforms configured")

	// Stage errors
	ErrGateFailed     = errors.New("quality gate failed")
	ErrBuildFailed    = errors.New("image build failed")
	ErrArchiveFailed  = errors.New("image archive failed")
	ErrPushFailed     = errors.New("image push failed")
	ErrManifestFailed = errors.New("manifest list push failed")

	// Infrastructure errors
	ErrArtifactNotFound    = errors.New("artifact not found")
	ErrLockFailed          = errors.New("failed to acquire release lock")
	ErrCredentialsNotFound = errors.New("registry credentials not found")
	ErrInvalidConfig       = errors.New("invalid configuration")
)
