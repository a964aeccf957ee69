package domain

// ImageArchive is a compressed, serialized image stored as a run artifact.
type ImageArchive struct {
	Platform Platform
	// Name is the artifact name, <platform-slug>.tar.gz.
	Name string
	// LocalRef is the tag embedded in the archive.
	LocalRef string
	Size     int64
}

// ArchiveSet maps each platform to its archive for one run.
type ArchiveSet map[Platform]ImageArchive

// Platforms returns the set's platforms in canonical order.
func (s ArchiveSet) Platforms() []Platform {
	platforms := make([]Platform, 0, len(s))
	for p := range s {
		platforms = append(platforms, p)
	}
	SortPlatforms(platforms)
	return platforms
}

// RecoveredImage is an archive loaded back into the local image store.
type RecoveredImage struct {
	// Platform comes from the tag embedded in the archive.
	Platform Platform
	LocalRef string
	Archive  ImageArchive
}
