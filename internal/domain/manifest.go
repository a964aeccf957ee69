package domain

// ImageTarget is the registry repository a release publishes to.
type ImageTarget struct {
	Registry string
	Name     string
}

// Repository returns <registry>/<name>.
func (t ImageTarget) Repository() string {
	return t.Registry + "/" + t.Name
}

// Ref returns <registry>/<name>:<tag>.
func (t ImageTarget) Ref(tag string) string {
	return t.Repository() + ":" + tag
}

// QualifiedRef returns the architecture-qualified reference for a tag and platform.
func (t ImageTarget) QualifiedRef(tag PublishTag, p Platform) string {
	return t.Ref(tag.Qualified(p))
}

// LockName is the mutual-exclusion key for publishing to this target.
func (t ImageTarget) LockName() string {
	return t.Repository()
}

// ManifestDescriptor identifies pushed registry content.
type ManifestDescriptor struct {
	MediaType string
	Digest    string
	Size      int64
}

// ManifestMember is one architecture-qualified image bound into a manifest list.
type ManifestMember struct {
	Platform   Platform
	Ref        string
	Descriptor ManifestDescriptor
}

// ManifestList binds one publish tag to every architecture-qualified image of a run.
type ManifestList struct {
	Tag        PublishTag
	Ref        string
	Members    []ManifestMember
	Descriptor ManifestDescriptor
}
