package domain

// RegistryCredential authenticates pushes to one registry host.
type RegistryCredential struct {
	Registry string
	Username string
	Password string
}

// Empty reports whether no secret material is present.
func (c RegistryCredential) Empty() bool {
	return c.Username == "" && c.Password == ""
}
