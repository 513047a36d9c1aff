package version

// Mode selects between the development and release behavior of the shell.
// It is fixed at compile time; see Current.
type Mode string

const (
	// Development builds expect a developer-run backend and never spawn it.
	Development Mode = "development"
	// Release builds spawn the bundled backend sidecar.
	Release Mode = "release"
)

// IsDevelopment reports whether m is the development mode.
func (m Mode) IsDevelopment() bool {
	return m == Development
}

func (m Mode) String() string {
	if m == "" {
		return string(Release)
	}
	return string(m)
}
