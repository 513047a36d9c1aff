//go:build !devbuild

package version

// Current is the mode this binary was compiled for. Rebuild with -tags devbuild
// for a development shell.
const Current = Release
