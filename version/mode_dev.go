//go:build devbuild

package version

// Current is the mode this binary was compiled for. Built with -tags devbuild.
const Current = Development
