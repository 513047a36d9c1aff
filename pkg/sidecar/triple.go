package sidecar

import "runtime"

// TargetTriple returns the target triple the bundler appends to sidecar file
// names for the running platform, e.g. "x86_64-unknown-linux-gnu".
func TargetTriple() string {
	return targetTriple(runtime.GOOS, runtime.GOARCH)
}

// ExeSuffix is the platform executable suffix: ".exe" on Windows, empty elsewhere.
func ExeSuffix() string {
	return exeSuffix(runtime.GOOS)
}

func exeSuffix(goos string) string {
	if goos == "windows" {
		return ".exe"
	}
	return ""
}

func targetTriple(goos, goarch string) string {
	arch := goarch
	switch goarch {
	case "amd64":
		arch = "x86_64"
	case "arm64":
		arch = "aarch64"
	case "386":
		arch = "i686"
	case "arm":
		arch = "armv7"
	case "riscv64":
		arch = "riscv64gc"
	}

	switch goos {
	case "darwin":
		return arch + "-apple-darwin"
	case "windows":
		return arch + "-pc-windows-msvc"
	case "linux":
		if goarch == "arm" {
			return arch + "-unknown-linux-gnueabihf"
		}
		return arch + "-unknown-linux-gnu"
	default:
		return arch + "-unknown-" + goos
	}
}
