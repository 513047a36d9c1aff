//go:build !unix

package sidecar

import "os"

func signalOf(*os.ProcessState) string { return "" }
