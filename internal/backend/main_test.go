package backend

import (
	"os"
	"testing"

	"github.com/grovetools/jobpilot/testutil"
)

func TestMain(m *testing.M) {
	testutil.RunFakeSidecarIfRequested()
	os.Exit(m.Run())
}
