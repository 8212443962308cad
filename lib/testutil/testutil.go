package testutil

import (
	"fmt"
	"testing"

	"louvre-backend/lib/telemetry"
)

// SetupService prepares the ambient environment (logging, telemetry)
// for a service-level test.
func SetupService(t testing.TB, name string) func() {
	return telemetry.SetupForTesting(t, fmt.Sprintf("test:%s", name))
}
