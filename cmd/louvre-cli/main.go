package main

import (
	"context"
	"log/slog"
	"os"

	"louvre-backend/cmd/louvre-cli/commands"
	"louvre-backend/lib/telemetry"
)

func main() {
	telemetry.InitSlog(false)

	ctx := context.Background()
	_, err := telemetry.SetupFromEnv(ctx, "louvre-cli")
	if err != nil && !os.IsNotExist(err) {
		// the CLI is still usable without a collector, but a broken
		// telemetry.json5 should not fail silently
		slog.Warn("failed to setup telemetry", "err", err)
	}

	commands.ExecuteContext(ctx)
}
