package telemetry

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"go.opentelemetry.io/otel"
)

// process-level health gauges for the resolver service, sampled on a
// fixed interval while the root context lives
var meter = otel.Meter("louvre.perf_stats")
var cpuGauge, _ = meter.Float64Gauge("cpu_usage")
var memoryGauge, _ = meter.Int64Gauge("allocated_mb")
var liveObjectsGauge, _ = meter.Int64Gauge("live_objects")
var goroutineGauge, _ = meter.Int64Gauge("goroutine_count")

const perfSampleInterval = time.Second * 30

func InstrumentPerfStats(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(perfSampleInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				recordPerfSample(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()
}

func recordPerfSample(ctx context.Context) {
	// an interval of 0 compares against the previous call instead of
	// blocking for a sampling window
	cpuUsage, err := cpu.Percent(0, false)
	if err != nil || len(cpuUsage) == 0 {
		slog.Warn("failed to read cpu usage", "err", err)
	} else {
		cpuGauge.Record(ctx, cpuUsage[0])
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	memoryGauge.Record(ctx, int64(memStats.Alloc/1_000_000))
	liveObjectsGauge.Record(ctx, int64(memStats.Mallocs)-int64(memStats.Frees))
	goroutineGauge.Record(ctx, int64(runtime.NumGoroutine()))
}
