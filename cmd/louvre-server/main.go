package main

import (
	"flag"
	"os"

	"louvre-backend/lib/configutil"
	scraper "louvre-backend/lib/scrapers/louvre"
	"louvre-backend/lib/serviceutil"
	"louvre-backend/lib/telemetry"
	"louvre-backend/services/louvre"
)

type Config struct {
	Port    int    `json:"port"`
	BaseUrl string `json:"base_url"`
}

func main() {
	verbose := flag.Bool("v", false, "Enable verbose logging/instrumentation.")
	flag.Parse()

	ctx := serviceutil.SignalContext()

	telemetry.InitSlog(*verbose)
	tel, err := telemetry.SetupFromEnv(ctx, "louvre-server")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("setup telemetry", err)
	}
	if err == nil {
		defer tel.Shutdown(ctx)
		telemetry.InstrumentPerfStats(ctx)
	}

	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("read config", err)
	}
	if cfg.Port == 0 {
		cfg.Port = 8080
	}

	client, err := scraper.NewClient(scraper.ClientOptions{BaseUrl: cfg.BaseUrl})
	if err != nil {
		serviceutil.Fatal("init collections client", err)
	}
	service := louvre.NewService(client, louvre.RenderMarkdown)

	serviceutil.StartHttpServer(ctx, cfg.Port, newRouter(service))
}
