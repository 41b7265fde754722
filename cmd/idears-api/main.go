package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/idears-dev/idears/internal/config"
	"github.com/idears-dev/idears/internal/logger"
	"github.com/idears-dev/idears/internal/router"
	"github.com/idears-dev/idears/internal/setup"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Logging.Level, cfg.Logging.Json)

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		// database initialization failure is fatal at startup
		logger.Log.Error("failed to initialize dependencies", "error", err)
		os.Exit(1)
	}
	defer deps.Storage.Cleanup()

	r := router.New(deps)

	addr := fmt.Sprintf(":%d", cfg.Http.Port)
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	logger.Log.Info("server started", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
