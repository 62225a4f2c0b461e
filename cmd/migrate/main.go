// Command migrate creates the shop tables and optionally loads reference data.
package main

import (
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/MikeMC777/shop-api/internal/config"
	"github.com/MikeMC777/shop-api/internal/logging"
	"github.com/MikeMC777/shop-api/internal/schema"
)

func main() {
	seed := flag.Bool("seed", false, "insert taxes, shipping regions and the demo catalog")
	flag.Parse()

	cfg, err := config.Read()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	gdb, err := schema.Open(cfg.PostgresDSN)
	if err != nil {
		logger.Fatal("postgres", zap.Error(err))
	}
	if err := schema.Migrate(gdb); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}
	logger.Info("schema up to date", zap.Int("tables", len(schema.Tables)))

	if *seed {
		if err := schema.Seed(gdb, logger); err != nil {
			logger.Fatal("seed", zap.Error(err))
		}
	}
}
