package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/ff-assignment/internal/adapter"
	"github.com/feral-file/ff-assignment/internal/config"
	"github.com/feral-file/ff-assignment/internal/logger"
	"github.com/feral-file/ff-assignment/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	seed       = flag.Bool("seed", true, "Insert sample assignments when they are missing")
)

// sampleAssignments are inserted by -seed so a fresh database has something to query
var sampleAssignments = []store.SeedAssignment{
	{CustomerPhone: "+60123456789", Assignee: "John Doe"},
	{CustomerPhone: "+60198765432", Assignee: "Jane Smith"},
}

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadInitDBConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "assignment-init-db",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	db, driver, err := store.Open(cfg.Database.URL, cfg.Debug)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}

	if err := store.Migrate(db); err != nil {
		logger.FatalCtx(ctx, "Failed to migrate database", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Database tables created", zap.String("driver", string(driver)))

	if !*seed {
		return
	}

	dataStore := store.NewSQLStore(db, adapter.NewClock())
	inserted, err := dataStore.SeedAssignments(ctx, sampleAssignments)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to seed assignments", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Sample assignments seeded",
		zap.Int("inserted", inserted),
		zap.Int("skipped", len(sampleAssignments)-inserted))
}
