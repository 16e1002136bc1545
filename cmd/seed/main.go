// Command seed fills the employees collection with generated records up to
// seed_employee_target. It reads the same configuration as the server.
package main

import (
	"context"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"

	"github.com/dalemusser/taskhub/internal/app/bootstrap"
	"github.com/dalemusser/taskhub/internal/app/seed"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(logger); err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}
}

func run(logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	coreCfg, appCfg, err := bootstrap.LoadConfig(logger)
	if err != nil {
		return err
	}
	if err := bootstrap.ValidateConfig(coreCfg, appCfg, logger); err != nil {
		return err
	}

	deps, err := bootstrap.ConnectDB(ctx, coreCfg, appCfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), timeouts.Short())
		defer cancel()
		_ = bootstrap.Shutdown(closeCtx, coreCfg, appCfg, deps, logger)
	}()
	logger.Info("connected to DB for seeding", zap.String("database", deps.Database.Name()))

	seedCtx, cancel := timeouts.WithTimeout(ctx, timeouts.Long(), logger, "seed employees")
	defer cancel()

	_, err = seed.Run(seedCtx, deps.Database, appCfg.SeedEmployeeTarget, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), logger)
	return err
}
