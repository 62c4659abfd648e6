package main

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/tally-server/api"
	"github.com/carson-networks/tally-server/internal/config"
	"github.com/carson-networks/tally-server/internal/logging"
	"github.com/carson-networks/tally-server/internal/operator"
	"github.com/carson-networks/tally-server/internal/seed"
	"github.com/carson-networks/tally-server/internal/service"
	"github.com/carson-networks/tally-server/internal/storage"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.Info("tally-server starting")

	seedData, err := seed.Load(envConfig.SeedFile)
	if err != nil {
		logger.WithError(err).Fatal("seed.Load")
		return
	}

	store := storage.NewStorage()
	delegator := operator.NewOperatorDelegator(store, envConfig.OperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(store, delegator)
	if err := svc.Seed(context.Background(), seedData); err != nil {
		logger.WithError(err).Fatal("service.Seed")
		return
	}
	logger.WithFields(logrus.Fields{
		"ledgerEntries": len(seedData.Ledger),
		"invoices":      len(seedData.Invoices),
	}).Info("store seeded")

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		httpRest := api.Rest{
			Logger:         logger,
			Port:           envConfig.Port,
			Service:        svc,
			AllowedOrigins: envConfig.AllowedOrigins,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
