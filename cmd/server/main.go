// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/MKhiriev/go-cart/internal/config"
	"github.com/MKhiriev/go-cart/internal/handler"
	"github.com/MKhiriev/go-cart/internal/logger"
	"github.com/MKhiriev/go-cart/internal/server"
	"github.com/MKhiriev/go-cart/internal/service"
	"github.com/MKhiriev/go-cart/internal/store"
	"github.com/MKhiriev/go-cart/internal/utils"
	"github.com/MKhiriev/go-cart/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	hashPassword := flag.String("hash-password", "", "Print a bcrypt hash of the given password for users.json and exit")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("go-cart-server").Fatal().Err(err).Msg("error getting configs")
	}

	if *hashPassword != "" {
		hash, err := utils.HashPassword(*hashPassword)
		if err != nil {
			logger.NewLogger("go-cart-server").Fatal().Err(err).Msg("error hashing password")
		}
		fmt.Println(hash)
		return
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("go-cart-server", cfg.App.LogLevel)
	if cfg.App.Version == config.DefaultVersion && buildInfo.HasVersion() {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("records_mode", cfg.Storage.RecordsMode).
		Bool("db", cfg.Storage.DB.DSN != "").
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}
