// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-cart/internal/adapter"
	"github.com/MKhiriev/go-cart/internal/config"
	"github.com/MKhiriev/go-cart/internal/logger"
	"github.com/MKhiriev/go-cart/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	flag.Usage = usage

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewClientLogger("go-cart-client", cfg.App.LogLevel)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := &cli{
		adapter:   serverAdapter,
		out:       os.Stdout,
		buildInfo: models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
		logger:    log,
	}

	if err = app.run(ctx, flag.Args()); err != nil {
		log.Err(err).Strs("args", flag.Args()).Msg("command failed")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if errors.Is(err, errUsage) {
			usage()
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `Usage: %s [global flags] <command> [command flags]

Commands:
  login      -u <username> -p <password>    print an access token
  protected  check that a token is accepted
  list       print the cart with totals
  add        -id N -name S -image S -price F -quantity N
  update     -id N -quantity N
  delete     -id N
  version    print client build info and server version

Cart commands take -token <t> (env GO_CART_TOKEN) or -u/-p to log in first.

Global flags:
`, os.Args[0])
	flag.PrintDefaults()
}
