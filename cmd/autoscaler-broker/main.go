// Copyright (C) 2015-Present Pivotal Software, Inc. All rights reserved.

// This program and the accompanying materials are made available under
// the terms of the under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

// http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command autoscaler-broker runs the autoscaler service broker.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	broker "github.com/osb-autoscaler/autoscaler-broker"
	"github.com/osb-autoscaler/autoscaler-broker/autoscaler"
	"github.com/osb-autoscaler/autoscaler-broker/config"
)

const shutdownTimeout = 30 * time.Second

func main() {
	configPath := flag.String("config", envOr("BROKER_CONFIG", "config.yml"), "path to the broker configuration file")
	envFile := flag.String("env-file", os.Getenv("ENV_FILE_PATH"), "optional .env file loaded before the configuration")
	flag.Parse()

	logger, sink := newLogger()

	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			logger.Fatal("loading-env-file", err, lager.Data{"path": *envFile})
		}
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("loading-config", err, lager.Data{"path": *configPath})
	}

	level, err := lager.LogLevelFromString(strings.ToLower(cfg.LogLevel))
	if err != nil {
		logger.Fatal("parsing-log-level", err)
	}
	sink.SetMinLevel(level)

	if err := run(cfg, logger); err != nil {
		logger.Fatal("serving", err)
	}
}

func run(cfg config.Config, logger lager.Logger) error {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	metrics, err := autoscaler.NewMetrics(registry)
	if err != nil {
		return err
	}

	opts := []autoscaler.Option{
		autoscaler.WithTimeout(cfg.CoreTimeout),
		autoscaler.WithMetrics(metrics),
	}
	if cfg.SkipSSLValidation {
		logger.Info("skipping-ssl-validation")
		opts = append(opts, autoscaler.WithTransport(autoscaler.NewAcceptSelfSignedTransport()))
	}

	gateway := autoscaler.NewGateway(cfg.Endpoints, cfg.Autoscaler, logger, opts...)
	if !gateway.Configured() {
		logger.Info("autoscaler-core-not-configured", lager.Data{"identifier": autoscaler.CoreIdentifier})
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	mux.Handle("/", broker.New(gateway, cfg.Catalog.Services, logger, cfg.Credentials...))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errs := make(chan error, 1)
	go func() {
		logger.Info("listening", lager.Data{"port": cfg.Port})
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting-down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func newLogger() (lager.Logger, *lager.ReconfigurableSink) {
	logger := lager.NewLogger("autoscaler-broker")
	sink := lager.NewReconfigurableSink(lager.NewWriterSink(os.Stdout, lager.DEBUG), lager.INFO)
	logger.RegisterSink(sink)
	return logger, sink
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
