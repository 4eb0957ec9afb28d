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

package broker

import (
	"net/http"

	"code.cloudfoundry.org/lager/v3"
	"github.com/gorilla/mux"

	"github.com/osb-autoscaler/autoscaler-broker/auth"
	"github.com/osb-autoscaler/autoscaler-broker/config"
	"github.com/osb-autoscaler/autoscaler-broker/domain"
	"github.com/osb-autoscaler/autoscaler-broker/middlewares"
)

func NewWithOptions(gateway domain.BindingGateway, services []domain.Service, logger lager.Logger, opts ...Option) http.Handler {
	cfg := newDefaultConfig(logger)
	WithOptions(append(opts, withDefaultMiddleware())...)(cfg)
	attachRoutes(cfg.router, gateway, services, logger)

	return cfg.router
}

type Option func(*options)

// WithRouter attaches the routes to an existing router. The default
// middleware is then left to the caller.
func WithRouter(router *mux.Router) Option {
	return func(o *options) {
		o.router = router
		o.customRouter = true
	}
}

func WithBrokerCredentials(credentials ...config.BrokerCredentials) Option {
	return func(o *options) {
		users := make(map[string]string, len(credentials))
		for _, c := range credentials {
			users[c.Username] = c.Password
		}
		o.router.Use(auth.NewWrapperMultiple(users).Wrap)
	}
}

func WithCustomAuth(authMiddleware mux.MiddlewareFunc) Option {
	return func(o *options) {
		o.router.Use(authMiddleware)
	}
}

func withDefaultMiddleware() Option {
	return func(o *options) {
		if !o.customRouter {
			o.router.Use(middlewares.APIVersionMiddleware{Logger: o.logger}.ValidateAPIVersionHdr)
			o.router.Use(middlewares.AddCorrelationIDToContext)
			o.router.Use(middlewares.AddRequestIdentityToContext)
		}
	}
}

func WithOptions(opts ...Option) Option {
	return func(o *options) {
		for _, opt := range opts {
			opt(o)
		}
	}
}

func newDefaultConfig(logger lager.Logger) *options {
	return &options{
		router:       mux.NewRouter(),
		customRouter: false,
		logger:       logger,
	}
}

type options struct {
	router       *mux.Router
	customRouter bool
	logger       lager.Logger
}
