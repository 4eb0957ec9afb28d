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

// Package broker exposes an autoscaler binding gateway as an Open Service
// Broker API v2 handler.
package broker

import (
	"net/http"

	"code.cloudfoundry.org/lager/v3"
	"github.com/gorilla/mux"

	"github.com/osb-autoscaler/autoscaler-broker/config"
	"github.com/osb-autoscaler/autoscaler-broker/domain"
	"github.com/osb-autoscaler/autoscaler-broker/handlers"
)

const (
	catalogPath = "/v2/catalog"
	bindingPath = "/v2/service_instances/{instance_id}/service_bindings/{binding_id}"
)

// New serves the catalog and the binding endpoints behind basic auth.
func New(gateway domain.BindingGateway, services []domain.Service, logger lager.Logger, credentials ...config.BrokerCredentials) http.Handler {
	return NewWithOptions(gateway, services, logger, WithBrokerCredentials(credentials...))
}

func attachRoutes(router *mux.Router, gateway domain.BindingGateway, services []domain.Service, logger lager.Logger) {
	apiHandler := handlers.NewApiHandler(gateway, services, logger)

	router.HandleFunc(catalogPath, apiHandler.Catalog).Methods(http.MethodGet)

	router.HandleFunc(bindingPath, apiHandler.Bind).Methods(http.MethodPut)
	router.HandleFunc(bindingPath, apiHandler.Unbind).Methods(http.MethodDelete)
}
