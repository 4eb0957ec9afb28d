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

package handlers

import (
	"encoding/json"
	"net/http"

	"code.cloudfoundry.org/lager/v3"
	"github.com/pkg/errors"

	"github.com/osb-autoscaler/autoscaler-broker/domain"
	"github.com/osb-autoscaler/autoscaler-broker/domain/apiresponses"
	"github.com/osb-autoscaler/autoscaler-broker/middlewares"
)

const (
	instanceIDLogKey = "instance-id"
	bindingIDLogKey  = "binding-id"

	serviceIdMissingKey = "service-id-missing"
	planIdMissingKey    = "plan-id-missing"
	invalidPlanKey      = "invalid-plan"
	unknownErrorKey     = "unknown-error"
)

var (
	serviceIdError     = errors.New("service_id missing")
	planIdError        = errors.New("plan_id missing")
	invalidPlanIDError = errors.New("plan-id not in the catalog")
)

// APIHandler serves the catalog and the binding endpoints of the broker.
// Bindings are delegated to the gateway of the service type.
type APIHandler struct {
	gateway  domain.BindingGateway
	services []domain.Service
	logger   lager.Logger
}

func NewApiHandler(gateway domain.BindingGateway, services []domain.Service, logger lager.Logger) APIHandler {
	return APIHandler{
		gateway:  gateway,
		services: services,
		logger:   logger,
	}
}

func (h APIHandler) respond(w http.ResponseWriter, status int, requestIdentity string, response any) {
	w.Header().Set("Content-Type", "application/json")
	if requestIdentity != "" {
		w.Header().Set(middlewares.RequestIdentityHeader, requestIdentity)
	}
	w.WriteHeader(status)

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	err := encoder.Encode(response)
	if err != nil {
		h.logger.Error("encoding-response", err, lager.Data{"status": status, "response": response})
	}
}

// respondWithError answers with the failure the error translates to, or a
// plain 500 for errors nobody classified.
func (h APIHandler) respondWithError(w http.ResponseWriter, logger lager.Logger, requestIdentity string, err error) {
	var failure *apiresponses.FailureResponse
	if errors.As(apiresponses.NewBindingFailure(err), &failure) {
		logger.Error(failure.LoggerAction(), err)
		h.respond(w, failure.ValidatedStatusCode(logger), requestIdentity, failure.ErrorResponse())
		return
	}

	logger.Error(unknownErrorKey, err)
	h.respond(w, http.StatusInternalServerError, requestIdentity, apiresponses.ErrorResponse{
		Description: err.Error(),
	})
}

func requestIdentity(req *http.Request) string {
	identity, _ := req.Context().Value(middlewares.RequestIdentityKey).(string)
	return identity
}
