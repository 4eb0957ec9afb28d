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
	"github.com/gorilla/mux"

	"github.com/osb-autoscaler/autoscaler-broker/domain"
	"github.com/osb-autoscaler/autoscaler-broker/domain/apiresponses"
	"github.com/osb-autoscaler/autoscaler-broker/middlewares"
	"github.com/osb-autoscaler/autoscaler-broker/utils"
)

const (
	invalidBindDetailsErrorKey = "invalid-bind-details"
	bindLogKey                 = "bind"
)

func (h APIHandler) Bind(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	instanceID := vars["instance_id"]
	bindingID := vars["binding_id"]

	logger := h.logger.Session(bindLogKey, lager.Data{
		instanceIDLogKey: instanceID,
		bindingIDLogKey:  bindingID,
	}, utils.DataForContext(req.Context(), middlewares.CorrelationIDKey, middlewares.RequestIdentityKey))

	requestId := requestIdentity(req)

	var details domain.BindDetails
	if err := json.NewDecoder(req.Body).Decode(&details); err != nil {
		logger.Error(invalidBindDetailsErrorKey, err)
		h.respond(w, http.StatusUnprocessableEntity, requestId, apiresponses.ErrorResponse{
			Description: err.Error(),
		})
		return
	}

	if details.ServiceID == "" {
		logger.Error(serviceIdMissingKey, serviceIdError)
		h.respond(w, http.StatusBadRequest, requestId, apiresponses.ErrorResponse{
			Description: serviceIdError.Error(),
		})
		return
	}

	if details.PlanID == "" {
		logger.Error(planIdMissingKey, planIdError)
		h.respond(w, http.StatusBadRequest, requestId, apiresponses.ErrorResponse{
			Description: planIdError.Error(),
		})
		return
	}

	if _, _, ok := domain.FindPlan(h.services, details.ServiceID, details.PlanID); !ok {
		logger.Error(invalidPlanKey, invalidPlanIDError)
		h.respond(w, http.StatusBadRequest, requestId, apiresponses.ErrorResponse{
			Description: invalidPlanIDError.Error(),
		})
		return
	}

	instance, err := details.ServiceInstance(instanceID)
	if err != nil {
		logger.Error(invalidBindDetailsErrorKey, err)
		h.respond(w, http.StatusUnprocessableEntity, requestId, apiresponses.ErrorResponse{
			Description: err.Error(),
		})
		return
	}

	if route := details.Route(); route != "" {
		if _, err := h.gateway.BindRoute(req.Context(), instance, route); err != nil {
			h.respondWithError(w, logger, requestId, err)
			return
		}
		h.respond(w, http.StatusCreated, requestId, apiresponses.BindingResponse{})
		return
	}

	binding, err := h.gateway.CreateBinding(req.Context(), bindingID, details.ApplicationGUID(), instance)
	if err != nil {
		h.respondWithError(w, logger, requestId, err)
		return
	}

	credentials := binding.Credentials
	if credentials == nil {
		credentials = map[string]any{}
	}

	logger.Info("bound", lager.Data{"app-guid": binding.AppGUID})
	h.respond(w, http.StatusCreated, requestId, apiresponses.BindingResponse{
		Credentials: credentials,
	})
}
