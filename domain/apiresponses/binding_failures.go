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

package apiresponses

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/osb-autoscaler/autoscaler-broker/domain"
)

const (
	coreNotConfiguredLogKey  = "core-not-configured"
	bindingBadRequestLogKey  = "binding-bad-request"
	brokerUnauthorizedLogKey = "broker-unauthorized"
	bindingConflictLogKey    = "binding-conflict"
	bindingGoneLogKey        = "binding-gone"
	routeBindingLogKey       = "route-binding-not-supported"
	remoteErrorLogKey        = "autoscaler-core-error"
	routeBindingNotSupported = "RouteBindingNotSupported"
)

// NewBindingFailure translates an error returned by a domain.BindingGateway
// into the failure the broker answers with. Errors it does not know are
// returned unchanged, leaving the handler's unknown-error path in charge.
func NewBindingFailure(err error) error {
	var failure *FailureResponse
	if errors.As(err, &failure) {
		return failure
	}

	var badRequest *domain.BadRequestError
	if errors.As(err, &badRequest) {
		return NewFailureResponse(errors.New(badRequest.Body), http.StatusBadRequest, bindingBadRequestLogKey)
	}

	var remote *domain.RemoteError
	if errors.As(err, &remote) {
		return NewFailureResponse(err, http.StatusBadGateway, remoteErrorLogKey)
	}

	switch {
	case errors.Is(err, domain.ErrCoreEndpointNotConfigured):
		return NewFailureResponse(err, http.StatusInternalServerError, coreNotConfiguredLogKey)
	case errors.Is(err, domain.ErrBrokerUnauthorized):
		return NewFailureResponse(err, http.StatusInternalServerError, brokerUnauthorizedLogKey)
	case errors.Is(err, domain.ErrBindingConflict):
		return NewFailureResponse(err, http.StatusConflict, bindingConflictLogKey)
	case errors.Is(err, domain.ErrBindingGone):
		return NewFailureResponseBuilder(err, http.StatusGone, bindingGoneLogKey).WithEmptyResponse().Build()
	case errors.Is(err, domain.ErrRouteBindingNotSupported):
		return NewFailureResponseBuilder(err, http.StatusNotImplemented, routeBindingLogKey).WithErrorKey(routeBindingNotSupported).Build()
	}

	return err
}
