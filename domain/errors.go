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

package domain

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrCoreEndpointNotConfigured = errors.New("autoscaler core could not be found in custom endpoints with identifier: osb-autoscaler-core")
	ErrBrokerUnauthorized        = errors.New("the broker is not authorized at the service instance (401 response)")
	ErrBindingConflict           = errors.New("the service instance already holds a binding in conflict with the requested one, the broker and the service instance may be out of sync")
	ErrBindingGone               = errors.New("the service instance can not find the binding, the broker and the service instance may be out of sync (410 response)")
	ErrRouteBindingNotSupported  = errors.New("route binding is not supported by this service")
)

// BadRequestError is returned when the remote side rejected a binding
// request. Body is the remote response body, unmodified.
type BadRequestError struct {
	BindingID string
	Body      string
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("binding %s was rejected as a bad request: %s", e.BindingID, e.Body)
}

// RemoteError covers every unexpected remote outcome. StatusCode is 0 when no
// response was received at all.
type RemoteError struct {
	Operation  string
	StatusCode int
	Body       string
	Cause      error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("the broker faced an unexpected error while calling the service instance to %s a binding: %d - %s", e.Operation, e.StatusCode, e.Body)
}

func (e *RemoteError) Unwrap() error {
	return e.Cause
}
