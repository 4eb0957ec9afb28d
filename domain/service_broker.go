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

import "context"

//go:generate counterfeiter -o ../fakes/fake_binding_gateway.go -fake-name FakeBindingGateway . BindingGateway

// BindingGateway is the capability set a service type exposes to the broker's
// binding lifecycle. The broker selects one implementation per service type
// at dispatch time.
type BindingGateway interface {
	// CreateBinding binds the application appGUID to the service instance.
	// On success the returned binding carries the given identifiers unchanged.
	CreateBinding(ctx context.Context, bindingID, appGUID string, instance ServiceInstance) (ServiceInstanceBinding, error)

	// DeleteBinding removes the binding. Only the binding and service instance
	// identifiers are needed.
	DeleteBinding(ctx context.Context, bindingID, instanceID string) error

	// BindRoute binds a route to the service instance.
	BindRoute(ctx context.Context, instance ServiceInstance, route string) (RouteBinding, error)
}

type ServiceInstance struct {
	ID               string
	ServiceID        string
	PlanID           string
	OrganizationGUID string
	SpaceGUID        string
}

type ServiceInstanceBinding struct {
	ID                string
	ServiceInstanceID string
	AppGUID           string
	Credentials       map[string]any
}

type RouteBinding struct {
	ID                string
	ServiceInstanceID string
	Route             string
}
