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

import "encoding/json"

type BindDetails struct {
	AppGUID      string          `json:"app_guid"`
	PlanID       string          `json:"plan_id"`
	ServiceID    string          `json:"service_id"`
	BindResource *BindResource   `json:"bind_resource,omitempty"`
	RawContext   json.RawMessage `json:"context,omitempty"`
}

type BindResource struct {
	AppGuid   string `json:"app_guid,omitempty"`
	SpaceGuid string `json:"space_guid,omitempty"`
	Route     string `json:"route,omitempty"`
}

// BindContext is the platform context sent alongside a bind request.
type BindContext struct {
	Platform         string `json:"platform,omitempty"`
	OrganizationGUID string `json:"organization_guid,omitempty"`
	SpaceGUID        string `json:"space_guid,omitempty"`
}

type UnbindDetails struct {
	PlanID    string `json:"plan_id"`
	ServiceID string `json:"service_id"`
}

// ApplicationGUID prefers the top level app_guid and falls back to the one in
// bind_resource.
func (d BindDetails) ApplicationGUID() string {
	if d.AppGUID != "" {
		return d.AppGUID
	}
	if d.BindResource != nil {
		return d.BindResource.AppGuid
	}
	return ""
}

// Route returns the route of a route binding request, or "" for an
// application binding.
func (d BindDetails) Route() string {
	if d.BindResource != nil && d.ApplicationGUID() == "" {
		return d.BindResource.Route
	}
	return ""
}

// Context decodes the raw platform context. A missing context decodes to the
// zero value.
func (d BindDetails) Context() (BindContext, error) {
	var c BindContext
	if len(d.RawContext) == 0 {
		return c, nil
	}
	err := json.Unmarshal(d.RawContext, &c)
	return c, err
}

// ServiceInstance assembles the instance the binding targets. Organization and
// space come from the platform context; the space from bind_resource is used
// when the context carries none.
func (d BindDetails) ServiceInstance(instanceID string) (ServiceInstance, error) {
	c, err := d.Context()
	if err != nil {
		return ServiceInstance{}, err
	}

	instance := ServiceInstance{
		ID:               instanceID,
		ServiceID:        d.ServiceID,
		PlanID:           d.PlanID,
		OrganizationGUID: c.OrganizationGUID,
		SpaceGUID:        c.SpaceGUID,
	}
	if instance.SpaceGUID == "" && d.BindResource != nil {
		instance.SpaceGUID = d.BindResource.SpaceGuid
	}
	return instance, nil
}
