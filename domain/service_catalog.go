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

type Service struct {
	ID            string           `json:"id" yaml:"id"`
	Name          string           `json:"name" yaml:"name"`
	Description   string           `json:"description" yaml:"description"`
	Bindable      bool             `json:"bindable" yaml:"bindable"`
	PlanUpdatable bool             `json:"plan_updateable" yaml:"plan_updateable"`
	Tags          []string         `json:"tags,omitempty" yaml:"tags"`
	Requires      []string         `json:"requires,omitempty" yaml:"requires"`
	Metadata      *ServiceMetadata `json:"metadata,omitempty" yaml:"metadata"`
	Plans         []ServicePlan    `json:"plans" yaml:"plans"`
}

type ServicePlan struct {
	ID          string               `json:"id" yaml:"id"`
	Name        string               `json:"name" yaml:"name"`
	Description string               `json:"description" yaml:"description"`
	Free        *bool                `json:"free,omitempty" yaml:"free"`
	Bindable    *bool                `json:"bindable,omitempty" yaml:"bindable"`
	Metadata    *ServicePlanMetadata `json:"metadata,omitempty" yaml:"metadata"`
}

type ServiceMetadata struct {
	DisplayName         string `json:"displayName,omitempty" yaml:"display_name"`
	ImageUrl            string `json:"imageUrl,omitempty" yaml:"image_url"`
	LongDescription     string `json:"longDescription,omitempty" yaml:"long_description"`
	ProviderDisplayName string `json:"providerDisplayName,omitempty" yaml:"provider_display_name"`
	DocumentationUrl    string `json:"documentationUrl,omitempty" yaml:"documentation_url"`
	SupportUrl          string `json:"supportUrl,omitempty" yaml:"support_url"`
}

type ServicePlanMetadata struct {
	DisplayName string   `json:"displayName,omitempty" yaml:"display_name"`
	Bullets     []string `json:"bullets,omitempty" yaml:"bullets"`
}

// FindPlan looks a plan up across the catalog.
func FindPlan(services []Service, serviceID, planID string) (*Service, *ServicePlan, bool) {
	for i := range services {
		if services[i].ID != serviceID {
			continue
		}
		for j := range services[i].Plans {
			if services[i].Plans[j].ID == planID {
				return &services[i], &services[i].Plans[j], true
			}
		}
		return &services[i], nil, false
	}
	return nil, nil, false
}

func FreeValue(v bool) *bool {
	return &v
}

func BindableValue(v bool) *bool {
	return &v
}
