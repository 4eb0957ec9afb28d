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

package autoscaler

import (
	"time"

	"github.com/osb-autoscaler/autoscaler-broker/config"
	"github.com/osb-autoscaler/autoscaler-broker/domain"
)

// UnknownAppType is sent as the application type of every binding. The
// broker has no way of detecting the real type of the bound application.
const UnknownAppType = "unknown"

// BindingRequest is the body of a binding creation on the autoscaler core.
type BindingRequest struct {
	ID                string         `json:"id"`
	AppID             string         `json:"appId"`
	AppType           string         `json:"appType"`
	ScalerID          string         `json:"scalerId"`
	ServiceInstanceID string         `json:"serviceInstanceId"`
	CreationTime      int64          `json:"creationTime"`
	Context           BindingContext `json:"context"`
}

type BindingContext struct {
	Platform       string `json:"platform"`
	SpaceID        string `json:"spaceId"`
	OrganizationID string `json:"organizationId"`
}

func NewBindingRequest(bindingID, appGUID string, instance domain.ServiceInstance, platform config.AutoscalerPlatform, createdAt time.Time) BindingRequest {
	return BindingRequest{
		ID:                bindingID,
		AppID:             appGUID,
		AppType:           UnknownAppType,
		ScalerID:          platform.ScalerID,
		ServiceInstanceID: instance.ID,
		CreationTime:      createdAt.UnixMilli(),
		Context: BindingContext{
			Platform:       platform.Platform,
			SpaceID:        instance.SpaceGUID,
			OrganizationID: instance.OrganizationGUID,
		},
	}
}
