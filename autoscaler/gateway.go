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

// Package autoscaler implements the binding gateway of the autoscaler
// service. Bindings are created and deleted on the autoscaler core over
// HTTP; the core's answers are classified into the errors of the domain
// package.
package autoscaler

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"code.cloudfoundry.org/lager/v3"

	"github.com/osb-autoscaler/autoscaler-broker/config"
	"github.com/osb-autoscaler/autoscaler-broker/domain"
	"github.com/osb-autoscaler/autoscaler-broker/middlewares"
	"github.com/osb-autoscaler/autoscaler-broker/utils"
)

// CoreIdentifier is the identifier of the endpoint descriptor pointing at the
// autoscaler core.
const CoreIdentifier = "osb-autoscaler-core"

const (
	bindingsPath = "/bindings"

	gatewayLogKey       = "autoscaler-gateway"
	createBindingLogKey = "create-binding"
	deleteBindingLogKey = "delete-binding"
	bindRouteLogKey     = "bind-route"

	instanceIDLogKey = "instance-id"
	bindingIDLogKey  = "binding-id"
	statusLogKey     = "status"
	bodyLogKey       = "body"
)

// Gateway is the domain.BindingGateway of the autoscaler service. It is
// configured once and safe for concurrent use: nothing is written after
// NewGateway returns.
type Gateway struct {
	endpoint string
	platform config.AutoscalerPlatform
	client   *http.Client
	header   http.Header
	now      func() time.Time
	metrics  *Metrics
	logger   lager.Logger
}

var _ domain.BindingGateway = (*Gateway)(nil)

// NewGateway resolves the autoscaler core from the endpoint configuration.
// When no descriptor carries CoreIdentifier the gateway is still returned;
// every binding call then fails with domain.ErrCoreEndpointNotConfigured.
func NewGateway(endpoints config.EndpointConfiguration, platform config.AutoscalerPlatform, logger lager.Logger, opts ...Option) *Gateway {
	cfg := newDefaultOptions()
	for _, o := range opts {
		o(cfg)
	}

	logger = logger.Session(gatewayLogKey)

	endpoint, ok := endpoints.Find(CoreIdentifier)
	if ok {
		endpoint = strings.TrimRight(endpoint, "/")
		logger.Info("core-endpoint-resolved", lager.Data{"url": endpoint})
	} else {
		logger.Info("core-endpoint-missing", lager.Data{"identifier": CoreIdentifier})
	}

	header := http.Header{}
	header.Set("Content-Type", "application/json")

	return &Gateway{
		endpoint: endpoint,
		platform: platform,
		client: &http.Client{
			Transport:     cfg.transport,
			Timeout:       cfg.timeout,
			CheckRedirect: doNotFollowRedirects,
		},
		header:  header,
		now:     cfg.clock,
		metrics: cfg.metrics,
		logger:  logger,
	}
}

// Configured reports whether the autoscaler core was found.
func (g *Gateway) Configured() bool {
	return g.endpoint != ""
}

func (g *Gateway) CreateBinding(ctx context.Context, bindingID, appGUID string, instance domain.ServiceInstance) (domain.ServiceInstanceBinding, error) {
	logger := g.session(ctx, createBindingLogKey, instance.ID, bindingID)

	if !g.Configured() {
		logger.Error("core-not-configured", domain.ErrCoreEndpointNotConfigured)
		g.metrics.observe(createOperation, outcomeNotConfigured, 0)
		return domain.ServiceInstanceBinding{}, domain.ErrCoreEndpointNotConfigured
	}

	request := NewBindingRequest(bindingID, appGUID, instance, g.platform, g.now())

	started := time.Now()
	response := g.do(ctx, logger, http.MethodPost, g.endpoint+bindingsPath, request)
	err := classifyCreate(bindingID, response)
	g.metrics.observe(createOperation, outcomeOf(err), time.Since(started))

	if err != nil {
		logger.Error("failed", err, lager.Data{statusLogKey: response.StatusCode, bodyLogKey: response.Body})
		return domain.ServiceInstanceBinding{}, err
	}

	logger.Info("succeeded", lager.Data{statusLogKey: response.StatusCode})
	return domain.ServiceInstanceBinding{
		ID:                bindingID,
		ServiceInstanceID: instance.ID,
		AppGUID:           appGUID,
		Credentials:       map[string]any{},
	}, nil
}

func (g *Gateway) DeleteBinding(ctx context.Context, bindingID, instanceID string) error {
	logger := g.session(ctx, deleteBindingLogKey, instanceID, bindingID)

	if !g.Configured() {
		logger.Error("core-not-configured", domain.ErrCoreEndpointNotConfigured)
		g.metrics.observe(deleteOperation, outcomeNotConfigured, 0)
		return domain.ErrCoreEndpointNotConfigured
	}

	started := time.Now()
	response := g.do(ctx, logger, http.MethodDelete, g.endpoint+bindingsPath+"/"+url.PathEscape(bindingID), nil)
	err := classifyDelete(response)
	g.metrics.observe(deleteOperation, outcomeOf(err), time.Since(started))

	if err != nil {
		logger.Error("failed", err, lager.Data{statusLogKey: response.StatusCode, bodyLogKey: response.Body})
		return err
	}

	logger.Info("succeeded", lager.Data{statusLogKey: response.StatusCode})
	return nil
}

// BindRoute always fails: the autoscaler scales applications, not routes.
func (g *Gateway) BindRoute(ctx context.Context, instance domain.ServiceInstance, route string) (domain.RouteBinding, error) {
	logger := g.logger.Session(bindRouteLogKey, lager.Data{instanceIDLogKey: instance.ID, "route": route}, utils.DataForContext(ctx, middlewares.CorrelationIDKey, middlewares.RequestIdentityKey))
	logger.Error("not-supported", domain.ErrRouteBindingNotSupported)
	return domain.RouteBinding{}, domain.ErrRouteBindingNotSupported
}

func (g *Gateway) session(ctx context.Context, task, instanceID, bindingID string) lager.Logger {
	return g.logger.Session(task, lager.Data{
		instanceIDLogKey: instanceID,
		bindingIDLogKey:  bindingID,
	}, utils.DataForContext(ctx, middlewares.CorrelationIDKey, middlewares.RequestIdentityKey))
}
