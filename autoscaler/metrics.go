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

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/osb-autoscaler/autoscaler-broker/domain"
)

const (
	createOperation = "create"
	deleteOperation = "delete"

	outcomeSuccess       = "success"
	outcomeBadRequest    = "bad_request"
	outcomeUnauthorized  = "unauthorized"
	outcomeConflict      = "conflict"
	outcomeGone          = "gone"
	outcomeError         = "error"
	outcomeNotConfigured = "not_configured"
)

// Metrics counts the calls made to the autoscaler core. A nil *Metrics
// records nothing.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewMetrics(registerer prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "autoscaler_broker",
			Subsystem: "core",
			Name:      "requests_total",
			Help:      "Binding calls to the autoscaler core by operation and outcome.",
		}, []string{"operation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "autoscaler_broker",
			Subsystem: "core",
			Name:      "request_duration_seconds",
			Help:      "Round trip time of binding calls to the autoscaler core.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}

	for _, c := range []prometheus.Collector{m.requests, m.duration} {
		if err := registerer.Register(c); err != nil {
			return nil, errors.Wrap(err, "registering autoscaler core metrics")
		}
	}
	return m, nil
}

func (m *Metrics) observe(operation, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(operation, outcome).Inc()
	if outcome != outcomeNotConfigured {
		m.duration.WithLabelValues(operation).Observe(elapsed.Seconds())
	}
}

func outcomeOf(err error) string {
	var badRequest *domain.BadRequestError
	switch {
	case err == nil:
		return outcomeSuccess
	case errors.As(err, &badRequest):
		return outcomeBadRequest
	case errors.Is(err, domain.ErrBrokerUnauthorized):
		return outcomeUnauthorized
	case errors.Is(err, domain.ErrBindingConflict):
		return outcomeConflict
	case errors.Is(err, domain.ErrBindingGone):
		return outcomeGone
	}
	return outcomeError
}
