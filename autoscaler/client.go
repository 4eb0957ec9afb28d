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
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"code.cloudfoundry.org/lager/v3"
	"github.com/pkg/errors"

	"github.com/osb-autoscaler/autoscaler-broker/domain"
	"github.com/osb-autoscaler/autoscaler-broker/middlewares"
)

const correlationIDHeader = "X-Correlation-ID"

// ResponseError is implemented by transport errors that carry the remote
// response they failed on. Such errors are classified exactly like the
// response itself would have been.
type ResponseError interface {
	error
	StatusCode() int
	ResponseBody() string
}

// remoteResponse is what the core answered. StatusCode is 0 when the request
// never produced a response; cause then holds the transport error. A cause
// next to a status means the body could not be read in full.
type remoteResponse struct {
	StatusCode int
	Body       string
	cause      error
}

func (r remoteResponse) successful() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (g *Gateway) do(ctx context.Context, logger lager.Logger, method, target string, payload any) remoteResponse {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return failedResponse(errors.Wrap(err, "encoding request body"))
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return failedResponse(errors.Wrap(err, "building request"))
	}
	req.Header = g.header.Clone()
	if correlationID, ok := ctx.Value(middlewares.CorrelationIDKey).(string); ok && correlationID != "" {
		req.Header.Set(correlationIDHeader, correlationID)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		logger.Error("request-failed", err, lager.Data{"method": method})
		return responseFromError(err)
	}
	defer resp.Body.Close()

	contents, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error("reading-response-body", err, lager.Data{statusLogKey: resp.StatusCode})
		return remoteResponse{
			StatusCode: resp.StatusCode,
			Body:       string(contents),
			cause:      errors.Wrap(err, "reading response body"),
		}
	}

	return remoteResponse{StatusCode: resp.StatusCode, Body: string(contents)}
}

// doNotFollowRedirects hands a 3xx back to the classification instead of
// replaying a POST or DELETE as a GET on the Location target.
func doNotFollowRedirects(*http.Request, []*http.Request) error {
	return http.ErrUseLastResponse
}

func responseFromError(err error) remoteResponse {
	var responseErr ResponseError
	if errors.As(err, &responseErr) {
		return remoteResponse{StatusCode: responseErr.StatusCode(), Body: responseErr.ResponseBody()}
	}
	return failedResponse(err)
}

func failedResponse(err error) remoteResponse {
	return remoteResponse{Body: err.Error(), cause: err}
}

func classifyCreate(bindingID string, response remoteResponse) error {
	switch {
	case response.successful():
		return nil
	case response.cause != nil:
		return remoteError(createOperation, response)
	case response.StatusCode == http.StatusBadRequest:
		return &domain.BadRequestError{BindingID: bindingID, Body: response.Body}
	case response.StatusCode == http.StatusUnauthorized:
		return domain.ErrBrokerUnauthorized
	case response.StatusCode == http.StatusConflict:
		return domain.ErrBindingConflict
	}
	return remoteError(createOperation, response)
}

func classifyDelete(response remoteResponse) error {
	switch {
	case response.successful():
		return nil
	case response.cause != nil:
		return remoteError(deleteOperation, response)
	case response.StatusCode == http.StatusGone:
		return domain.ErrBindingGone
	case response.StatusCode == http.StatusUnauthorized:
		return domain.ErrBrokerUnauthorized
	}
	return remoteError(deleteOperation, response)
}

func remoteError(operation string, response remoteResponse) error {
	return &domain.RemoteError{
		Operation:  operation,
		StatusCode: response.StatusCode,
		Body:       response.Body,
		Cause:      response.cause,
	}
}
