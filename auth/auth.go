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

package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"
)

const notAuthorized = "Not Authorized"

// Wrapper guards handlers with HTTP basic auth. Credentials are kept as
// SHA-256 checksums and compared in constant time.
type Wrapper struct {
	credentials []credential
}

type credential struct {
	username [sha256.Size]byte
	password [sha256.Size]byte
}

func NewWrapperMultiple(users map[string]string) *Wrapper {
	w := &Wrapper{}
	for username, password := range users {
		w.credentials = append(w.credentials, credential{
			username: sha256.Sum256([]byte(username)),
			password: sha256.Sum256([]byte(password)),
		})
	}
	return w
}

func NewWrapper(username, password string) *Wrapper {
	return NewWrapperMultiple(map[string]string{username: password})
}

// Wrap has the shape of a mux.MiddlewareFunc.
func (w *Wrapper) Wrap(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if !w.authorized(r) {
			rw.Header().Set("WWW-Authenticate", `Basic realm="autoscaler-broker"`)
			http.Error(rw, notAuthorized, http.StatusUnauthorized)
			return
		}

		handler.ServeHTTP(rw, r)
	})
}

func (w *Wrapper) authorized(r *http.Request) bool {
	username, password, ok := r.BasicAuth()
	if !ok {
		return false
	}

	u := sha256.Sum256([]byte(username))
	p := sha256.Sum256([]byte(password))
	for _, c := range w.credentials {
		if c.matches(u, p) {
			return true
		}
	}
	return false
}

func (c credential) matches(username, password [sha256.Size]byte) bool {
	return subtle.ConstantTimeCompare(c.username[:], username[:])&
		subtle.ConstantTimeCompare(c.password[:], password[:]) == 1
}
