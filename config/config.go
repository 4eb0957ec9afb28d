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

package config

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/osb-autoscaler/autoscaler-broker/domain"
)

const (
	DefaultPort     = 8080
	DefaultLogLevel = "info"
)

type Config struct {
	Port              int                   `yaml:"port"`
	LogLevel          string                `yaml:"log_level"`
	Credentials       []BrokerCredentials   `yaml:"credentials"`
	Endpoints         EndpointConfiguration `yaml:"endpoints"`
	Autoscaler        AutoscalerPlatform    `yaml:"autoscaler"`
	SkipSSLValidation bool                  `yaml:"skip_ssl_validation"`
	CoreTimeout       time.Duration         `yaml:"core_timeout"`
	Catalog           Catalog               `yaml:"catalog"`
}

type BrokerCredentials struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// EndpointConfiguration lists the remote services the broker knows about, in
// configuration order.
type EndpointConfiguration struct {
	Custom []ServerAddress `yaml:"custom"`
}

type ServerAddress struct {
	Identifier string `yaml:"identifier"`
	URL        string `yaml:"url"`
}

// AutoscalerPlatform identifies the platform and the scaler bindings belong to.
type AutoscalerPlatform struct {
	Platform string `yaml:"platform"`
	ScalerID string `yaml:"scaler_id"`
}

type Catalog struct {
	Services []domain.Service `yaml:"services"`
}

// Find returns the URL of the first descriptor with the given identifier.
func (e EndpointConfiguration) Find(identifier string) (string, bool) {
	for _, server := range e.Custom {
		if server.Identifier == identifier {
			return server.URL, true
		}
	}
	return "", false
}

// Load reads the file at path, expands ${VAR} references from the
// environment and parses the result.
func Load(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "reading config file %s", path)
	}

	return Parse([]byte(os.ExpandEnv(string(contents))))
}

func Parse(contents []byte) (Config, error) {
	config := Config{
		Port:     DefaultPort,
		LogLevel: DefaultLogLevel,
	}

	if err := yaml.Unmarshal(contents, &config); err != nil {
		return Config{}, errors.Wrap(err, "parsing config")
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate checks the settings the broker can not start without. A missing
// autoscaler core endpoint is deliberately not one of them: bindings fail
// with a configuration error until it is added.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return errors.Errorf("invalid port: %d", c.Port)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "error", "fatal":
	default:
		return errors.Errorf("invalid log_level: %q", c.LogLevel)
	}

	if len(c.Credentials) == 0 {
		return errors.New("at least one set of broker credentials is required")
	}
	for i, credentials := range c.Credentials {
		if credentials.Username == "" || credentials.Password == "" {
			return errors.Errorf("credentials[%d]: username and password must not be empty", i)
		}
	}

	for i, server := range c.Endpoints.Custom {
		if server.Identifier == "" {
			return errors.Errorf("endpoints.custom[%d]: identifier must not be empty", i)
		}
		if server.URL == "" {
			return errors.Errorf("endpoints.custom[%d] (%s): url must not be empty", i, server.Identifier)
		}
	}

	if c.CoreTimeout < 0 {
		return errors.Errorf("invalid core_timeout: %s", c.CoreTimeout)
	}

	return nil
}
