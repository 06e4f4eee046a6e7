// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
)

type fileConfig struct {
	App struct {
		TokenSignKey                 string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer                  string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration                Duration `json:"token_duration" yaml:"token_duration"`
		CookieMaxAge                 Duration `json:"cookie_max_age" yaml:"cookie_max_age"`
		PasswordHashCost             int      `json:"password_hash_cost" yaml:"password_hash_cost"`
		FrontendURL                  string   `json:"frontend_url" yaml:"frontend_url"`
		Environment                  string   `json:"environment" yaml:"environment"`
		ConcealResetAccountExistence bool     `json:"conceal_reset_account_existence" yaml:"conceal_reset_account_existence"`
	} `json:"app" yaml:"app"`

	Storage struct {
		DB struct {
			DSN            string   `json:"dsn" yaml:"dsn"`
			Name           string   `json:"name" yaml:"name"`
			MaxOpenConns   int      `json:"max_open_conns" yaml:"max_open_conns"`
			ConnectTimeout Duration `json:"connect_timeout" yaml:"connect_timeout"`
			IdleTimeout    Duration `json:"idle_timeout" yaml:"idle_timeout"`
			MaxRetries     int      `json:"max_retries" yaml:"max_retries"`
			RetryInterval  Duration `json:"retry_interval" yaml:"retry_interval"`
		} `json:"db" yaml:"db"`

		Redis struct {
			Address  string `json:"address" yaml:"address"`
			Password string `json:"password" yaml:"password"`
			DB       int    `json:"db" yaml:"db"`
		} `json:"redis" yaml:"redis"`
	} `json:"storage" yaml:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" yaml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		AllowedOrigins []string `json:"allowed_origins" yaml:"allowed_origins"`
	} `json:"server" yaml:"server"`

	Mail struct {
		Transport string   `json:"transport" yaml:"transport"`
		Host      string   `json:"host" yaml:"host"`
		Port      int      `json:"port" yaml:"port"`
		Username  string   `json:"username" yaml:"username"`
		Password  string   `json:"password" yaml:"password"`
		From      string   `json:"from" yaml:"from"`
		RelayURL  string   `json:"relay_url" yaml:"relay_url"`
		Timeout   Duration `json:"timeout" yaml:"timeout"`
	} `json:"mail" yaml:"mail"`

	RateLimit struct {
		MaxLoginAttempts int      `json:"max_login_attempts" yaml:"max_login_attempts"`
		LoginCooldown    Duration `json:"login_cooldown" yaml:"login_cooldown"`
		MaxResetRequests int      `json:"max_reset_requests" yaml:"max_reset_requests"`
		ResetCooldown    Duration `json:"reset_cooldown" yaml:"reset_cooldown"`
	} `json:"rate_limit" yaml:"rate_limit"`
}

// parseFile reads a config file and decodes it according to its
// extension: .json, .yaml or .yml.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err = json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFile, path)
	}

	return fc.toStructured(), nil
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:                 fc.App.TokenSignKey,
			TokenIssuer:                  fc.App.TokenIssuer,
			TokenDuration:                time.Duration(fc.App.TokenDuration),
			CookieMaxAge:                 time.Duration(fc.App.CookieMaxAge),
			PasswordHashCost:             fc.App.PasswordHashCost,
			FrontendURL:                  fc.App.FrontendURL,
			Environment:                  fc.App.Environment,
			ConcealResetAccountExistence: fc.App.ConcealResetAccountExistence,
		},
		Storage: Storage{
			DB: DB{
				DSN:            fc.Storage.DB.DSN,
				Name:           fc.Storage.DB.Name,
				MaxOpenConns:   fc.Storage.DB.MaxOpenConns,
				ConnectTimeout: time.Duration(fc.Storage.DB.ConnectTimeout),
				IdleTimeout:    time.Duration(fc.Storage.DB.IdleTimeout),
				MaxRetries:     fc.Storage.DB.MaxRetries,
				RetryInterval:  time.Duration(fc.Storage.DB.RetryInterval),
			},
			Redis: Redis{
				Address:  fc.Storage.Redis.Address,
				Password: fc.Storage.Redis.Password,
				DB:       fc.Storage.Redis.DB,
			},
		},
		Server: Server{
			HTTPAddress:    fc.Server.HTTPAddress,
			GRPCAddress:    fc.Server.GRPCAddress,
			RequestTimeout: time.Duration(fc.Server.RequestTimeout),
			AllowedOrigins: fc.Server.AllowedOrigins,
		},
		Mail: Mail{
			Transport: fc.Mail.Transport,
			Host:      fc.Mail.Host,
			Port:      fc.Mail.Port,
			Username:  fc.Mail.Username,
			Password:  fc.Mail.Password,
			From:      fc.Mail.From,
			RelayURL:  fc.Mail.RelayURL,
			Timeout:   time.Duration(fc.Mail.Timeout),
		},
		RateLimit: RateLimit{
			MaxLoginAttempts: fc.RateLimit.MaxLoginAttempts,
			LoginCooldown:    time.Duration(fc.RateLimit.LoginCooldown),
			MaxResetRequests: fc.RateLimit.MaxResetRequests,
			ResetCooldown:    time.Duration(fc.RateLimit.ResetCooldown),
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings
// like "1h" or "30s" in both JSON and YAML files. Plain numbers are read
// as nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	return d.set(v)
}

// UnmarshalYAML implements the goccy/go-yaml BytesUnmarshaler interface.
func (d *Duration) UnmarshalYAML(b []byte) error {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return err
	}

	return d.set(v)
}

func (d *Duration) set(v any) error {
	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
	case uint64:
		*d = Duration(time.Duration(value))
	case int64:
		*d = Duration(time.Duration(value))
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
	case nil:
		*d = 0
	default:
		return fmt.Errorf("invalid duration %v", v)
	}

	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
