package config

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("default config has validation errors: %v", ValidationErrors(errs))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:      "empty server url",
			mutate:    func(c *Config) { c.Server.URL = "" },
			wantField: "server.url",
		},
		{
			name:      "relative server url",
			mutate:    func(c *Config) { c.Server.URL = "localhost:8090" },
			wantField: "server.url",
		},
		{
			name:      "zero timeout",
			mutate:    func(c *Config) { c.Server.Timeout = 0 },
			wantField: "server.timeout",
		},
		{
			name:      "negative timeout",
			mutate:    func(c *Config) { c.Server.Timeout = -time.Second },
			wantField: "server.timeout",
		},
		{
			name:      "unknown detail failure policy",
			mutate:    func(c *Config) { c.Page.DetailFailurePolicy = "explode" },
			wantField: "page.detail_failure_policy",
		},
		{
			name:      "unknown log level",
			mutate:    func(c *Config) { c.Logging.Level = "loud" },
			wantField: "logging.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			errs := cfg.Validate()
			if len(errs) == 0 {
				t.Fatal("Validate returned no errors")
			}

			found := false
			for _, err := range errs {
				if err.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("no error for field %q in %v", tt.wantField, ValidationErrors(errs))
			}
		})
	}
}

func TestValidationErrorsMessage(t *testing.T) {
	errs := ValidationErrors{
		{Field: "server.url", Value: "", Message: "must not be empty"},
		{Field: "logging.level", Value: "loud", Message: "must be one of: debug, info, warn, error"},
	}

	msg := errs.Error()
	if !strings.Contains(msg, "2 validation errors") {
		t.Errorf("message missing count: %q", msg)
	}
	if !strings.Contains(msg, "server.url") || !strings.Contains(msg, "logging.level") {
		t.Errorf("message missing fields: %q", msg)
	}
}
