package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "server.url")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidDetailFailurePolicies returns the accepted detail-failure policies
func ValidDetailFailurePolicies() []string {
	return []string{"annotate", "skip"}
}

// Validate checks the Config for invalid values and returns all validation
// errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateServer()...)
	errors = append(errors, c.validatePage()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validateServer() []ValidationError {
	var errors []ValidationError

	if c.Server.URL == "" {
		errors = append(errors, ValidationError{
			Field:   "server.url",
			Value:   c.Server.URL,
			Message: "must not be empty",
		})
	} else if u, err := url.Parse(c.Server.URL); err != nil || u.Scheme == "" || u.Host == "" {
		errors = append(errors, ValidationError{
			Field:   "server.url",
			Value:   c.Server.URL,
			Message: "must be an absolute http(s) URL",
		})
	}

	if c.Server.Timeout <= 0 {
		errors = append(errors, ValidationError{
			Field:   "server.timeout",
			Value:   c.Server.Timeout,
			Message: "must be positive",
		})
	}

	return errors
}

func (c *Config) validatePage() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidDetailFailurePolicies(), c.Page.DetailFailurePolicy) {
		errors = append(errors, ValidationError{
			Field:   "page.detail_failure_policy",
			Value:   c.Page.DetailFailurePolicy,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidDetailFailurePolicies(), ", ")),
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}
