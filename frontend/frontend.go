// Package frontend defines the contract between the proxy host and the
// frontend modules that face end users and produce the final HTTP response.
package frontend

import (
	"errors"
	"fmt"

	"github.com/imposter-project/static-frontend/internal/exchange"
	"github.com/imposter-project/static-frontend/internal/response"
)

// ErrNotImplemented is returned by frontends for operations they do not take part in
var ErrNotImplemented = errors.New("not implemented")

// ConfigError reports invalid or missing frontend configuration
type ConfigError struct {
	Frontend string
	Field    string
	Reason   string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid configuration for frontend %q: %s", e.Frontend, e.Reason)
	}
	return fmt.Sprintf("invalid configuration for frontend %q: %s: %s", e.Frontend, e.Field, e.Reason)
}

// HandlerFunc handles a request routed to a registered endpoint
type HandlerFunc func(ctx *exchange.Context) (*response.Response, error)

// Endpoint pairs a route pattern with its handler. The pattern is a regular
// expression matched against the request path without its leading slash.
type Endpoint struct {
	Pattern string
	Handler HandlerFunc
}

// InternalData is the proxy's internal representation of an authentication result
type InternalData struct {
	Subject     string
	RequesterID string
	Attributes  map[string][]string
}

// AuthRequestCallback hands an authentication request from a frontend to the backend side of the proxy
type AuthRequestCallback func(ctx *exchange.Context, data *InternalData) (*response.Response, error)

// Frontend is the capability set every frontend module implements
type Frontend interface {
	// Name returns the configured name of the frontend.
	Name() string

	// RegisterEndpoints returns the endpoints the frontend serves. It is
	// called once at startup with the names of the configured backends.
	RegisterEndpoints(backendNames []string) ([]Endpoint, error)

	// HandleAuthnResponse turns an authentication result into a response for the requester.
	HandleAuthnResponse(ctx *exchange.Context, data *InternalData) (*response.Response, error)

	// HandleBackendError turns a backend failure into a response for the requester.
	HandleBackendError(err error) (*response.Response, error)
}

// Base holds the parameters shared by all frontends
type Base struct {
	AuthRequestCallback AuthRequestCallback
	InternalAttributes  map[string]interface{}
	BaseURL             string
	name                string
}

// NewBase validates and creates the shared frontend parameters
func NewBase(callback AuthRequestCallback, internalAttributes map[string]interface{}, baseURL string, name string) (Base, error) {
	if callback == nil {
		return Base{}, &ConfigError{Frontend: name, Field: "callback", Reason: "auth request callback is required"}
	}
	if name == "" {
		return Base{}, &ConfigError{Field: "name", Reason: "name is required"}
	}
	if baseURL == "" {
		return Base{}, &ConfigError{Frontend: name, Field: "baseUrl", Reason: "base URL is required"}
	}
	return Base{
		AuthRequestCallback: callback,
		InternalAttributes:  internalAttributes,
		BaseURL:             baseURL,
		name:                name,
	}, nil
}

func (b Base) Name() string {
	return b.name
}
