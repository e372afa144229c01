package shared

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/imposter-project/static-frontend/frontend"
	"github.com/imposter-project/static-frontend/internal/exchange"
	"github.com/imposter-project/static-frontend/internal/response"
)

// Factory creates the frontend served by a plugin process
type Factory func(base frontend.Base, config map[string]interface{}, configDir string, logger hclog.Logger) (frontend.Frontend, error)

// FrontendAdapter exposes an in-process frontend as an ExternalFrontend
type FrontendAdapter struct {
	factory   Factory
	logger    hclog.Logger
	impl      frontend.Frontend
	endpoints []frontend.Endpoint
}

func NewFrontendAdapter(factory Factory, logger hclog.Logger) *FrontendAdapter {
	return &FrontendAdapter{factory: factory, logger: logger}
}

// unsupportedCallback stands in for the host's auth request callback, which
// cannot be invoked from within a plugin process
func unsupportedCallback(ctx *exchange.Context, data *frontend.InternalData) (*response.Response, error) {
	return nil, fmt.Errorf("auth request callback: %w", frontend.ErrNotImplemented)
}

func (a *FrontendAdapter) Configure(args ConfigureArgs) error {
	a.logger.Trace("configuring frontend", "name", args.Name)
	base, err := frontend.NewBase(unsupportedCallback, args.InternalAttributes, args.BaseURL, args.Name)
	if err != nil {
		return err
	}
	impl, err := a.factory(base, args.Config, args.ConfigDir, a.logger.Named(args.Name))
	if err != nil {
		return err
	}
	a.impl = impl
	a.endpoints = nil
	return nil
}

func (a *FrontendAdapter) RegisterEndpoints(backendNames []string) ([]string, error) {
	if a.impl == nil {
		return nil, fmt.Errorf("frontend is not configured")
	}
	endpoints, err := a.impl.RegisterEndpoints(backendNames)
	if err != nil {
		return nil, err
	}
	a.endpoints = endpoints

	patterns := make([]string, len(endpoints))
	for i, endpoint := range endpoints {
		patterns[i] = endpoint.Pattern
	}
	return patterns, nil
}

func (a *FrontendAdapter) Handle(args HandleArgs) HandlerResponse {
	if args.Endpoint < 0 || args.Endpoint >= len(a.endpoints) {
		return HandlerResponse{Error: fmt.Sprintf("no endpoint registered at index %d", args.Endpoint)}
	}
	ctx, err := ToContext(args.Request)
	if err != nil {
		return HandlerResponse{Error: err.Error()}
	}
	a.logger.Debug("handling request", "method", args.Request.Method, "path", args.Request.Path)
	return FromResult(a.endpoints[args.Endpoint].Handler(ctx))
}

func (a *FrontendAdapter) HandleAuthnResponse(args AuthnResponseArgs) HandlerResponse {
	if a.impl == nil {
		return HandlerResponse{Error: "frontend is not configured"}
	}
	ctx, err := ToContext(args.Request)
	if err != nil {
		return HandlerResponse{Error: err.Error()}
	}
	data := &frontend.InternalData{
		Subject:     args.Subject,
		RequesterID: args.RequesterID,
		Attributes:  args.Attributes,
	}
	return FromResult(a.impl.HandleAuthnResponse(ctx, data))
}

func (a *FrontendAdapter) HandleBackendError(message string) HandlerResponse {
	if a.impl == nil {
		return HandlerResponse{Error: "frontend is not configured"}
	}
	return FromResult(a.impl.HandleBackendError(errors.New(message)))
}

// ToContext rebuilds a request context from a request received over RPC
func ToContext(req HandlerRequest) (*exchange.Context, error) {
	target := req.Path
	if req.RawQuery != "" {
		target += "?" + req.RawQuery
	}
	httpReq, err := http.NewRequest(req.Method, target, bytes.NewReader(req.Body))
	if err != nil {
		return nil, fmt.Errorf("failed to convert request: %w", err)
	}
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}
	return &exchange.Context{
		Request: httpReq,
		Path:    strings.TrimPrefix(req.Path, "/"),
		State:   exchange.NewState(req.SessionID),
	}, nil
}

// FromResult converts the result of a frontend operation into a response that can cross RPC
func FromResult(resp *response.Response, err error) HandlerResponse {
	if err != nil {
		return HandlerResponse{
			Error:          err.Error(),
			NotImplemented: errors.Is(err, frontend.ErrNotImplemented),
		}
	}
	if resp == nil {
		return HandlerResponse{Error: "frontend returned no response"}
	}
	return HandlerResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
	}
}
