package shared

import (
	"fmt"
	"net/rpc"

	goplugin "github.com/hashicorp/go-plugin"
)

// FrontendRPC is the RPC client
type FrontendRPC struct{ client *rpc.Client }

// NewFrontendRPC wraps an RPC client connected to a FrontendRPCServer
func NewFrontendRPC(client *rpc.Client) *FrontendRPC {
	return &FrontendRPC{client: client}
}

func (f *FrontendRPC) Configure(args ConfigureArgs) error {
	var resp bool
	if err := f.client.Call("Plugin.Configure", args, &resp); err != nil {
		return fmt.Errorf("plugin.Configure: %w", err)
	}
	return nil
}

func (f *FrontendRPC) RegisterEndpoints(backendNames []string) ([]string, error) {
	var patterns []string
	if err := f.client.Call("Plugin.RegisterEndpoints", backendNames, &patterns); err != nil {
		return nil, fmt.Errorf("plugin.RegisterEndpoints: %w", err)
	}
	return patterns, nil
}

func (f *FrontendRPC) Handle(args HandleArgs) HandlerResponse {
	var resp HandlerResponse
	if err := f.client.Call("Plugin.Handle", args, &resp); err != nil {
		return HandlerResponse{Error: fmt.Sprintf("plugin.Handle: %v", err)}
	}
	return resp
}

func (f *FrontendRPC) HandleAuthnResponse(args AuthnResponseArgs) HandlerResponse {
	var resp HandlerResponse
	if err := f.client.Call("Plugin.HandleAuthnResponse", args, &resp); err != nil {
		return HandlerResponse{Error: fmt.Sprintf("plugin.HandleAuthnResponse: %v", err)}
	}
	return resp
}

func (f *FrontendRPC) HandleBackendError(message string) HandlerResponse {
	var resp HandlerResponse
	if err := f.client.Call("Plugin.HandleBackendError", message, &resp); err != nil {
		return HandlerResponse{Error: fmt.Sprintf("plugin.HandleBackendError: %v", err)}
	}
	return resp
}

// FrontendRPCServer is the RPC server that FrontendRPC talks to, conforming to
// the requirements of net/rpc
type FrontendRPCServer struct {
	// This is the real implementation
	Impl ExternalFrontend
}

func (s *FrontendRPCServer) Configure(args ConfigureArgs, resp *bool) error {
	if err := s.Impl.Configure(args); err != nil {
		return fmt.Errorf("plugin.Configure: %w", err)
	}
	*resp = true
	return nil
}

func (s *FrontendRPCServer) RegisterEndpoints(backendNames []string, resp *[]string) error {
	patterns, err := s.Impl.RegisterEndpoints(backendNames)
	if err != nil {
		return fmt.Errorf("plugin.RegisterEndpoints: %w", err)
	}
	*resp = patterns
	return nil
}

func (s *FrontendRPCServer) Handle(args HandleArgs, resp *HandlerResponse) error {
	*resp = s.Impl.Handle(args)
	return nil
}

func (s *FrontendRPCServer) HandleAuthnResponse(args AuthnResponseArgs, resp *HandlerResponse) error {
	*resp = s.Impl.HandleAuthnResponse(args)
	return nil
}

func (s *FrontendRPCServer) HandleBackendError(message string, resp *HandlerResponse) error {
	*resp = s.Impl.HandleBackendError(message)
	return nil
}

// FrontendPlugin is the implementation of plugin.Plugin
//
// This must have two methods:
//
// 1. Server must return an RPC server for this plugin
// type. We construct a FrontendRPCServer for this.
//
// 2. Client must return an implementation of our interface that communicates
// over an RPC client. We return FrontendRPC for this.
type FrontendPlugin struct {
	// Impl Injection
	Impl ExternalFrontend
}

func (p *FrontendPlugin) Server(*goplugin.MuxBroker) (interface{}, error) {
	return &FrontendRPCServer{Impl: p.Impl}, nil
}

func (FrontendPlugin) Client(b *goplugin.MuxBroker, c *rpc.Client) (interface{}, error) {
	return &FrontendRPC{client: c}, nil
}
