package external

import (
	"github.com/imposter-project/static-frontend/external/shared"
	"github.com/imposter-project/static-frontend/frontend"
	"github.com/imposter-project/static-frontend/internal/exchange"
	"github.com/imposter-project/static-frontend/internal/response"
	"github.com/imposter-project/static-frontend/pkg/logger"
)

// PluginFrontend is a frontend whose implementation lives in an external plugin process
type PluginFrontend struct {
	frontend.Base
	pluginName string
	impl       shared.ExternalFrontend
}

// NewPluginFrontend creates a frontend backed by the given plugin client
func NewPluginFrontend(pluginName string, base frontend.Base, impl shared.ExternalFrontend) *PluginFrontend {
	return &PluginFrontend{
		Base:       base,
		pluginName: pluginName,
		impl:       impl,
	}
}

func (p *PluginFrontend) RegisterEndpoints(backendNames []string) ([]frontend.Endpoint, error) {
	patterns, err := p.impl.RegisterEndpoints(backendNames)
	if err != nil {
		return nil, err
	}

	endpoints := make([]frontend.Endpoint, len(patterns))
	for i, pattern := range patterns {
		endpoints[i] = frontend.Endpoint{Pattern: pattern, Handler: p.endpointHandler(i)}
	}
	return endpoints, nil
}

func (p *PluginFrontend) endpointHandler(index int) frontend.HandlerFunc {
	return func(ctx *exchange.Context) (*response.Response, error) {
		req, err := ConvertToExternalRequest(ctx)
		if err != nil {
			return nil, err
		}
		logger.Debugf("handling request with external plugin: %s", p.pluginName)
		resp := p.impl.Handle(shared.HandleArgs{Endpoint: index, Request: req})
		return ConvertFromExternalResponse(p.pluginName, resp)
	}
}

func (p *PluginFrontend) HandleAuthnResponse(ctx *exchange.Context, data *frontend.InternalData) (*response.Response, error) {
	req, err := ConvertToExternalRequest(ctx)
	if err != nil {
		return nil, err
	}
	args := shared.AuthnResponseArgs{Request: req}
	if data != nil {
		args.Subject = data.Subject
		args.RequesterID = data.RequesterID
		args.Attributes = data.Attributes
	}
	return ConvertFromExternalResponse(p.pluginName, p.impl.HandleAuthnResponse(args))
}

func (p *PluginFrontend) HandleBackendError(err error) (*response.Response, error) {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return ConvertFromExternalResponse(p.pluginName, p.impl.HandleBackendError(message))
}
