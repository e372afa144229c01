package staticcontent

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/imposter-project/static-frontend/frontend"
	"github.com/imposter-project/static-frontend/internal/exchange"
	"github.com/imposter-project/static-frontend/internal/response"
)

// ErrInvalidEncoding is returned when the served file is not valid UTF-8 text
var ErrInvalidEncoding = errors.New("invalid UTF-8 content")

// RegisterEndpoints registers a single endpoint matching the frontend name.
// The backend names do not affect the result.
func (f *StaticContentFrontend) RegisterEndpoints(backendNames []string) ([]frontend.Endpoint, error) {
	return []frontend.Endpoint{
		{Pattern: "^" + f.Name(), Handler: f.Serve},
	}, nil
}

// Serve reads the configured file and returns its contents unchanged
func (f *StaticContentFrontend) Serve(ctx *exchange.Context) (*response.Response, error) {
	var state *exchange.State
	if ctx != nil {
		state = ctx.State
	}
	f.logger.Debug("static content returning file", "session_id", exchange.SessionID(state), "file", f.config.File)

	data, err := os.ReadFile(f.config.File)
	if err != nil {
		return nil, fmt.Errorf("failed to read static content file %s: %w", f.config.File, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("failed to decode static content file %s: %w", f.config.File, ErrInvalidEncoding)
	}
	return response.NewResponse(data), nil
}

func (f *StaticContentFrontend) HandleAuthnResponse(ctx *exchange.Context, data *frontend.InternalData) (*response.Response, error) {
	return nil, frontend.ErrNotImplemented
}

func (f *StaticContentFrontend) HandleBackendError(err error) (*response.Response, error) {
	return nil, frontend.ErrNotImplemented
}
