package external

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/imposter-project/static-frontend/external/shared"
	"github.com/imposter-project/static-frontend/frontend"
	"github.com/imposter-project/static-frontend/internal/exchange"
	"github.com/imposter-project/static-frontend/internal/response"
)

// ConvertToExternalRequest converts a request context into a request that can cross RPC
func ConvertToExternalRequest(ctx *exchange.Context) (shared.HandlerRequest, error) {
	req := ctx.Request
	var body []byte
	if req.Body != nil {
		var err error
		body, err = io.ReadAll(req.Body)
		if err != nil {
			return shared.HandlerRequest{}, fmt.Errorf("failed to read request body: %w", err)
		}
		req.Body = io.NopCloser(bytes.NewReader(body))
	}
	return shared.HandlerRequest{
		Method:    req.Method,
		Path:      req.URL.Path,
		RawQuery:  req.URL.RawQuery,
		Headers:   convertToSingleValueHeaders(req.Header),
		Body:      body,
		SessionID: exchange.SessionID(ctx.State),
	}, nil
}

func convertToSingleValueHeaders(header http.Header) map[string]string {
	result := make(map[string]string)
	for key, values := range header {
		if len(values) > 0 {
			// Use the first value if multiple values exist
			result[key] = values[0]
		}
	}
	return result
}

// ConvertFromExternalResponse converts a plugin response back into a response or error
func ConvertFromExternalResponse(pluginName string, handlerResp shared.HandlerResponse) (*response.Response, error) {
	if handlerResp.NotImplemented {
		return nil, fmt.Errorf("plugin %s: %w", pluginName, frontend.ErrNotImplemented)
	}
	if handlerResp.Error != "" {
		return nil, fmt.Errorf("plugin %s: %w", pluginName, errors.New(handlerResp.Error))
	}

	headers := handlerResp.Headers
	if headers == nil {
		headers = make(map[string]string)
	}
	return &response.Response{
		StatusCode: handlerResp.StatusCode,
		Headers:    headers,
		Body:       handlerResp.Body,
	}, nil
}
