package awslambda

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/imposter-project/static-frontend/frontend"
	"github.com/imposter-project/static-frontend/internal/exchange"
	"github.com/imposter-project/static-frontend/internal/response"
	"github.com/imposter-project/static-frontend/internal/router"
	"github.com/imposter-project/static-frontend/plugin/staticcontent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *router.Router {
	t.Helper()
	file := filepath.Join(t.TempDir(), "terms.html")
	require.NoError(t, os.WriteFile(file, []byte("<p>terms</p>"), 0644))

	callback := func(ctx *exchange.Context, data *frontend.InternalData) (*response.Response, error) {
		return nil, nil
	}
	base, err := frontend.NewBase(callback, nil, "https://proxy.example.com", "terms")
	require.NoError(t, err)
	fe, err := staticcontent.New(base, map[string]interface{}{"file": file}, "", nil)
	require.NoError(t, err)

	r := router.New()
	require.NoError(t, r.RegisterFrontends([]frontend.Frontend{fe}, []string{"saml2"}))
	return r
}

func TestDispatch_APIGatewayProxyRequest(t *testing.T) {
	r := newTestRouter(t)
	raw, err := json.Marshal(events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodGet,
		Path:       "/terms",
		Headers:    map[string]string{"Accept": "text/html"},
	})
	require.NoError(t, err)

	result, err := dispatch(r, raw)
	require.NoError(t, err)
	resp, ok := result.(events.APIGatewayProxyResponse)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "<p>terms</p>", resp.Body)
	assert.Equal(t, "text/html", resp.Headers["Content-Type"])
}

func TestDispatch_LambdaFunctionURLRequest(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "registered endpoint",
			path:           "/terms",
			expectedStatus: http.StatusOK,
			expectedBody:   "<p>terms</p>",
		},
		{
			name:           "unregistered path",
			path:           "/privacy",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := events.LambdaFunctionURLRequest{RawPath: tt.path}
			req.RequestContext.HTTP.Method = http.MethodGet
			raw, err := json.Marshal(req)
			require.NoError(t, err)

			result, err := dispatch(r, raw)
			require.NoError(t, err)
			resp, ok := result.(events.LambdaFunctionURLResponse)
			require.True(t, ok)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, resp.Body)
			}
		})
	}
}

func TestDispatch_UnsupportedRequest(t *testing.T) {
	result, err := dispatch(newTestRouter(t), json.RawMessage(`{"foo":"bar"}`))
	require.NoError(t, err)
	resp, ok := result.(events.LambdaFunctionURLResponse)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestConvertHTTPHeaderToMap(t *testing.T) {
	header := http.Header{}
	header.Add("X-Values", "a")
	header.Add("X-Values", "b")
	header.Set("Content-Type", "text/html")

	assert.Equal(t, map[string]string{
		"X-Values":     "a,b",
		"Content-Type": "text/html",
	}, convertHTTPHeaderToMap(header))
}
