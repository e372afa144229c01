package awslambda

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/imposter-project/static-frontend/internal/adapter"
	"github.com/imposter-project/static-frontend/pkg/logger"
)

// LambdaAdapter represents the AWS Lambda runtime adapter
type LambdaAdapter struct{}

// NewAdapter creates a new Lambda adapter instance
func NewAdapter() adapter.Adapter {
	return &LambdaAdapter{}
}

// Start begins the Lambda runtime
func (a *LambdaAdapter) Start() {
	lambda.Start(HandleLambdaRequest)
}

var handler http.Handler

func init() {
	// Only execute Lambda initialisation if we're running in Lambda mode
	if !adapter.IsLambda() {
		return
	}

	startTime := time.Now()
	defer func() {
		logger.Infof("startup completed in %v", time.Since(startTime))
	}()

	if os.Getenv("PROXY_CONFIG_DIR") == "" {
		logger.Infoln("PROXY_CONFIG_DIR not set, defaulting to /var/task/config")
		os.Setenv("PROXY_CONFIG_DIR", "/var/task/config")
	}

	// Load configuration once during cold start
	handler = adapter.InitialiseProxy("").Router
}

// HandleLambdaRequest handles incoming Lambda requests and routes them to the proxy router.
func HandleLambdaRequest(req json.RawMessage) (interface{}, error) {
	return dispatch(handler, req)
}

func dispatch(h http.Handler, req json.RawMessage) (interface{}, error) {
	var apiGatewayReq events.APIGatewayProxyRequest
	var lambdaFunctionURLReq events.LambdaFunctionURLRequest

	if err := json.Unmarshal(req, &apiGatewayReq); err == nil && apiGatewayReq.HTTPMethod != "" {
		return handleAPIGatewayProxyRequest(h, apiGatewayReq)
	} else if err := json.Unmarshal(req, &lambdaFunctionURLReq); err == nil && lambdaFunctionURLReq.RequestContext.HTTP.Method != "" {
		return handleLambdaFunctionURLRequest(h, lambdaFunctionURLReq)
	}
	return events.LambdaFunctionURLResponse{StatusCode: http.StatusBadRequest, Body: "Unsupported request type"}, nil
}

// handleAPIGatewayProxyRequest processes API Gateway Proxy requests.
func handleAPIGatewayProxyRequest(h http.Handler, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	httpReq, err := convertLambdaRequestToHTTPRequest(req.HTTPMethod, req.Path, req.Headers, req.Body)
	if err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError, Body: "Failed to convert request"}, nil
	}
	recorder := serve(h, httpReq)
	return events.APIGatewayProxyResponse{
		StatusCode: recorder.status(),
		Headers:    convertHTTPHeaderToMap(recorder.Headers),
		Body:       recorder.Body.String(),
	}, nil
}

// handleLambdaFunctionURLRequest processes Lambda Function URL requests.
func handleLambdaFunctionURLRequest(h http.Handler, req events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	path := req.RawPath
	if req.RawQueryString != "" {
		path += "?" + req.RawQueryString
	}
	httpReq, err := convertLambdaRequestToHTTPRequest(req.RequestContext.HTTP.Method, path, req.Headers, req.Body)
	if err != nil {
		return events.LambdaFunctionURLResponse{StatusCode: http.StatusInternalServerError, Body: "Failed to convert request"}, nil
	}
	recorder := serve(h, httpReq)
	return events.LambdaFunctionURLResponse{
		StatusCode: recorder.status(),
		Headers:    convertHTTPHeaderToMap(recorder.Headers),
		Body:       recorder.Body.String(),
	}, nil
}

func serve(h http.Handler, httpReq *http.Request) *responseRecorder {
	logger.Tracef("request: %s %s", httpReq.Method, httpReq.URL.String())
	recorder := newResponseRecorder()
	h.ServeHTTP(recorder, httpReq)
	logger.Tracef("response: %d %s", recorder.StatusCode, &recorder.Body)
	return recorder
}

// convertLambdaRequestToHTTPRequest converts a Lambda request to an http.Request.
func convertLambdaRequestToHTTPRequest(method, path string, headers map[string]string, body string) (*http.Request, error) {
	httpReq, err := http.NewRequest(method, path, strings.NewReader(body))
	if err != nil {
		return nil, err
	}
	for key, value := range headers {
		httpReq.Header.Set(key, value)
	}
	return httpReq, nil
}

// convertHTTPHeaderToMap converts http.Header to a map[string]string.
func convertHTTPHeaderToMap(header http.Header) map[string]string {
	result := make(map[string]string)
	for key, values := range header {
		result[key] = strings.Join(values, ",")
	}
	return result
}
