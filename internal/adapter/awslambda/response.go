package awslambda

import (
	"bytes"
	"net/http"
)

// responseRecorder captures what the router writes so it can be returned as a Lambda event response
type responseRecorder struct {
	Headers       http.Header
	Body          bytes.Buffer
	StatusCode    int
	writtenStatus bool
}

func newResponseRecorder() *responseRecorder {
	return &responseRecorder{Headers: make(http.Header)}
}

func (r *responseRecorder) Header() http.Header {
	return r.Headers
}

func (r *responseRecorder) Write(data []byte) (int, error) {
	if !r.writtenStatus {
		r.WriteHeader(http.StatusOK)
	}
	return r.Body.Write(data)
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	r.StatusCode = statusCode
	r.writtenStatus = true
}

// status returns the recorded status, treating a handler that wrote nothing as 200
func (r *responseRecorder) status() int {
	if !r.writtenStatus {
		return http.StatusOK
	}
	return r.StatusCode
}
