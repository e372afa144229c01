package response

import (
	"net/http"
)

const defaultContentType = "text/html"

// Response is the value returned by a frontend endpoint
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
}

// NewResponse creates a successful response with the default content type
func NewResponse(body []byte) *Response {
	return &Response{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			"Content-Type": defaultContentType,
		},
		Body: body,
	}
}

// NewErrorResponse creates a response with the given status and a plain message
func NewErrorResponse(statusCode int, message string) *Response {
	return &Response{
		StatusCode: statusCode,
		Headers: map[string]string{
			"Content-Type": "text/plain",
		},
		Body: []byte(message),
	}
}

// WriteToResponseWriter writes the response to the http.ResponseWriter
func (r *Response) WriteToResponseWriter(w http.ResponseWriter) {
	for key, value := range r.Headers {
		w.Header().Set(key, value)
	}
	statusCode := r.StatusCode
	if statusCode == 0 {
		statusCode = http.StatusOK
	}
	w.WriteHeader(statusCode)
	if r.Body != nil {
		w.Write(r.Body)
	}
}
