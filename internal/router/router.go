package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dlclark/regexp2"
	"github.com/imposter-project/static-frontend/frontend"
	"github.com/imposter-project/static-frontend/internal/exchange"
	"github.com/imposter-project/static-frontend/internal/response"
	"github.com/imposter-project/static-frontend/pkg/logger"
)

const statusPath = "/system/status"

// route is a compiled endpoint registered by a frontend
type route struct {
	frontend string
	pattern  string
	re       *regexp2.Regexp
	handler  frontend.HandlerFunc
}

// Router dispatches requests to frontend endpoints in registration order
type Router struct {
	routes []route
}

func New() *Router {
	return &Router{}
}

// RegisterFrontends registers the endpoints of each frontend
func (r *Router) RegisterFrontends(frontends []frontend.Frontend, backendNames []string) error {
	for _, fe := range frontends {
		endpoints, err := fe.RegisterEndpoints(backendNames)
		if err != nil {
			return fmt.Errorf("failed to register endpoints for frontend %s: %w", fe.Name(), err)
		}
		if err := r.Register(fe.Name(), endpoints); err != nil {
			return err
		}
	}
	return nil
}

// Register compiles and adds the endpoints of the named frontend
func (r *Router) Register(frontendName string, endpoints []frontend.Endpoint) error {
	for _, endpoint := range endpoints {
		re, err := regexp2.Compile(endpoint.Pattern, regexp2.None)
		if err != nil {
			return fmt.Errorf("invalid endpoint pattern %q for frontend %s: %w", endpoint.Pattern, frontendName, err)
		}
		logger.Debugf("registered endpoint %s for frontend %s", endpoint.Pattern, frontendName)
		r.routes = append(r.routes, route{
			frontend: frontendName,
			pattern:  endpoint.Pattern,
			re:       re,
			handler:  endpoint.Handler,
		})
	}
	return nil
}

// Patterns returns the registered endpoint patterns in registration order
func (r *Router) Patterns() []string {
	patterns := make([]string, len(r.routes))
	for i, rt := range r.routes {
		patterns[i] = rt.pattern
	}
	return patterns
}

// match returns the first route whose pattern matches the path
func (r *Router) match(path string) (*route, error) {
	for i := range r.routes {
		matched, err := r.routes[i].re.MatchString(path)
		if err != nil {
			return nil, err
		}
		if matched {
			return &r.routes[i], nil
		}
	}
	return nil, nil
}

// ServeHTTP processes incoming HTTP requests and routes them to the matching frontend endpoint
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.URL.Path == statusPath {
		handleStatusRequest(w, req)
		return
	}

	ctx := exchange.NewContext(req)
	sessionID := exchange.SessionID(ctx.State)
	http.SetCookie(w, &http.Cookie{
		Name:     exchange.SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
	})

	rt, err := r.match(ctx.Path)
	if err != nil {
		logger.Errorln(exchange.LogLine(sessionID, fmt.Sprintf("failed to match path %s: %v", ctx.Path, err)))
		handleError(http.StatusInternalServerError).WriteToResponseWriter(w)
		return
	}
	if rt == nil {
		logger.Debugln(exchange.LogLine(sessionID, fmt.Sprintf("no endpoint matched - method:%s, path:%s", req.Method, req.URL.Path)))
		handleNotFound(req, r.Patterns()).WriteToResponseWriter(w)
		return
	}

	resp, err := rt.handler(ctx)
	if err != nil {
		if errors.Is(err, frontend.ErrNotImplemented) {
			logger.Warnln(exchange.LogLine(sessionID, fmt.Sprintf("frontend %s does not implement the requested operation: %v", rt.frontend, err)))
			handleError(http.StatusNotImplemented).WriteToResponseWriter(w)
			return
		}
		logger.Errorln(exchange.LogLine(sessionID, fmt.Sprintf("error handling request with frontend %s: %v", rt.frontend, err)))
		handleError(http.StatusInternalServerError).WriteToResponseWriter(w)
		return
	}
	if resp == nil {
		logger.Errorln(exchange.LogLine(sessionID, fmt.Sprintf("frontend %s returned no response", rt.frontend)))
		handleError(http.StatusInternalServerError).WriteToResponseWriter(w)
		return
	}

	logger.Infoln(exchange.LogLine(sessionID, fmt.Sprintf("handled request - method:%s, path:%s, frontend:%s, status:%d, length:%d",
		req.Method, req.URL.Path, rt.frontend, resp.StatusCode, len(resp.Body))))
	resp.WriteToResponseWriter(w)
}

// handleError generates the generic error page rendered for failed requests
func handleError(statusCode int) *response.Response {
	return response.NewErrorResponse(statusCode, fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode)))
}
