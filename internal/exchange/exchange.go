package exchange

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// SessionCookieName is the cookie carrying the session identifier between requests
const SessionCookieName = "proxy_session"

// Context holds the data for a single request dispatched to a frontend
type Context struct {
	Request *http.Request

	// Path is the request path without its leading slash, as matched by endpoint patterns
	Path  string
	State *State
}

// NewContext creates a new Context from an HTTP request, reusing the
// session identifier from the request cookie if one is present
func NewContext(req *http.Request) *Context {
	sessionID := ""
	if cookie, err := req.Cookie(SessionCookieName); err == nil {
		sessionID = cookie.Value
	}
	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	return &Context{
		Request: req,
		Path:    strings.TrimPrefix(req.URL.Path, "/"),
		State:   NewState(sessionID),
	}
}
