package shared

import (
	"encoding/gob"

	goplugin "github.com/hashicorp/go-plugin"
)

func init() {
	// Register types for gob encoding across plugin boundaries
	gob.Register(map[string]interface{}{})
	gob.Register([]interface{}{})
	gob.Register([]string{})
	gob.Register(map[string]string{})
}

// Handshake is used to do a basic handshake between a plugin and host. If the
// handshake fails, a user-friendly error is shown. This prevents users from
// executing bad plugins or executing a plugin directory. It is a UX feature,
// not a security feature.
var Handshake = goplugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "FRONTEND_PLUGIN",
	MagicCookieValue: "proxy",
}

// PluginName is the name under which frontend plugins are dispensed
const PluginName = "frontend"

// PluginMap returns the plugins served or consumed over go-plugin. Hosts pass a nil impl.
func PluginMap(impl ExternalFrontend) map[string]goplugin.Plugin {
	return map[string]goplugin.Plugin{
		PluginName: &FrontendPlugin{Impl: impl},
	}
}

type HandlerRequest struct {
	Method    string
	Path      string
	RawQuery  string
	Headers   map[string]string
	Body      []byte
	SessionID string
}

type HandlerResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte

	// Error holds the message of an error returned by the frontend, if any.
	Error string

	// NotImplemented is set when the frontend does not support the operation.
	NotImplemented bool
}

type ConfigureArgs struct {
	Name               string
	BaseURL            string
	ConfigDir          string
	Config             map[string]interface{}
	InternalAttributes map[string]interface{}
}

type HandleArgs struct {
	// Endpoint is the index of the endpoint, as returned by RegisterEndpoints.
	Endpoint int
	Request  HandlerRequest
}

type AuthnResponseArgs struct {
	Request     HandlerRequest
	Subject     string
	RequesterID string
	Attributes  map[string][]string
}

// ExternalFrontend defines the interface for external frontend plugins to implement.
type ExternalFrontend interface {
	// Configure is called to initialise the frontend with its configuration.
	Configure(args ConfigureArgs) error

	// RegisterEndpoints returns the endpoint patterns served by the frontend.
	RegisterEndpoints(backendNames []string) ([]string, error)

	// Handle invokes the endpoint at the given index.
	Handle(args HandleArgs) HandlerResponse

	HandleAuthnResponse(args AuthnResponseArgs) HandlerResponse

	HandleBackendError(message string) HandlerResponse
}
