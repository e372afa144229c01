package adapter

import (
	"os"
	"strings"
	"sync"
)

// Mode represents the runtime the proxy is hosted by
type Mode int

const (
	ModeUnknown Mode = iota
	ModeLambda
	ModeHTTPServer
)

var (
	currentMode Mode
	modeOnce    sync.Once
)

func init() {
	DetectMode()
}

// DetectMode determines the runtime mode once per process. PROXY_MODE
// ("lambda" or "http") takes precedence over detection of the Lambda runtime.
func DetectMode() Mode {
	modeOnce.Do(func() {
		currentMode = modeFromEnv()
	})
	return currentMode
}

func modeFromEnv() Mode {
	switch strings.ToLower(os.Getenv("PROXY_MODE")) {
	case "lambda":
		return ModeLambda
	case "http":
		return ModeHTTPServer
	}
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		return ModeLambda
	}
	return ModeHTTPServer
}

func (m Mode) String() string {
	switch m {
	case ModeLambda:
		return "lambda"
	case ModeHTTPServer:
		return "http"
	default:
		return "unknown"
	}
}

// IsLambda returns true if running in AWS Lambda mode
func IsLambda() bool {
	return currentMode == ModeLambda
}

// IsHTTPServer returns true if running as a standalone HTTP server
func IsHTTPServer() bool {
	return currentMode == ModeHTTPServer
}
