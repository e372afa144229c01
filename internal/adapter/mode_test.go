package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeFromEnv(t *testing.T) {
	tests := []struct {
		name         string
		proxyMode    string
		functionName string
		expected     Mode
	}{
		{name: "default", expected: ModeHTTPServer},
		{name: "lambda runtime", functionName: "static-frontend", expected: ModeLambda},
		{name: "explicit lambda", proxyMode: "LAMBDA", expected: ModeLambda},
		{name: "explicit http overrides lambda runtime", proxyMode: "http", functionName: "static-frontend", expected: ModeHTTPServer},
		{name: "unrecognised mode falls back to detection", proxyMode: "grpc", expected: ModeHTTPServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PROXY_MODE", tt.proxyMode)
			t.Setenv("AWS_LAMBDA_FUNCTION_NAME", tt.functionName)
			assert.Equal(t, tt.expected, modeFromEnv())
		})
	}
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "lambda", ModeLambda.String())
	assert.Equal(t, "http", ModeHTTPServer.String())
	assert.Equal(t, "unknown", ModeUnknown.String())
}
