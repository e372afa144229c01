package staticcontent

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/imposter-project/static-frontend/frontend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	base, err := frontend.NewBase(noopCallback, map[string]interface{}{"attributes": nil}, "https://proxy.example.com", "static")
	require.NoError(t, err)

	tests := []struct {
		name      string
		rawConfig map[string]interface{}
		configDir string
		wantFile  string
		wantErr   bool
	}{
		{
			name:      "absolute file",
			rawConfig: map[string]interface{}{"file": "/srv/www/privacy.html"},
			wantFile:  "/srv/www/privacy.html",
		},
		{
			name:      "relative file resolved against config dir",
			rawConfig: map[string]interface{}{"file": "privacy.html"},
			configDir: "/etc/proxy",
			wantFile:  filepath.Join("/etc/proxy", "privacy.html"),
		},
		{
			name:      "file does not need to exist",
			rawConfig: map[string]interface{}{"file": "/nonexistent/file.txt"},
			wantFile:  "/nonexistent/file.txt",
		},
		{
			name:      "unknown keys ignored",
			rawConfig: map[string]interface{}{"file": "/a.txt", "other": 1},
			wantFile:  "/a.txt",
		},
		{
			name:      "nil config",
			rawConfig: nil,
			wantErr:   true,
		},
		{
			name:      "missing file key",
			rawConfig: map[string]interface{}{"path": "/a.txt"},
			wantErr:   true,
		},
		{
			name:      "empty file key",
			rawConfig: map[string]interface{}{"file": ""},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(base, tt.rawConfig, tt.configDir, nil)
			if tt.wantErr {
				require.Error(t, err)
				var cfgErr *frontend.ConfigError
				assert.True(t, errors.As(err, &cfgErr))
				assert.Equal(t, "file", cfgErr.Field)
				assert.Equal(t, "static", cfgErr.Frontend)
				assert.Nil(t, f)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFile, f.File())
			assert.Equal(t, "static", f.Name())
			assert.Equal(t, "https://proxy.example.com", f.BaseURL)
		})
	}
}

func TestNewBase_RequiredParameters(t *testing.T) {
	_, err := frontend.NewBase(nil, nil, "https://proxy.example.com", "static")
	assert.Error(t, err)

	_, err = frontend.NewBase(noopCallback, nil, "https://proxy.example.com", "")
	assert.Error(t, err)

	_, err = frontend.NewBase(noopCallback, nil, "", "static")
	assert.Error(t, err)
}
