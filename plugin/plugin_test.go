package plugin

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/imposter-project/static-frontend/external"
	"github.com/imposter-project/static-frontend/frontend"
	"github.com/imposter-project/static-frontend/internal/config"
	"github.com/imposter-project/static-frontend/internal/exchange"
	"github.com/imposter-project/static-frontend/internal/response"
	"github.com/imposter-project/static-frontend/plugin/staticcontent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callback(ctx *exchange.Context, data *frontend.InternalData) (*response.Response, error) {
	return nil, nil
}

func TestLoadFrontends(t *testing.T) {
	configDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "terms.html"), []byte("<p>terms</p>"), 0644))
	proxyConfig := &config.ProxyConfig{ServerURL: "https://proxy.example.com"}

	tests := []struct {
		name          string
		configs       []config.FrontendConfig
		manager       *external.Manager
		expectedNames []string
		wantErr       string
	}{
		{
			name: "static content frontends",
			configs: []config.FrontendConfig{
				{Plugin: "static_content", Name: "terms", Config: map[string]interface{}{"file": "terms.html"}, ConfigDir: configDir},
				{Plugin: "static_content", Name: "privacy", Config: map[string]interface{}{"file": "/srv/privacy.html"}},
			},
			expectedNames: []string{"terms", "privacy"},
		},
		{
			name:    "no configs",
			configs: nil,
		},
		{
			name: "duplicate names",
			configs: []config.FrontendConfig{
				{Plugin: "static_content", Name: "terms", Config: map[string]interface{}{"file": "a.html"}},
				{Plugin: "static_content", Name: "terms", Config: map[string]interface{}{"file": "b.html"}},
			},
			wantErr: "duplicate frontend name: terms",
		},
		{
			name: "unknown plugin type",
			configs: []config.FrontendConfig{
				{Plugin: "saml2", Name: "idp"},
			},
			wantErr: "unsupported plugin type: saml2",
		},
		{
			name: "missing name",
			configs: []config.FrontendConfig{
				{Plugin: "static_content", Config: map[string]interface{}{"file": "a.html"}},
			},
			wantErr: "failed to initialise frontend",
		},
		{
			name: "missing file key",
			configs: []config.FrontendConfig{
				{Plugin: "static_content", Name: "terms", Config: map[string]interface{}{}},
			},
			wantErr: "failed to initialise frontend terms",
		},
		{
			name: "external without manager",
			configs: []config.FrontendConfig{
				{Plugin: "external:static-content", Name: "remote", Config: map[string]interface{}{"file": "a.html"}},
			},
			wantErr: "no plugin directory is configured",
		},
		{
			name: "external plugin not installed",
			configs: []config.FrontendConfig{
				{Plugin: "external:static-content", Name: "remote", Config: map[string]interface{}{"file": "a.html"}},
			},
			manager: newManager(t),
			wantErr: "failed to initialise frontend remote",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frontends, err := LoadFrontends(tt.configs, proxyConfig, nil, callback, tt.manager)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, frontends, len(tt.expectedNames))
			for i, fe := range frontends {
				assert.Equal(t, tt.expectedNames[i], fe.Name())
			}
		})
	}
}

func TestLoadFrontends_ResolvesRelativeFile(t *testing.T) {
	configDir := t.TempDir()
	frontends, err := LoadFrontends([]config.FrontendConfig{
		{Plugin: "static_content", Name: "terms", Config: map[string]interface{}{"file": "terms.html"}, ConfigDir: configDir},
	}, &config.ProxyConfig{ServerURL: "https://proxy.example.com"}, nil, callback, nil)
	require.NoError(t, err)
	require.Len(t, frontends, 1)

	fe, ok := frontends[0].(*staticcontent.StaticContentFrontend)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(configDir, "terms.html"), fe.File())
	assert.Equal(t, "https://proxy.example.com", fe.BaseURL)
}

func newManager(t *testing.T) *external.Manager {
	t.Helper()
	manager, err := external.NewManager(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(manager.Stop)
	return manager
}
