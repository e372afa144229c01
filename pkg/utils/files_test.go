package utils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePath(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		configDir string
		want      string
	}{
		{
			name:      "relative path within config directory",
			path:      "page.html",
			configDir: "/config",
			want:      filepath.Join("/config", "page.html"),
		},
		{
			name:      "nested relative path",
			path:      "static/page.html",
			configDir: "/config",
			want:      filepath.Join("/config", "static", "page.html"),
		},
		{
			name:      "absolute path is kept",
			path:      "/srv/www/page.html",
			configDir: "/config",
			want:      "/srv/www/page.html",
		},
		{
			name:      "no config directory",
			path:      "./page.html",
			configDir: "",
			want:      "page.html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolvePath(tt.path, tt.configDir))
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	assert.Equal(t, []string{"saml2", "oidc"}, SplitAndTrim(" saml2, ,oidc "))
	assert.Nil(t, SplitAndTrim(""))
}
