package main

import (
	"os"

	"github.com/hashicorp/go-hclog"
	goplugin "github.com/hashicorp/go-plugin"
	"github.com/imposter-project/static-frontend/external/shared"
	"github.com/imposter-project/static-frontend/frontend"
	"github.com/imposter-project/static-frontend/internal/version"
	"github.com/imposter-project/static-frontend/plugin/staticcontent"
)

var logger = hclog.New(&hclog.LoggerOptions{
	Level:      hclog.Trace,
	Output:     os.Stderr,
	JSONFormat: true,
})

func newFrontend(base frontend.Base, config map[string]interface{}, configDir string, logger hclog.Logger) (frontend.Frontend, error) {
	fe, err := staticcontent.New(base, config, configDir, logger)
	if err != nil {
		return nil, err
	}
	return fe, nil
}

func main() {
	logger.Trace("static-content plugin initialising", "version", version.Version)

	impl := shared.NewFrontendAdapter(newFrontend, logger)

	logger.Info("static-content plugin started")
	goplugin.Serve(&goplugin.ServeConfig{
		HandshakeConfig: shared.Handshake,
		Plugins:         shared.PluginMap(impl),
	})
}
