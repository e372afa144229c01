package plugin

import (
	"fmt"
	"strings"

	"github.com/imposter-project/static-frontend/external"
	"github.com/imposter-project/static-frontend/frontend"
	"github.com/imposter-project/static-frontend/internal/config"
	"github.com/imposter-project/static-frontend/pkg/logger"
	"github.com/imposter-project/static-frontend/plugin/staticcontent"
)

// externalPrefix marks plugin types served by an external plugin process, e.g. "external:static-content"
const externalPrefix = "external:"

// LoadFrontends creates a frontend for each of the provided configs. External
// frontends are started through the manager, which may be nil if none are configured.
func LoadFrontends(
	configs []config.FrontendConfig,
	proxyConfig *config.ProxyConfig,
	internalAttributes map[string]interface{},
	callback frontend.AuthRequestCallback,
	manager *external.Manager,
) ([]frontend.Frontend, error) {
	var frontends []frontend.Frontend
	names := make(map[string]bool)

	for _, cfg := range configs {
		if names[cfg.Name] {
			return nil, fmt.Errorf("duplicate frontend name: %s", cfg.Name)
		}
		names[cfg.Name] = true

		base, err := frontend.NewBase(callback, internalAttributes, proxyConfig.ServerURL, cfg.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to initialise frontend: %w", err)
		}

		var fe frontend.Frontend
		switch {
		case cfg.Plugin == staticcontent.PluginType:
			fe, err = staticcontent.New(base, cfg.Config, cfg.ConfigDir, logger.Named(cfg.Name))
		case strings.HasPrefix(cfg.Plugin, externalPrefix):
			if manager == nil {
				return nil, fmt.Errorf("frontend %s requires external plugins, but no plugin directory is configured", cfg.Name)
			}
			pluginName := strings.TrimPrefix(cfg.Plugin, externalPrefix)
			fe, err = manager.Load(pluginName, base, cfg.Config, cfg.ConfigDir)
		default:
			return nil, fmt.Errorf("unsupported plugin type: %s", cfg.Plugin)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to initialise frontend %s: %w", cfg.Name, err)
		}

		logger.Debugf("loaded frontend %s (plugin: %s)", cfg.Name, cfg.Plugin)
		frontends = append(frontends, fe)
	}
	return frontends, nil
}
