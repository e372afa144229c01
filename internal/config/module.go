package config

import (
	"fmt"
	"strings"

	"github.com/imposter-project/static-frontend/pkg/logger"
)

// moduleClasses maps module class names, as used by module-style frontend
// definitions, to plugin types
var moduleClasses = map[string]string{
	"StaticContentFrontend": "static_content",
}

// isModuleConfig checks if a raw document uses the module-style format, in
// which the frontend is identified by a dotted module path rather than a plugin type
func isModuleConfig(raw map[string]interface{}) bool {
	_, hasModule := raw["module"]
	_, hasPlugin := raw["plugin"]
	return hasModule && !hasPlugin
}

// transformModuleConfig converts a module-style document, e.g.
//
//	module: static_content.StaticContentFrontend
//	name: privacy
//	config:
//	  file: privacy.html
//
// into a FrontendConfig
func transformModuleConfig(raw map[string]interface{}) (*FrontendConfig, error) {
	logger.Tracef("transforming module-style config format")

	module, ok := raw["module"].(string)
	if !ok || module == "" {
		return nil, fmt.Errorf("module must be a non-empty string")
	}
	className := module[strings.LastIndex(module, ".")+1:]
	pluginType, ok := moduleClasses[className]
	if !ok {
		return nil, fmt.Errorf("unsupported frontend module: %s", module)
	}

	cfg := &FrontendConfig{Plugin: pluginType}
	if name, ok := raw["name"].(string); ok {
		cfg.Name = name
	}
	if rawConfig, ok := raw["config"]; ok && rawConfig != nil {
		pluginConfig, ok := rawConfig.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("config for module %s must be a mapping", module)
		}
		cfg.Config = pluginConfig
	}
	return cfg, nil
}
