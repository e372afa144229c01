package staticcontent

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/imposter-project/static-frontend/frontend"
	"github.com/imposter-project/static-frontend/pkg/utils"
	"gopkg.in/yaml.v3"
)

// PluginType is the plugin name used in frontend configuration files
const PluginType = "static_content"

// Config is the typed configuration of the static content frontend
type Config struct {
	File string `yaml:"file"`
}

// StaticContentFrontend serves the contents of a single file on one endpoint
type StaticContentFrontend struct {
	frontend.Base
	config Config
	logger hclog.Logger
}

// New creates a static content frontend. Relative file paths are resolved
// against configDir. The file itself is not checked until it is served.
func New(base frontend.Base, rawConfig map[string]interface{}, configDir string, logger hclog.Logger) (*StaticContentFrontend, error) {
	cfg, err := loadConfig(base.Name(), rawConfig)
	if err != nil {
		return nil, err
	}
	cfg.File = utils.ResolvePath(cfg.File, configDir)

	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &StaticContentFrontend{
		Base:   base,
		config: *cfg,
		logger: logger,
	}, nil
}

// loadConfig binds the loose configuration mapping into a Config
func loadConfig(name string, rawConfig map[string]interface{}) (*Config, error) {
	if len(rawConfig) == 0 {
		return nil, &frontend.ConfigError{Frontend: name, Field: "file", Reason: "missing required key"}
	}
	data, err := yaml.Marshal(rawConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config for frontend %s: %w", name, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &frontend.ConfigError{Frontend: name, Field: "file", Reason: err.Error()}
	}
	if cfg.File == "" {
		return nil, &frontend.ConfigError{Frontend: name, Field: "file", Reason: "missing required key"}
	}
	return &cfg, nil
}

// File returns the resolved path of the served file
func (f *StaticContentFrontend) File() string {
	return f.config.File
}
