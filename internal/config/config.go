package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/imposter-project/static-frontend/pkg/logger"
	"github.com/imposter-project/static-frontend/pkg/utils"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var envVarPattern = regexp.MustCompile(`\$\{env\.([A-Za-z0-9_]+)(:-([^}]*))?\}`)

// LoadProxyConfig loads the process configuration from environment variables
func LoadProxyConfig() *ProxyConfig {
	port := os.Getenv("PROXY_PORT")
	if port == "" {
		port = "8080" // Default port
	}

	serverURL := os.Getenv("PROXY_BASE_URL")
	if serverURL == "" {
		serverURL = "http://localhost:" + port
	}

	return &ProxyConfig{
		ServerPort:    port,
		ServerURL:     strings.TrimSuffix(serverURL, "/"),
		BackendNames:  utils.SplitAndTrim(os.Getenv("PROXY_BACKENDS")),
		PluginDir:     os.Getenv("PROXY_PLUGIN_DIR"),
		EnableGzip:    strings.ToLower(os.Getenv("PROXY_GZIP")) == "true",
		ScanRecursive: strings.ToLower(os.Getenv("PROXY_CONFIG_SCAN_RECURSIVE")) == "true",
	}
}

// isConfigFile reports whether a file name follows the *-config.{yaml,yml,json,toml} convention
func isConfigFile(name string) bool {
	for _, suffix := range []string{"-config.yaml", "-config.yml", "-config.json", "-config.toml"} {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// LoadConfig loads all frontend config files in the specified directory
func LoadConfig(configDir string, proxyConfig *ProxyConfig) ([]FrontendConfig, error) {
	var configs []FrontendConfig

	err := filepath.Walk(configDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		// Skip subdirectories if not scanning recursively
		if info.IsDir() && path != configDir && !proxyConfig.ScanRecursive {
			return filepath.SkipDir
		}
		if info.IsDir() || !isConfigFile(info.Name()) {
			return nil
		}

		logger.Infof("loading config file: %s", path)
		fileConfigs, err := parseConfig(path)
		if err != nil {
			return fmt.Errorf("failed to load config file %s: %w", path, err)
		}
		for i := range fileConfigs {
			fileConfigs[i].ConfigDir = filepath.Dir(path)
		}
		configs = append(configs, fileConfigs...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return configs, nil
}

// parseConfig loads and parses a frontend configuration file, which may
// hold multiple YAML documents
func parseConfig(path string) ([]FrontendConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	// Substitute environment variables
	data = []byte(substituteEnvVars(string(data)))

	if strings.HasSuffix(path, ".toml") {
		var cfg FrontendConfig
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal TOML: %w", err)
		}
		return []FrontendConfig{cfg}, nil
	}

	var configs []FrontendConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var raw map[string]interface{}
		if err := decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
		}
		if len(raw) == 0 {
			continue
		}

		cfg, err := decodeFrontendConfig(raw)
		if err != nil {
			return nil, err
		}
		configs = append(configs, *cfg)
	}
	return configs, nil
}

// decodeFrontendConfig converts a raw document, in either the native or the
// module-style format, into a FrontendConfig
func decodeFrontendConfig(raw map[string]interface{}) (*FrontendConfig, error) {
	if isModuleConfig(raw) {
		return transformModuleConfig(raw)
	}

	data, err := yaml.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config document: %w", err)
	}
	var cfg FrontendConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
	}
	return &cfg, nil
}

// substituteEnvVars replaces ${env.VAR} and ${env.VAR:-default} with environment variable values
func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		groups := envVarPattern.FindStringSubmatch(match)
		envVar := groups[1]
		defaultValue := groups[3]
		if value, exists := os.LookupEnv(envVar); exists {
			return value
		}
		return defaultValue
	})
}
