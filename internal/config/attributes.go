package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/imposter-project/static-frontend/pkg/logger"
	"gopkg.in/yaml.v3"
)

// InternalAttributesFile is the optional file in a config directory holding
// the proxy's internal attribute mapping
const InternalAttributesFile = "internal_attributes.yaml"

// LoadInternalAttributes loads the internal attribute mapping from the config
// directory. A missing file yields an empty mapping.
func LoadInternalAttributes(configDir string) (map[string]interface{}, error) {
	path := filepath.Join(configDir, InternalAttributesFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Tracef("no internal attributes file found at %s", path)
			return map[string]interface{}{}, nil
		}
		return nil, fmt.Errorf("failed to read internal attributes: %w", err)
	}

	attrs := make(map[string]interface{})
	if err := yaml.Unmarshal([]byte(substituteEnvVars(string(data))), &attrs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal internal attributes: %w", err)
	}
	return attrs, nil
}
