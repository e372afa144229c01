package config

// FrontendConfig represents a single frontend definition loaded from a config file
type FrontendConfig struct {
	Plugin string                 `yaml:"plugin" toml:"plugin"`
	Name   string                 `yaml:"name" toml:"name"`
	Config map[string]interface{} `yaml:"config" toml:"config"`

	// ConfigDir is the directory of the file that declared the frontend
	ConfigDir string `yaml:"-" toml:"-"`
}

// ProxyConfig is the process-wide configuration of the proxy host
type ProxyConfig struct {
	ServerPort    string
	ServerURL     string
	BackendNames  []string
	PluginDir     string
	EnableGzip    bool
	ScanRecursive bool
}
