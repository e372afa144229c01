package external

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"
	"github.com/imposter-project/static-frontend/external/shared"
	"github.com/imposter-project/static-frontend/frontend"
	"github.com/imposter-project/static-frontend/pkg/logger"
)

type loadedPlugin struct {
	name   string
	client *plugin.Client
}

// Manager starts external frontend plugins and tracks them until they are stopped
type Manager struct {
	pluginDir string
	logger    hclog.Logger
	loaded    []loadedPlugin
}

// NewManager creates a manager for plugins in the given directory, defaulting
// to ~/.proxy/plugins when empty
func NewManager(pluginDir string) (*Manager, error) {
	if pluginDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		pluginDir = filepath.Join(homeDir, ".proxy", "plugins")
	}
	return &Manager{
		pluginDir: pluginDir,
		logger:    logger.Named("plugin"),
	}, nil
}

// PluginPath returns the path of the executable for the named plugin
func (m *Manager) PluginPath(pluginName string) string {
	return filepath.Join(m.pluginDir, "plugin-"+pluginName)
}

// Load starts the named plugin and configures it as the given frontend
func (m *Manager) Load(pluginName string, base frontend.Base, config map[string]interface{}, configDir string) (frontend.Frontend, error) {
	impl, err := m.start(pluginName)
	if err != nil {
		return nil, err
	}

	args := shared.ConfigureArgs{
		Name:               base.Name(),
		BaseURL:            base.BaseURL,
		ConfigDir:          configDir,
		Config:             config,
		InternalAttributes: base.InternalAttributes,
	}
	if err := impl.Configure(args); err != nil {
		return nil, err
	}
	return NewPluginFrontend(pluginName, base, impl), nil
}

func (m *Manager) start(pluginName string) (shared.ExternalFrontend, error) {
	pluginPath := m.PluginPath(pluginName)
	logger.Debugf("loading external plugin: %s", pluginPath)

	// We're a host! Start by launching the plugin process.
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig: shared.Handshake,
		Plugins:         shared.PluginMap(nil),
		Cmd:             exec.Command(pluginPath),
		Logger:          m.logger,
	})

	// Connect via RPC
	rpcClient, err := client.Client()
	if err != nil {
		client.Kill()
		return nil, fmt.Errorf("failed to start plugin %s: %w", pluginName, err)
	}

	// Request the plugin
	raw, err := rpcClient.Dispense(shared.PluginName)
	if err != nil {
		client.Kill()
		return nil, fmt.Errorf("failed to dispense plugin %s: %w", pluginName, err)
	}

	// We should have a plugin stub now! This feels like a normal interface
	// implementation but is in fact over an RPC connection.
	impl, ok := raw.(shared.ExternalFrontend)
	if !ok {
		client.Kill()
		return nil, fmt.Errorf("plugin %s does not implement the frontend interface", pluginName)
	}

	m.loaded = append(m.loaded, loadedPlugin{name: pluginName, client: client})
	return impl, nil
}

// Stop kills all plugin processes started by the manager
func (m *Manager) Stop() {
	for _, l := range m.loaded {
		logger.Debugf("unloading external plugin: %s", l.name)
		l.client.Kill()
	}
	m.loaded = nil
}
