package adapter

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/imposter-project/static-frontend/external"
	"github.com/imposter-project/static-frontend/frontend"
	"github.com/imposter-project/static-frontend/internal/config"
	"github.com/imposter-project/static-frontend/internal/exchange"
	"github.com/imposter-project/static-frontend/internal/response"
	"github.com/imposter-project/static-frontend/internal/router"
	"github.com/imposter-project/static-frontend/pkg/logger"
	"github.com/imposter-project/static-frontend/plugin"
)

// errNoBackend is returned when a frontend hands an authentication request to the host
var errNoBackend = errors.New("no backend is available to handle the authentication request")

// Proxy holds the initialised state shared by all adapters
type Proxy struct {
	Config    *config.ProxyConfig
	Frontends []frontend.Frontend
	Router    *router.Router
	manager   *external.Manager
}

// Shutdown releases resources held by the proxy, such as external plugin processes
func (p *Proxy) Shutdown() {
	if p.manager != nil {
		p.manager.Stop()
	}
}

// authRequestCallback receives authentication requests from frontends
func authRequestCallback(ctx *exchange.Context, data *frontend.InternalData) (*response.Response, error) {
	var state *exchange.State
	if ctx != nil {
		state = ctx.State
	}
	logger.Warnln(exchange.LogLine(exchange.SessionID(state), errNoBackend.Error()))
	return nil, errNoBackend
}

// InitialiseProxy performs common initialisation tasks for all adapters
func InitialiseProxy(configDirArg string) *Proxy {
	logger.Infoln("starting proxy...")

	proxyConfig := config.LoadProxyConfig()
	configDirs := getConfigDirs(configDirArg)

	var manager *external.Manager
	if proxyConfig.PluginDir != "" {
		var err error
		if manager, err = external.NewManager(proxyConfig.PluginDir); err != nil {
			panic(fmt.Errorf("failed to initialise plugin manager: %w", err))
		}
	}

	var frontends []frontend.Frontend
	for _, configDir := range configDirs {
		if info, err := os.Stat(configDir); os.IsNotExist(err) || !info.IsDir() {
			panic("Specified path is not a valid directory")
		}

		cfgs, err := config.LoadConfig(configDir, proxyConfig)
		if err != nil {
			panic(fmt.Errorf("failed to load config: %w", err))
		}
		attrs, err := config.LoadInternalAttributes(configDir)
		if err != nil {
			panic(fmt.Errorf("failed to load internal attributes: %w", err))
		}

		fes, err := plugin.LoadFrontends(cfgs, proxyConfig, attrs, authRequestCallback, manager)
		if err != nil {
			if manager != nil {
				manager.Stop()
			}
			panic(fmt.Errorf("failed to initialise frontends: %w", err))
		}
		frontends = append(frontends, fes...)
	}

	r := router.New()
	if err := r.RegisterFrontends(frontends, proxyConfig.BackendNames); err != nil {
		if manager != nil {
			manager.Stop()
		}
		panic(err)
	}
	logger.Infof("registered %d endpoint(s) for %d frontend(s)", len(r.Patterns()), len(frontends))

	return &Proxy{
		Config:    proxyConfig,
		Frontends: frontends,
		Router:    r,
		manager:   manager,
	}
}

func getConfigDirs(configDirArg string) []string {
	var configDirRaw string
	if configDirArg != "" {
		configDirRaw = configDirArg
	} else {
		configDirRaw = os.Getenv("PROXY_CONFIG_DIR")
		if configDirRaw == "" {
			panic("Config directory path must be provided either as an argument or via PROXY_CONFIG_DIR environment variable")
		}
	}
	return strings.Split(configDirRaw, ",")
}
