package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/imposter-project/static-frontend/frontend"
	"github.com/imposter-project/static-frontend/internal/config"
	"github.com/imposter-project/static-frontend/internal/exchange"
	"github.com/imposter-project/static-frontend/internal/response"
	"github.com/imposter-project/static-frontend/plugin"
	"github.com/imposter-project/static-frontend/plugin/staticcontent"
	"github.com/spf13/cobra"
)

func noopCallback(ctx *exchange.Context, data *frontend.InternalData) (*response.Response, error) {
	return nil, frontend.ErrNotImplemented
}

// validateConfig checks each frontend declared in configDir and returns the number of valid frontends
func validateConfig(configDir string, out io.Writer) (valid int, invalid int, err error) {
	proxyConfig := config.LoadProxyConfig()
	proxyConfig.ScanRecursive = true

	cfgs, err := config.LoadConfig(configDir, proxyConfig)
	if err != nil {
		return 0, 0, err
	}
	attrs, err := config.LoadInternalAttributes(configDir)
	if err != nil {
		return 0, 0, err
	}

	for _, cfg := range cfgs {
		if problem := validateFrontend(cfg, proxyConfig, attrs); problem != "" {
			fmt.Fprintf(out, "✗ %s (%s) - Invalid:\n\t - %s\n", cfg.Name, cfg.Plugin, problem)
			invalid++
			continue
		}
		fmt.Fprintf(out, "✓ %s (%s) - Valid\n", cfg.Name, cfg.Plugin)
		valid++
	}
	return valid, invalid, nil
}

// validateFrontend returns a description of the first problem found, or an empty string.
// External plugins are not started, so only their declaration is checked.
func validateFrontend(cfg config.FrontendConfig, proxyConfig *config.ProxyConfig, attrs map[string]interface{}) string {
	if cfg.Name == "" {
		return "frontend name is required"
	}
	if strings.HasPrefix(cfg.Plugin, "external:") {
		return ""
	}
	frontends, err := plugin.LoadFrontends([]config.FrontendConfig{cfg}, proxyConfig, attrs, noopCallback, nil)
	if err != nil {
		return err.Error()
	}
	if fe, ok := frontends[0].(*staticcontent.StaticContentFrontend); ok {
		info, err := os.Stat(fe.File())
		if err != nil {
			return fmt.Sprintf("static content file is not readable: %v", err)
		}
		if info.IsDir() {
			return fmt.Sprintf("static content file %s is a directory", fe.File())
		}
	}
	return ""
}

func newRootCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:          "validate-config [config-dir...]",
		Short:        "Validate frontend configuration files",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var totalInvalid int
			for _, configDir := range args {
				fmt.Fprintf(out, "Validating config files in %s\n", configDir)
				valid, invalid, err := validateConfig(configDir, out)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%d valid, %d invalid\n", valid, invalid)
				totalInvalid += invalid
			}
			if totalInvalid > 0 {
				return fmt.Errorf("%d invalid frontend(s)", totalInvalid)
			}
			return nil
		},
	}
}

func run(args []string, out io.Writer) error {
	cmd := newRootCmd(out)
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(out)
	return cmd.Execute()
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
