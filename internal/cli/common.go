package cli

import (
	"github.com/eldridge/starman-dpkg/internal/config"
	"github.com/eldridge/starman-dpkg/internal/logger"
	"github.com/eldridge/starman-dpkg/internal/output"
)

// loadConfig loads and validates the package configuration using the
// global --config and --package flags.
func loadConfig() (*config.Config, error) {
	logger.Debug("Loading config from %s", cfgFile)
	cfg, err := config.Load(cfgFile, pkgName)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded package %s (web server: %s)", cfg.Package, cfg.WebServer)
	return cfg, nil
}

// outputResult handles JSON or human-readable output
func outputResult(data interface{}, successMsg string, args ...interface{}) error {
	if jsonOutput {
		return output.JSON(data)
	}
	output.Success(successMsg, args...)
	return nil
}
