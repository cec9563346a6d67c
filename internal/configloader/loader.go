// Package configloader resolves the fixups configuration from defaults,
// the project config file and FIXUPS_* environment variables.
package configloader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yaklabco/fixups/pkg/config"
)

// LoadOptions controls configuration loading.
type LoadOptions struct {
	// WorkingDir is searched for config.DefaultFileName.
	// Defaults to the process working directory.
	WorkingDir string

	// ExplicitPath is a config file given with --config. It must exist.
	ExplicitPath string

	// IgnoreEnv skips environment variable overrides.
	IgnoreEnv bool

	// LookupEnv reads environment variables. Defaults to os.LookupEnv.
	LookupEnv func(key string) (string, bool)
}

// LoadResult contains the resolved configuration and where it came from.
type LoadResult struct {
	// Config is the merged configuration.
	Config *config.Config

	// LoadedFrom is the config file that was read, or "" if none.
	LoadedFrom string

	// EnvApplied lists the environment variables that overrode a value.
	EnvApplied []string
}

// Load resolves the configuration. Precedence, lowest to highest:
//  1. Built-in defaults
//  2. Project config file (ExplicitPath, or .fixups.yml in WorkingDir)
//  3. Environment variables (FIXUPS_*)
//
// CLI arguments are applied by the caller on top of the result.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	path, err := opts.configPath()
	if err != nil {
		return nil, err
	}

	result := &LoadResult{Config: config.NewConfig()}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}

		cfg, err := config.FromYAML(data)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}

		result.Config = cfg
		result.LoadedFrom = path
	}

	if !opts.IgnoreEnv {
		lookup := opts.LookupEnv
		if lookup == nil {
			lookup = os.LookupEnv
		}

		applied, err := applyEnv(result.Config, lookup)
		if err != nil {
			return nil, err
		}
		result.EnvApplied = applied
	}

	if err := result.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return result, nil
}

// configPath returns the config file to read, or "" when there is none.
func (o LoadOptions) configPath() (string, error) {
	if o.ExplicitPath != "" {
		if _, err := os.Stat(o.ExplicitPath); err != nil {
			return "", fmt.Errorf("config file %s: %w", o.ExplicitPath, err)
		}
		return o.ExplicitPath, nil
	}

	dir := o.WorkingDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}

	candidate := filepath.Join(dir, config.DefaultFileName)
	if _, err := os.Stat(candidate); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("stat %s: %w", candidate, err)
	}

	return candidate, nil
}
