// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, layered merging,
// environment variable support and validation.
package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/godump/pkg/config"
)

// Source names for layers without a file path.
const (
	SourceDefault = "default"
	SourceEnv     = "env"
	SourceFlag    = "flag"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	ExplicitPath string

	// IgnoreSystemConfig skips loading system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// CLIConfig contains the layer built from explicitly set CLI flags.
	// It takes highest precedence.
	CLIConfig *config.File
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// File is the final merged layer. Every field is set.
	File *config.File

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Sources maps each key to the layer that last set it: a file path,
	// SourceEnv, SourceFlag or SourceDefault.
	Sources map[string]string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (GODUMP_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.godump.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/godump/config.yaml)
//  6. System config (/etc/godump/config.yaml)
//  7. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{
		Paths:   paths,
		Sources: make(map[string]string, len(Keys())),
	}

	cfg := config.DefaultFile()
	for _, key := range Keys() {
		result.Sources[key] = SourceDefault
	}

	apply := func(layer *config.File, source string) {
		cfg = merge(cfg, layer)
		for _, key := range setKeys(layer) {
			result.Sources[key] = source
		}
	}

	fileLayers := []struct {
		path string
		skip bool
		what string
	}{
		{paths.System, opts.IgnoreSystemConfig, "system"},
		{paths.User, opts.IgnoreUserConfig, "user"},
		{paths.Project, opts.IgnoreProjectConfig, "project"},
		{paths.Explicit, false, "explicit"},
	}

	for _, layer := range fileLayers {
		if layer.skip || layer.path == "" {
			continue
		}
		fileCfg, err := loadConfigFile(layer.path)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", layer.what, err)
		}
		apply(fileCfg, layer.path)
		result.LoadedFrom = append(result.LoadedFrom, layer.path)
	}

	if !opts.IgnoreEnv {
		envCfg, err := LoadFromEnv()
		if err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
		if err := firstError(Validate(envCfg)); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
		apply(envCfg, SourceEnv)
	}

	if opts.CLIConfig != nil {
		apply(opts.CLIConfig, SourceFlag)
	}

	validation := Validate(cfg)
	if err := firstError(validation); err != nil {
		return nil, err
	}
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	result.File = cfg
	return result, nil
}

// loadConfigFile loads and validates a configuration layer from a YAML file.
// Warnings are left to the validation of the merged result.
func loadConfigFile(path string) (*config.File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	cfg, err := config.FromYAML(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if err := firstError(ValidateWithFile(cfg, path)); err != nil {
		return nil, err
	}
	return cfg, nil
}

// firstError returns the first validation error, or nil when valid.
func firstError(r *ValidationResult) error {
	if r.Valid() {
		return nil
	}
	return &r.Errors[0]
}
