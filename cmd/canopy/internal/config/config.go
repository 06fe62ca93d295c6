// Package config loads the optional canopy.yaml project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// Config represents the optional canopy.yaml configuration.
type Config struct {
	Project ProjectConfig `yaml:"project"`
	Toolkit ToolkitConfig `yaml:"toolkit"`
}

// ProjectConfig contains project settings.
type ProjectConfig struct {
	// Snapshot is the default snapshot file commands fall back to.
	Snapshot string `yaml:"snapshot,omitempty"`
}

// ToolkitConfig pins the toolkit.
type ToolkitConfig struct {
	Version string `yaml:"version,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root           string
	ModulePath     string
	Snapshot       string
	ToolkitVersion string
}

// LoadOptional reads canopy.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "canopy.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read canopy.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse canopy.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads canopy.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	snapshot := strings.TrimSpace(cfg.Project.Snapshot)
	if snapshot == "" {
		snapshot = "state.yaml"
	}

	toolkitVersion := strings.TrimSpace(cfg.Toolkit.Version)
	if toolkitVersion == "" {
		toolkitVersion = "latest"
	} else if !semver.IsValid(toolkitVersion) {
		return nil, fmt.Errorf("toolkit.version %q is not a valid semantic version (expected e.g. v0.3.0)", toolkitVersion)
	}

	return &Resolved{
		Root:           dir,
		ModulePath:     modulePath,
		Snapshot:       snapshot,
		ToolkitVersion: toolkitVersion,
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}
