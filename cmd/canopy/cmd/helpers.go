package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/go-canopy/canopy/cmd/canopy/internal/config"
	"github.com/go-canopy/canopy/pkg/snapshot"
	"github.com/go-canopy/canopy/pkg/state"
)

// resolveSnapshot returns the snapshot file to operate on: the explicit
// argument when given, otherwise the project default from canopy.yaml.
func resolveSnapshot(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	root, err := config.FindProjectRoot()
	if err != nil {
		return "", err
	}
	resolved, err := config.Resolve(root)
	if err != nil {
		return "", err
	}
	return filepath.Join(resolved.Root, resolved.Snapshot), nil
}

// loadStore builds a real store from a snapshot file, so CLI edits go
// through the same guards and cloning rules as toolkit writes.
func loadStore(filename string) (*state.Store, error) {
	v, err := snapshot.Load(filename)
	if err != nil {
		return nil, err
	}
	store, err := state.NewStore(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return store, nil
}
