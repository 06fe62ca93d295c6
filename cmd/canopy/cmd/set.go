package cmd

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/go-canopy/canopy/pkg/snapshot"
)

func init() {
	RegisterCommand(&Command{
		Name:  "set",
		Short: "Write a value at a path",
		Long: `Writes a value into a snapshot file through the path-addressed store,
so guarded keys are rejected and missing intermediates are created as
empty maps. The value argument is parsed as YAML, so "3" is a number,
"true" a boolean and "[a, b]" a sequence.`,
		Usage: "canopy set <path> <value> [file]",
		Run:   runSet,
	})
}

func runSet(args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("usage: canopy set <path> <value> [file]")
	}
	path := args[0]
	var value any
	if err := yaml.Unmarshal([]byte(args[1]), &value); err != nil {
		return fmt.Errorf("invalid value %q: %w", args[1], err)
	}
	var explicit string
	if len(args) == 3 {
		explicit = args[2]
	}
	file, err := resolveSnapshot(explicit)
	if err != nil {
		return err
	}

	store, err := loadStore(file)
	if err != nil {
		return err
	}
	if err := store.SetPath(path, value); err != nil {
		return err
	}
	return snapshot.Save(file, store.Get())
}
