package cmd

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/go-canopy/canopy/pkg/snapshot"
	"github.com/go-canopy/canopy/pkg/state"
)

func init() {
	RegisterCommand(&Command{
		Name:  "get",
		Short: "Print the value at a path",
		Long:  "Reads a snapshot file and prints the value at the given dot-separated path as YAML.\nWith an empty path the whole tree is printed.",
		Usage: "canopy get <path> [file]",
		Run:   runGet,
	})
}

func runGet(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: canopy get <path> [file]")
	}
	path := args[0]
	var explicit string
	if len(args) == 2 {
		explicit = args[1]
	}
	file, err := resolveSnapshot(explicit)
	if err != nil {
		return err
	}

	tree, err := snapshot.Load(file)
	if err != nil {
		return err
	}
	value, ok := state.At(tree, path)
	if !ok {
		return fmt.Errorf("%s: no value at path %q", file, path)
	}

	out, err := snapshot.EncodeYAML(value)
	if err != nil {
		return err
	}
	if path != "" {
		color.New(color.FgCyan).Printf("%s:\n", path)
	}
	fmt.Print(string(out))
	return nil
}
