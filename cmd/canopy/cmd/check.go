package cmd

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/go-canopy/canopy/pkg/snapshot"
	"github.com/go-canopy/canopy/pkg/state"
)

func init() {
	RegisterCommand(&Command{
		Name:  "check",
		Short: "Validate a snapshot file",
		Long: `Parses a snapshot file through the store codec and reports its shape.
A file that loads here will load in the toolkit.`,
		Usage: "canopy check [file]",
		Run:   runCheck,
	})
}

func runCheck(args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("usage: canopy check [file]")
	}
	var explicit string
	if len(args) == 1 {
		explicit = args[0]
	}
	file, err := resolveSnapshot(explicit)
	if err != nil {
		return err
	}

	tree, err := snapshot.Load(file)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	objects, lists, scalars := countNodes(tree)
	color.New(color.FgGreen).Printf("%s: ok\n", file)
	fmt.Printf("  objects: %d, sequences: %d, scalars: %d\n", objects, lists, scalars)
	return nil
}

func countNodes(v state.Value) (objects, lists, scalars int) {
	switch t := v.(type) {
	case *state.Object:
		objects++
		t.Range(func(_ string, val state.Value) bool {
			o, l, s := countNodes(val)
			objects += o
			lists += l
			scalars += s
			return true
		})
	case state.List:
		lists++
		for _, e := range t {
			o, l, s := countNodes(e)
			objects += o
			lists += l
			scalars += s
		}
	default:
		scalars++
	}
	return objects, lists, scalars
}
