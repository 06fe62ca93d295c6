package cmd

import (
	"fmt"
	"os"

	"github.com/go-canopy/canopy/pkg/snapshot"
)

func init() {
	RegisterCommand(&Command{
		Name:  "patch",
		Short: "Apply a merge patch to a snapshot file",
		Long: `Applies an RFC 7386 merge patch (for example one produced by
"canopy diff --merge-patch") to a snapshot file and writes the result
back in place.`,
		Usage: "canopy patch <patch.json> [file]",
		Run:   runPatch,
	})
}

func runPatch(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: canopy patch <patch.json> [file]")
	}
	patch, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
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
	patched, err := snapshot.ApplyMergePatch(tree, patch)
	if err != nil {
		return err
	}
	return snapshot.Save(file, patched)
}
