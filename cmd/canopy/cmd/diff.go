package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/go-canopy/canopy/pkg/snapshot"
)

func init() {
	RegisterCommand(&Command{
		Name:  "diff",
		Short: "Diff two snapshot files",
		Long: `Compares two snapshot files. By default prints a colored text diff of
their YAML renderings; with --merge-patch prints the RFC 7386 merge
patch that transforms the first into the second.`,
		Usage: "canopy diff <a> <b> [--merge-patch]",
		Run:   runDiff,
	})
}

func runDiff(args []string) error {
	var files []string
	mergePatch := false
	for _, arg := range args {
		if arg == "--merge-patch" {
			mergePatch = true
			continue
		}
		files = append(files, arg)
	}
	if len(files) != 2 {
		return fmt.Errorf("usage: canopy diff <a> <b> [--merge-patch]")
	}

	a, err := snapshot.Load(files[0])
	if err != nil {
		return err
	}
	b, err := snapshot.Load(files[1])
	if err != nil {
		return err
	}

	if mergePatch {
		patch, err := snapshot.CreateMergePatch(a, b)
		if err != nil {
			return err
		}
		fmt.Println(string(patch))
		return nil
	}

	diffs, err := snapshot.TextDiff(a, b)
	if err != nil {
		return err
	}
	printDiffs(diffs)
	return nil
}

func printDiffs(diffs []diffmatchpatch.Diff) {
	ins := color.New(color.FgGreen)
	del := color.New(color.FgRed, color.CrossedOut)
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			ins.Print(d.Text)
		case diffmatchpatch.DiffDelete:
			del.Print(d.Text)
		default:
			fmt.Print(d.Text)
		}
	}
}
