package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDumpCmd())
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print every key with its elements",
		Long: `The dump command prints each key followed by its elements, both sorted.

Example:
  indexctl dump edges.tsv
  indexctl dump edges.tsv --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

// dumpEntry is one key of a dump.
type dumpEntry struct {
	Key      string   `json:"key"`
	Elements []string `json:"elements"`
}

func runDump(args []string) error {
	idx, err := loadIndex(args[0])
	if err != nil {
		return err
	}

	entries := make([]dumpEntry, 0, idx.CountOfKeys())
	for key, elems := range idx.GetKeyValues() {
		slices.Sort(elems)
		entries = append(entries, dumpEntry{Key: key, Elements: elems})
	}
	slices.SortFunc(entries, func(a, b dumpEntry) int { return strings.Compare(a.Key, b.Key) })

	if jsonOut {
		return printJSON(entries)
	}

	for _, e := range entries {
		fmt.Printf("%s\t%s\n", e.Key, strings.Join(e.Elements, ","))
	}
	return nil
}
