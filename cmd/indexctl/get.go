package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/joshuapare/graphindex/index"
	"github.com/spf13/cobra"
)

var (
	getAll bool
	getAny bool
)

func init() {
	cmd := newGetCmd()
	cmd.Flags().BoolVar(&getAll, "all", false, "Print elements indexed under every key")
	cmd.Flags().BoolVar(&getAny, "any", false, "Print elements indexed under any key")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <key>...",
		Short: "Look up the elements indexed under keys",
		Long: `The get command resolves each key to its elements. With --all it prints
only elements present under every key; with --any it prints the union.

Example:
  indexctl get edges.tsv berlin
  indexctl get edges.tsv berlin paris --all
  indexctl get edges.tsv BERLIN --fold --json`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	if getAll && getAny {
		return errors.New("--all and --any are mutually exclusive")
	}

	idx, err := loadIndex(args[0])
	if err != nil {
		return err
	}
	keys := args[1:]

	if getAll || getAny {
		var elems []string
		if getAll {
			elems = index.LookupAll[string, string](idx, keys...)
		} else {
			elems = index.LookupAny[string, string](idx, keys...)
		}
		slices.Sort(elems)
		if elems == nil {
			elems = []string{}
		}

		if jsonOut {
			return printJSON(map[string]interface{}{
				"keys":     keys,
				"elements": elems,
				"count":    len(elems),
			})
		}
		for _, e := range elems {
			fmt.Println(e)
		}
		printInfo("\nTotal: %d elements\n", len(elems))
		return nil
	}

	results := make(map[string][]string, len(keys))
	for _, key := range keys {
		elems, ok := idx.GetValue(key)
		if !ok {
			printVerbose("Key not indexed: %s\n", key)
			elems = []string{}
		}
		slices.Sort(elems)
		results[key] = elems
	}

	if jsonOut {
		return printJSON(results)
	}
	for _, key := range keys {
		fmt.Printf("%s\t%s\n", key, strings.Join(results[key], ","))
	}
	return nil
}
