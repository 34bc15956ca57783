package main

import (
	"errors"

	"github.com/joshuapare/graphindex/cmd/indexctl/logger"
	"github.com/spf13/cobra"
)

var (
	removeKeys     []string
	removeElements []string
)

func init() {
	cmd := newRemoveCmd()
	cmd.Flags().StringSliceVar(&removeKeys, "key", nil, "Key to remove with all its elements (repeatable)")
	cmd.Flags().StringSliceVar(&removeElements, "element", nil, "Element to remove from every key (repeatable)")
	rootCmd.AddCommand(cmd)
}

func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <file>",
		Short: "Apply removals and report the resulting index",
		Long: `The remove command loads an association file, removes whole keys and/or
individual elements, and prints the statistics of what remains. The input
file is not modified.

Example:
  indexctl remove edges.tsv --key berlin
  indexctl remove edges.tsv --element v42 --element v43`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(args)
		},
	}
	return cmd
}

func runRemove(args []string) error {
	if len(removeKeys) == 0 && len(removeElements) == 0 {
		return errors.New("nothing to remove: pass --key and/or --element")
	}

	idx, err := loadIndex(args[0])
	if err != nil {
		return err
	}

	removed := 0
	for _, key := range removeKeys {
		if idx.TryRemoveKey(key) {
			removed++
		} else {
			logger.Warn("key not indexed, skipped", "key", key)
			printVerbose("Key not indexed: %s\n", key)
		}
	}
	for _, elem := range removeElements {
		idx.RemoveValue(elem)
	}
	logger.Info("removals applied",
		"keysRequested", len(removeKeys), "keysRemoved", removed, "elements", len(removeElements))

	stats := idx.Stats()
	if jsonOut {
		return printJSON(map[string]interface{}{
			"keysRemoved": removed,
			"keys":        stats.Keys,
			"values":      stats.Values,
		})
	}

	printInfo("Removed %d of %d keys\n", removed, len(removeKeys))
	printInfo("Keys:    %d\n", stats.Keys)
	printInfo("Values:  %d\n", stats.Values)
	return nil
}
