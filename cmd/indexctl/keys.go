package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newKeysCmd())
}

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys <file>",
		Short: "List indexed keys",
		Long: `The keys command lists every distinct key in sorted order.

Example:
  indexctl keys edges.tsv
  indexctl keys edges.tsv --fold`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(args)
		},
	}
	return cmd
}

func runKeys(args []string) error {
	idx, err := loadIndex(args[0])
	if err != nil {
		return err
	}

	keys := idx.GetKeys()
	slices.Sort(keys)

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":  args[0],
			"keys":  keys,
			"count": len(keys),
		})
	}

	for _, key := range keys {
		fmt.Println(key)
	}
	printInfo("\nTotal: %d keys\n", len(keys))
	return nil
}
