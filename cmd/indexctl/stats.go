package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Show index statistics",
		Long: `The stats command loads an association file and reports the number of
keys, the number of key/element associations and the approximate memory use.

Example:
  indexctl stats edges.tsv
  indexctl stats edges.tsv --fold --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args)
		},
	}
	return cmd
}

func runStats(args []string) error {
	idx, err := loadIndex(args[0])
	if err != nil {
		return err
	}

	stats := idx.Stats()
	desc := idx.Description()

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":        args[0],
			"impl":        stats.Impl,
			"keys":        stats.Keys,
			"values":      stats.Values,
			"bytesApprox": stats.BytesApprox,
			"description": desc,
		})
	}

	fmt.Printf("Index:   %s (%s)\n", stats.Impl, desc.Summary)
	fmt.Printf("Keys:    %d\n", stats.Keys)
	fmt.Printf("Values:  %d\n", stats.Values)
	fmt.Printf("Memory:  ~%d bytes\n", stats.BytesApprox)
	return nil
}
