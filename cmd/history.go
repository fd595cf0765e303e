package cmd

import (
	"github.com/spf13/cobra"

	"axioncore/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the persisted calculation history",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	return history.Show(cfg.HistoryPath)
}
