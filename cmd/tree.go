package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"axioncore/core"
)

var treeCmd = &cobra.Command{
	Use:   "tree <expression>",
	Short: "Parse an expression and print its AST (the tree-printing demo)",
	Args:  cobra.ExactArgs(1),
	RunE:  runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	h := core.Create()
	tc, err := cfg.TokenizerConfig()
	if err != nil {
		return err
	}
	h.SetConfig(tc)

	if err := h.Build(args[0], dataType); err != nil {
		h.PError(os.Stdout, "error: ")
		return fmt.Errorf("parse failed")
	}

	core.PrintTree(os.Stdout, h.Root(), 0)
	return nil
}
