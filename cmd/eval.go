package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"axioncore/core"
	"axioncore/value"
)

var evalVars []string

var evalCmd = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Evaluate a single expression and print its result",
	Args:  cobra.ExactArgs(1),
	RunE:  runEval,
}

func init() {
	evalCmd.Flags().StringSliceVar(&evalVars, "var", nil, "variable value, by position: --var 10 --var 20 assigns $1=10 $2=20")
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	h := core.Create()
	tc, err := cfg.TokenizerConfig()
	if err != nil {
		return err
	}
	h.SetConfig(tc)

	if err := h.Build(args[0], dataType); err != nil {
		h.PError(os.Stdout, "error: ")
		return fmt.Errorf("evaluation failed")
	}

	variables := make([]value.Number, 0, len(evalVars))
	for _, s := range evalVars {
		n, err := parseVariable(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("invalid --var %q: %w", s, err)
		}
		variables = append(variables, n)
	}
	for maxVar := h.VarSet().Max(); len(variables) <= maxVar; {
		if dataType == value.Double {
			variables = append(variables, value.Float(0))
		} else {
			variables = append(variables, value.Int(0))
		}
	}

	var result value.Number
	if err := h.Eval(variables, &result); err != nil {
		h.PError(os.Stdout, "error: ")
		return fmt.Errorf("evaluation failed")
	}

	fmt.Println(formatResult(result))
	return nil
}
