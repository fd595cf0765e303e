/*
Axion CLI Calculator - Cobra command structure
===============================================
Author: Uthman
Year: 2025

This file implements the Cobra-based command structure for Axion
calculator. The root command launches the interactive REPL, while
subcommands provide direct access to specific features (evaluation,
tree inspection, conversion, history).
*/

package cmd

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"axioncore/config"
	"axioncore/core"
	"axioncore/history"
	"axioncore/settings"
	"axioncore/value"
)

const banner = `
  ╔═╗─┐ ┬┬┌─┐┌┐┌
  ╠═╣┌┴┬┘││ ││││
  ╩ ╩┴ └─┴└─┘┘└┘
`

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
	colorCyan   = "\033[36m"
)

var (
	cfg      config.Config
	dataType value.DataType

	configPath string
	typeFlag   string
)

var rootCmd = &cobra.Command{
	Use:   "axion",
	Short: "Axion - a CLI expression calculator",
	Long: colorCyan + banner + colorReset + `
` + colorBold + `Axion` + colorReset + ` evaluates arithmetic, comparison, and logical
expressions over variables, in either integer or double-precision
arithmetic, and ships a tree-printing demo, unit conversion, and
calculation history alongside the interactive REPL.`,
	PersistentPreRunE: loadConfig,
	RunE:              startREPL,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "axion.yaml", "path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&typeFlag, "type", "", "arithmetic type: long or double (overrides config)")
}

// loadConfig loads the YAML config and resolves the effective data
// type, shared by every subcommand via PersistentPreRunE.
func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = loaded
	settings.Precision = cfg.DefaultPrecision

	typeName := cfg.DefaultDataType
	if typeFlag != "" {
		typeName = typeFlag
	}
	switch strings.ToLower(typeName) {
	case "long":
		dataType = value.Long
	case "double", "":
		dataType = value.Double
	default:
		return fmt.Errorf("unrecognised --type %q (want long or double)", typeName)
	}
	return nil
}

// startREPL launches the interactive calculator session.
func startREPL(cmd *cobra.Command, args []string) error {
	scanner := bufio.NewScanner(os.Stdin)
	variables := map[int]value.Number{}

	printWelcome()

	for {
		fmt.Print(colorCyan + "» " + colorReset)
		if !scanner.Scan() {
			fmt.Println(colorYellow + "\nGoodbye!" + colorReset)
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch {
		case input == "exit" || input == "quit":
			fmt.Println(colorYellow + "Goodbye!" + colorReset)
			return nil

		case input == "clear" || input == "cls":
			fmt.Print("\033[H\033[2J")
			printWelcome()
			continue

		case input == "help":
			printHelp()
			continue

		case input == "history":
			if err := history.Show(cfg.HistoryPath); err != nil {
				fmt.Printf(colorRed+"Error displaying history: %v\n"+colorReset, err)
			}
			continue

		case input == "vars" || input == "variables":
			showVariables(variables)
			continue

		case strings.HasPrefix(input, "precision "):
			handlePrecision(input)
			continue

		case strings.HasPrefix(input, "set "):
			handleSet(input, variables)
			continue

		case strings.HasPrefix(input, "convert "):
			handleConvertLine(input)
			continue

		default:
			evaluateLine(input, variables)
		}
	}

	return scanner.Err()
}

func printWelcome() {
	fmt.Println(colorCyan + banner + colorReset)
	fmt.Println(colorBold + "  Axion Calculator" + colorReset)
	fmt.Printf(colorDim+"  arithmetic: %s — type 'help' for commands\n"+colorReset, dataType)
}

func printHelp() {
	fmt.Println(colorYellow + "Commands:" + colorReset)
	fmt.Println("  <expression>                 evaluate an expression")
	fmt.Println("  $1, ${2}                     reference variable by index")
	fmt.Println("  set <index> <value>          assign a session variable")
	fmt.Println("  vars                         list variables currently assigned")
	fmt.Println("  precision <n>                set display precision (0-20)")
	fmt.Println("  convert <v> <from> to <to>   convert units")
	fmt.Println("  history                      show calculation history")
	fmt.Println("  help                         show this message")
	fmt.Println("  exit                         quit")
}

func showVariables(variables map[int]value.Number) {
	if len(variables) == 0 {
		fmt.Println(colorYellow + "No variables assigned this session." + colorReset)
		return
	}
	for i := 0; i <= maxKey(variables); i++ {
		if v, ok := variables[i]; ok {
			fmt.Printf("  $%d = %s\n", i+1, formatResult(v))
		}
	}
}

func maxKey(m map[int]value.Number) int {
	max := -1
	for k := range m {
		if k > max {
			max = k
		}
	}
	return max
}

// handleSet assigns a session variable by its one-based index, read
// back by expressions as $N or ${N}: "set 1 10" makes $1 evaluate to
// 10. The core library has no assignment operator of its own (the
// closed grammar has no identifiers) — variables are always
// caller-supplied, and this is the REPL supplying them across lines.
// The value is parsed in the session's arithmetic type.
func handleSet(input string, variables map[int]value.Number) {
	parts := strings.Fields(input)
	if len(parts) != 3 {
		fmt.Println(colorRed + "Usage: set <index> <value>" + colorReset)
		return
	}
	idx, err := strconv.Atoi(parts[1])
	if err != nil || idx < 1 {
		fmt.Printf(colorRed+"Invalid variable index: %s\n"+colorReset, parts[1])
		return
	}
	v, err := parseVariable(parts[2])
	if err != nil {
		fmt.Printf(colorRed+"Invalid value: %s\n"+colorReset, parts[2])
		return
	}
	variables[idx-1] = v
	fmt.Printf(colorGreen+"$%d = %s\n"+colorReset, idx, formatResult(v))
}

// parseVariable reads a variable value in the session's arithmetic
// type: a signed integer under long, a double under double.
func parseVariable(s string) (value.Number, error) {
	if dataType == value.Long {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return value.Number{}, err
		}
		return value.Int(n), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return value.Number{}, err
	}
	return value.Float(f), nil
}

func handlePrecision(input string) {
	parts := strings.Fields(input)
	if len(parts) != 2 {
		fmt.Println(colorRed + "Usage: precision <n>" + colorReset)
		return
	}
	p, err := strconv.Atoi(parts[1])
	if err != nil {
		fmt.Printf(colorRed+"Invalid number: %s\n"+colorReset, parts[1])
		return
	}
	if err := settings.Set(p); err != nil {
		fmt.Printf(colorRed+"Error: %v\n"+colorReset, err)
		return
	}
	fmt.Printf(colorGreen+"Precision set to %d\n"+colorReset, settings.Precision)
}

func handleConvertLine(input string) {
	parts := strings.Fields(input)
	if len(parts) != 5 || parts[3] != "to" {
		fmt.Println(colorRed + "Usage: convert <value> <from> to <to>" + colorReset)
		return
	}
	v, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		fmt.Printf(colorRed+"Invalid number: %s\n"+colorReset, parts[1])
		return
	}
	printConversion(v, parts[2], parts[4])
}

// evaluateLine builds and evaluates one expression, threading the
// session's variable map in so a later line can reference an earlier
// assignment by index (variables are caller-supplied, never assigned
// by the expression language itself).
func evaluateLine(input string, variables map[int]value.Number) {
	h := core.Create()
	tc, err := cfg.TokenizerConfig()
	if err != nil {
		fmt.Printf(colorRed+"Error: %v\n"+colorReset, err)
		return
	}
	h.SetConfig(tc)

	if err := h.Build(input, dataType); err != nil {
		h.PError(os.Stdout, colorRed+"Error: "+colorReset)
		return
	}

	maxVar := h.VarSet().Max()
	args := make([]value.Number, maxVar+1)
	for i := range args {
		if v, ok := variables[i]; ok {
			args[i] = v
		} else if dataType == value.Double {
			args[i] = value.Float(0)
		} else {
			args[i] = value.Int(0)
		}
	}

	var result value.Number
	if err := h.Eval(args, &result); err != nil {
		h.PError(os.Stdout, colorRed+"Error: "+colorReset)
		return
	}

	fmt.Printf(colorBold+"Result: "+colorReset+"%s\n", formatResult(result))

	if err := history.Add(cfg.HistoryPath, input, dataType, asFloat(result)); err != nil {
		fmt.Printf(colorYellow+"Warning: failed to save history: %v\n"+colorReset, err)
	}
}

func asFloat(n value.Number) float64 {
	if n.Type() == value.Long {
		return float64(n.Int64())
	}
	return n.Float64()
}

func formatResult(n value.Number) string {
	if n.Type() == value.Long {
		return fmt.Sprintf("%d", n.Int64())
	}
	v := n.Float64()
	if math.IsNaN(v) {
		return colorRed + "undefined (NaN)" + colorReset
	}
	if math.IsInf(v, 1) {
		return colorYellow + "+Inf" + colorReset
	}
	if math.IsInf(v, -1) {
		return colorYellow + "-Inf" + colorReset
	}
	format := fmt.Sprintf("%%.%dg", settings.Precision)
	return fmt.Sprintf(format, v)
}
