package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"axioncore/units"
)

var (
	convertValue float64
	convertFrom  string
	convertTo    string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a value between length, weight, or time units",
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().Float64Var(&convertValue, "value", 0, "value to convert")
	convertCmd.Flags().StringVar(&convertFrom, "from", "", "source unit (e.g. km)")
	convertCmd.Flags().StringVar(&convertTo, "to", "", "target unit (e.g. m)")
	convertCmd.MarkFlagRequired("from")
	convertCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	return printConversion(convertValue, convertFrom, convertTo)
}

func printConversion(v float64, from, to string) error {
	result, err := units.Convert(v, from, to)
	if err != nil {
		fmt.Printf(colorRed+"Conversion error: %v\n"+colorReset, err)
		return nil
	}
	fmt.Printf("%g %s = %g %s\n", v, from, result, to)
	return nil
}
