package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/userkit/internal/core/domain"
	"github.com/custodia-labs/userkit/internal/numeric"
)

var greetCmd = &cobra.Command{
	Use:   "greet [name]",
	Short: "Print a greeting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), domain.Greet(args[0]))
		return nil
	},
}

var addCmd = &cobra.Command{
	Use:   "add [a] [b]",
	Short: "Add two numbers",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, b, err := parsePair(args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatNumber(numeric.Add(a, b)))
		return nil
	},
}

var multiplyCmd = &cobra.Command{
	Use:   "multiply [a] [b]",
	Short: "Multiply two numbers",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, b, err := parsePair(args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatNumber(numeric.Multiply(a, b)))
		return nil
	},
}

var doubleCmd = &cobra.Command{
	Use:   "double [numbers...]",
	Short: "Double each number, preserving order",
	Long: `Double each number in the list and print the result in the same order.
With no arguments the result is an empty list.`,
	RunE: runDouble,
}

func init() {
	rootCmd.AddCommand(greetCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(multiplyCmd)
	rootCmd.AddCommand(doubleCmd)
}

func runDouble(cmd *cobra.Command, args []string) error {
	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := parseNumber(arg)
		if err != nil {
			return err
		}
		values[i] = v
	}

	doubled := numeric.ProcessArray(values)
	parts := make([]string, len(doubled))
	for i, v := range doubled {
		parts[i] = formatNumber(v)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "[%s]\n", strings.Join(parts, ", "))
	return nil
}

func parsePair(args []string) (float64, float64, error) {
	a, err := parseNumber(args[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := parseNumber(args[1])
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return v, nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
