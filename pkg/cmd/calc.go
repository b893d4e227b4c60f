package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/axion-project/axion/pkg/cas"
)

var diffCmd = &cobra.Command{
	Use:   "diff [flags] expression",
	Short: "differentiate an expression symbolically.",
	Long: `Differentiate an expression with respect to its free variable
and simplify the result, e.g. "axion diff 'x^2 + 3*x'".`,
	Run: func(cmd *cobra.Command, args []string) {
		runCalc(cmd, args, cas.Differentiate)
	},
}

var integrateCmd = &cobra.Command{
	Use:   "integrate [flags] expression",
	Short: "integrate an expression symbolically.",
	Long: `Compute an antiderivative of an expression with respect to its
free variable and simplify the result (the constant of integration is
omitted), e.g. "axion integrate 'x^2'".`,
	Run: func(cmd *cobra.Command, args []string) {
		runCalc(cmd, args, cas.Integrate)
	},
}

var simplifyCmd = &cobra.Command{
	Use:   "simplify [flags] expression",
	Short: "simplify an expression algebraically.",
	Long: `Rewrite an expression to a simpler equivalent form using the
algebraic rewrite rules, e.g. "axion simplify 'x + 0'".`,
	Run: func(cmd *cobra.Command, args []string) {
		runCalc(cmd, args, cas.Simplify)
	},
}

// Parse the argument, apply the given engine rule and print the result.
func runCalc(cmd *cobra.Command, args []string, rule cas.Rule) {
	if len(args) != 1 {
		fmt.Println(cmd.UsageString())
		os.Exit(1)
	}
	// Configure log level
	configureLogging(cmd)
	//
	result, err := cas.Apply(rule, parseExpression(args[0]))
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	fmt.Println(result)
}

func init() {
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(integrateCmd)
	rootCmd.AddCommand(simplifyCmd)
}
