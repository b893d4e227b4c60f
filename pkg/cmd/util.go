package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/axion-project/axion/pkg/expr"
	"github.com/axion-project/axion/pkg/kernel"
	"github.com/axion-project/axion/pkg/parser"
	"github.com/axion-project/axion/pkg/theory"
)

// Get an expected flag, or panic if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected string flag, or panic if an error arises.
func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected uint flag, or panic if an error arises.
func getUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Configure the log level from the persistent verbosity flag.
func configureLogging(cmd *cobra.Command) {
	if getFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// Parse an expression given on the command line, highlighting the error
// position on failure.
func parseExpression(text string) expr.Expr {
	e, err := parser.Parse(text)
	//
	if err != nil {
		var syntax *parser.SyntaxError
		if errors.As(err, &syntax) {
			printSyntaxError(text, syntax)
		} else {
			fmt.Println(err)
		}

		os.Exit(2)
	}

	return e
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(text string, err *parser.SyntaxError) {
	span := err.Span()
	//
	fmt.Printf("expected %s, found %s\n", err.Expected(), err.Found())
	fmt.Println(text)
	// Print indent
	fmt.Print(strings.Repeat(" ", span.Start()))
	// Print highlight
	fmt.Println(strings.Repeat("^", max(1, span.Length())))
}

// Construct the theory library: the standard library, extended with any
// custom theories given via the --theory-file flag.
func buildLibrary(cmd *cobra.Command) *theory.Library {
	library := theory.StandardLibrary()
	//
	if filename := getString(cmd, "theory-file"); filename != "" {
		custom, err := theory.LoadFile(filename)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}

		library.Add(custom)
	}

	return library
}

// Construct a kernel over the configured theory library.
func buildKernel(cmd *cobra.Command) *kernel.Kernel {
	return kernel.New(buildLibrary(cmd))
}
