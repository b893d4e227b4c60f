package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/axion-project/axion/pkg/util/termio"
)

var theoriesCmd = &cobra.Command{
	Use:   "theories [flags]",
	Short: "list the available theories.",
	Run: func(cmd *cobra.Command, args []string) {
		library := buildLibrary(cmd)
		names := library.List()
		//
		table := termio.NewTablePrinter(4, uint(len(names))+1)
		table.SetRow(0, "theory", "axioms", "depends on", "description")

		for i, name := range names {
			th, _ := library.Theory(name)
			table.SetRow(uint(i)+1,
				name,
				fmt.Sprintf("%d", len(th.Axioms())),
				strings.Join(th.Dependencies(), ", "),
				th.Description())
		}

		table.Print()
	},
}

var axiomsCmd = &cobra.Command{
	Use:   "axioms [flags] theory",
	Short: "list the axioms of a theory.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		library := buildLibrary(cmd)
		//
		th, ok := library.Theory(args[0])
		if !ok {
			fmt.Printf("unknown theory %q\n", args[0])
			os.Exit(1)
		}

		axioms := th.Axioms()
		table := termio.NewTablePrinter(2, uint(len(axioms))+1)
		table.SetRow(0, "axiom", "statement")

		for i, axiom := range axioms {
			table.SetRow(uint(i)+1, axiom.Name, axiom.Statement.String())
		}

		table.Print()
	},
}

func init() {
	rootCmd.AddCommand(theoriesCmd)
	rootCmd.AddCommand(axiomsCmd)
	theoriesCmd.Flags().String("theory-file", "", "Load an additional theory from a YAML file")
	axiomsCmd.Flags().String("theory-file", "", "Load an additional theory from a YAML file")
}
