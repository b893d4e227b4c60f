package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/axion-project/axion/pkg/kernel"
	"github.com/axion-project/axion/pkg/session"
	"github.com/axion-project/axion/pkg/solver"
	"github.com/axion-project/axion/pkg/util/termio"
)

var proveCmd = &cobra.Command{
	Use:   "prove [flags] theorem",
	Short: "search for a proof of a theorem.",
	Long: `Attempt to prove a theorem by forward chaining over the axioms
of the chosen theory, e.g. "axion prove --theory Logic '0 = 0'".  On
success the finalized proof is printed along with its digest, and can
be exported for independent checking.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		configureLogging(cmd)
		//
		theoryName := getString(cmd, "theory")
		maxRounds := getUint(cmd, "max-rounds")
		exportFile := getString(cmd, "export")
		sessionFile := getString(cmd, "session")
		//
		prover := solver.NewProver(buildKernel(cmd))
		if maxRounds > 0 {
			prover.MaxRounds = maxRounds
		}

		proof, err := prover.Prove(parseExpression(args[0]), theoryName)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		printProof(proof)

		if exportFile != "" {
			writeProofFile(exportFile, proof)
		}

		if sessionFile != "" {
			recordProof(sessionFile, proof)
		}
	},
}

// Print a finalized proof as a step table followed by its digest.
func printProof(proof *kernel.Proof) {
	steps := proof.Steps()
	table := termio.NewTablePrinter(5, uint(len(steps))+1)
	//
	table.SetRow(0, "#", "statement", "rule", "premises", "justification")

	for i, step := range steps {
		table.SetRow(uint(i)+1,
			fmt.Sprintf("%d", step.Index()),
			step.Statement().String(),
			step.Rule().String(),
			fmt.Sprintf("%v", step.Premises()),
			step.Justification())
	}
	// Bound statement width by the available terminal width
	table.SetMaxWidth(1, termio.Width()/2)
	table.Print()
	//
	fmt.Printf("proved %s\n", proof.Theorem())
	fmt.Printf("digest %s\n", proof.Hash())
}

// Serialize a finalized proof to the given file.
func writeProofFile(filename string, proof *kernel.Proof) {
	data, err := session.EncodeProof(proof)
	if err == nil {
		err = os.WriteFile(filename, data, 0644)
	}

	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
}

// Append a record of the proof to the session history file, creating the
// file when it does not yet exist.
func recordProof(filename string, proof *kernel.Proof) {
	s := session.NewSession()
	//
	if file, err := os.Open(filename); err == nil {
		err = s.Import(file)
		file.Close()

		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	}

	if _, err := s.Add(proof); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	file, err := os.Create(filename)
	if err == nil {
		err = s.Export(file)
		file.Close()
	}

	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.AddCommand(proveCmd)
	proveCmd.Flags().String("theory", "Logic", "Theory whose axioms to prove from")
	proveCmd.Flags().String("theory-file", "", "Load an additional theory from a YAML file")
	proveCmd.Flags().Uint("max-rounds", 0, "Bound the number of search rounds (0 = default)")
	proveCmd.Flags().String("export", "", "Write the finalized proof to a JSON file")
	proveCmd.Flags().String("session", "", "Record the proof in a session history file")
}
