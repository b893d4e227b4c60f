package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/axion-project/axion/pkg/session"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] proof_file",
	Short: "re-validate an exported proof.",
	Long: `Replay every step of an exported proof through the inference
kernel, recompute its digest and compare against the digest stored in
the file.  A proof which was tampered with in any way fails the check.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		configureLogging(cmd)
		//
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}

		proof, err := session.DecodeProof(data, buildKernel(cmd))
		if err != nil {
			fmt.Printf("%s: %s\n", args[0], err)
			os.Exit(1)
		}
		//
		fmt.Printf("checked %s (%d steps)\n", proof.Theorem(), proof.Len())
		fmt.Printf("digest %s\n", proof.Hash())
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().String("theory-file", "", "Load an additional theory from a YAML file")
}
