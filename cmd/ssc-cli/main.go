// Command ssc-cli is a read-only operator tool for the SSC core: it runs an
// in-memory end-to-end simulation of one epoch's MPC round, reports which
// phase a slot falls in, and checks a CBOR-encoded SignedCommitment read
// from a file. It carries no network, gossip or persistence layer of its
// own — those are external collaborators per spec §6.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	logger *slog.Logger

	securityParamK int
	verbose        bool

	rootCmd = &cobra.Command{
		Use:   "ssc-cli",
		Short: "Shared Seed Computation inspection and simulation CLI",
		Long: `ssc-cli runs the SSC core's three-phase PVSS protocol end to end in
memory, reports phase-schedule decisions, and verifies commitment messages.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		},
	}
)

func init() {
	rootCmd.PersistentFlags().IntVarP(&securityParamK, "k", "k", 2, "protocol security parameter (slots per phase)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(simulateCmd, phaseCmd, verifyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
