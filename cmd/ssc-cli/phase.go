package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luxfi/ssc/pkg/message"
	"github.com/luxfi/ssc/pkg/phase"
)

var phaseCmd = &cobra.Command{
	Use:   "phase <slot>",
	Short: "Report which phase a slot index falls in under the configured k",
	Args:  cobra.ExactArgs(1),
	RunE:  runPhase,
}

func runPhase(cmd *cobra.Command, args []string) error {
	var slot uint64
	if _, err := fmt.Sscanf(args[0], "%d", &slot); err != nil {
		return fmt.Errorf("invalid slot index %q: %w", args[0], err)
	}
	sched := phase.NewSchedule(securityParamK)
	s := message.LocalSlotIndex(slot)

	switch {
	case sched.IsCommitmentPhase(s):
		fmt.Println("commitment")
	case sched.IsOpeningPhase(s):
		fmt.Println("opening")
	case sched.IsSharesPhase(s):
		fmt.Println("shares")
	default:
		fmt.Println("idle")
	}
	return nil
}
