package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/luxfi/ssc/pkg/message"
	"github.com/luxfi/ssc/pkg/party"
	"github.com/luxfi/ssc/pkg/verify"
)

var (
	verifyEpoch uint64
	verifyPKHex string

	verifyCmd = &cobra.Command{
		Use:   "verify <signed-commitment-file>",
		Short: "Check a CBOR-encoded SignedCommitment's PVSS shares and signature",
		Args:  cobra.ExactArgs(1),
		RunE:  runVerify,
	}
)

func init() {
	verifyCmd.Flags().Uint64Var(&verifyEpoch, "epoch", 0, "epoch the commitment was signed for")
	verifyCmd.Flags().StringVar(&verifyPKHex, "pk", "", "hex-encoded signer public key (required)")
	verifyCmd.MarkFlagRequired("pk")
}

func runVerify(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	var sc message.SignedCommitment
	if err := sc.UnmarshalBinary(data); err != nil {
		return fmt.Errorf("decoding signed commitment: %w", err)
	}

	pk, err := decodeHexPK(verifyPKHex)
	if err != nil {
		return err
	}

	result := verify.SignedCommitment(message.EpochIndex(verifyEpoch), sc, pk)
	if result.OK() {
		fmt.Println("OK: commitment and signature valid")
		return nil
	}
	fmt.Println("INVALID:")
	for _, kind := range result.Kinds {
		fmt.Printf("  - %s\n", kind)
	}
	return fmt.Errorf("verification failed")
}

func decodeHexPK(s string) (party.PK, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex public key: %w", err)
	}
	return party.PK(b), nil
}
