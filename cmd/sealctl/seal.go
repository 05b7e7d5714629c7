package main

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func sealCmd() *cobra.Command {
	var to string
	var out string
	cmd := &cobra.Command{
		Use:   "seal [file]",
		Short: "Seal a file (or stdin) to a peer so only they can open it",
		Long: `Seals a message to the identity in the peer's card file. The output is
base64url text, safe to paste anywhere. Sealing is anonymous: the
ciphertext does not identify the sender.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			card, err := loadCard(to)
			if err != nil {
				return err
			}
			plaintext, err := readInput(args)
			if err != nil {
				return err
			}

			sealed := card.PublicID.EncryptAnonymousBytes(plaintext)
			encoded := base64.RawURLEncoding.EncodeToString(sealed)
			return writeOutput(out, []byte(encoded+"\n"))
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "Recipient's identity card file (required)")
	cmd.Flags().StringVar(&out, "out", "", "Write the sealed message to a file instead of stdout")
	cmd.MarkFlagRequired("to")
	return cmd
}

func openCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "open [file]",
		Short: "Open a sealed message with the local identity",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := localIdentity()
			if err != nil {
				return err
			}
			input, err := readInput(args)
			if err != nil {
				return err
			}

			sealed, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(string(input)))
			if err != nil {
				return fmt.Errorf("decoding sealed message: %w", err)
			}
			plaintext, err := id.DecryptAnonymousBytes(sealed)
			if err != nil {
				return err
			}
			return writeOutput(out, plaintext)
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "Write the plaintext to a file instead of stdout")
	return cmd
}
