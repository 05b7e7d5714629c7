package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/peerseal/peerseal-go"
)

func signCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign [file]",
		Short: "Sign a file (or stdin) with the local identity",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := localIdentity()
			if err != nil {
				return err
			}
			message, err := readInput(args)
			if err != nil {
				return err
			}

			fmt.Println(id.SignDetached(message).String())
			return nil
		},
	}
}

func verifyCmd() *cobra.Command {
	var from string
	var signature string
	cmd := &cobra.Command{
		Use:   "verify [file]",
		Short: "Verify a detached signature against a peer's identity card",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			card, err := loadCard(from)
			if err != nil {
				return err
			}

			sig, err := peerseal.ParseSignature(signature)
			if err != nil {
				return fmt.Errorf("parsing signature: %w", err)
			}

			message, err := readInput(args)
			if err != nil {
				return err
			}

			if !card.PublicID.VerifyDetached(sig, message) {
				return fmt.Errorf("%s signature verification failed", color.RedString("✗"))
			}
			who := card.Name
			if who == "" {
				who = card.PublicID.Fingerprint()
			}
			fmt.Println(color.GreenString("✓") + " valid signature from " + color.YellowString(who))
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Signer's identity card file (required)")
	cmd.Flags().StringVar(&signature, "signature", "", "Detached signature, base64url (required)")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("signature")
	return cmd
}
