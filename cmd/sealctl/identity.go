package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/peerseal/peerseal-go"
)

func identityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "identity",
		Short: "Manage the local identity",
	}
	cmd.AddCommand(identityNewCmd())
	cmd.AddCommand(identityShowCmd())
	cmd.AddCommand(identityCardCmd())
	return cmd
}

func identityNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Generate a new identity and print its recovery mnemonic",
		Long: `Generates a fresh recovery mnemonic and prints it together with the
identity fingerprint. The mnemonic is the identity: anyone holding it
(plus SEALCTL_PASSPHRASE, if set) can restore the full keypair.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			mnemonic, err := peerseal.GenerateMnemonic()
			if err != nil {
				return err
			}
			id, err := peerseal.NewSecretIDFromMnemonic(mnemonic, os.Getenv("SEALCTL_PASSPHRASE"))
			if err != nil {
				return err
			}

			fmt.Println(color.GreenString("✓") + " Generated new identity")
			fmt.Printf("  fingerprint: %s\n", id.PublicID().Fingerprint())
			fmt.Printf("  mnemonic:    %s\n", mnemonic)
			fmt.Println()
			fmt.Println(color.CyanString("→") + " Store the mnemonic somewhere safe, then export it:")
			fmt.Println("    " + color.YellowString(`export SEALCTL_MNEMONIC="`+mnemonic+`"`))
			return nil
		},
	}
}

func identityShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [card.json]",
		Short: "Show the local identity, or verify and inspect a card file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				card, err := loadCard(args[0])
				if err != nil {
					return err
				}
				fmt.Println(color.GreenString("✓") + " card verified")
				if card.Name != "" {
					fmt.Printf("  name:        %s\n", card.Name)
				}
				fmt.Printf("  fingerprint: %s\n", card.PublicID.Fingerprint())
				fmt.Printf("  issued:      %s\n", card.IssuedAt.Format(time.RFC3339))
				return nil
			}

			id, err := localIdentity()
			if err != nil {
				return err
			}
			fmt.Println(id.PublicID().Fingerprint())
			return nil
		},
	}
}

func identityCardCmd() *cobra.Command {
	var name string
	var out string
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Issue a self-signed identity card for sharing with peers",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := localIdentity()
			if err != nil {
				return err
			}

			card := id.IssueCard(name)
			data, err := json.MarshalIndent(card, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding card: %w", err)
			}
			return writeOutput(out, append(data, '\n'))
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Display name to embed in the card")
	cmd.Flags().StringVar(&out, "out", "", "Write the card to a file instead of stdout")
	return cmd
}
