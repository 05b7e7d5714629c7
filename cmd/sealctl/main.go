package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/peerseal/peerseal-go"
	"github.com/peerseal/peerseal-go/internal/crypto"
)

const version = "0.1.0"

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "sealctl",
		Short: "PeerSeal identity and sealed-message CLI",
		Long: `sealctl manages a local PeerSeal identity and exchanges signed and
sealed messages with peers.

The local identity is derived from the SEALCTL_MNEMONIC environment
variable (with the optional SEALCTL_PASSPHRASE), so it never touches
disk. Peers are referenced by their identity card files.`,
	}

	rootCmd.AddCommand(identityCmd())
	rootCmd.AddCommand(signCmd())
	rootCmd.AddCommand(verifyCmd())
	rootCmd.AddCommand(sealCmd())
	rootCmd.AddCommand(openCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("sealctl version %s\n", version)
			fmt.Printf("algorithms: %s\n", crypto.AlgsCiphersuite)
		},
	}
}

// localIdentity derives the local identity from the environment.
func localIdentity() (*peerseal.SecretID, error) {
	mnemonic := os.Getenv("SEALCTL_MNEMONIC")
	if mnemonic == "" {
		return nil, fmt.Errorf("SEALCTL_MNEMONIC is not set (run %s first)",
			color.YellowString("sealctl identity new"))
	}
	id, err := peerseal.NewSecretIDFromMnemonic(mnemonic, os.Getenv("SEALCTL_PASSPHRASE"))
	if err != nil {
		return nil, fmt.Errorf("restoring identity: %w", err)
	}
	return id, nil
}

// readInput reads the single file argument, or stdin when no argument is
// given.
func readInput(args []string) ([]byte, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", args[0], err)
		}
		return data, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return data, nil
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Println(color.GreenString("✓") + " wrote " + color.YellowString(path))
	return nil
}

// loadCard reads and verifies an identity card file.
func loadCard(path string) (peerseal.IdentityCard, error) {
	var card peerseal.IdentityCard
	data, err := os.ReadFile(path)
	if err != nil {
		return card, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &card); err != nil {
		return card, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := card.Verify(); err != nil {
		return card, fmt.Errorf("card %s: %w", path, err)
	}
	return card, nil
}
