// Command passgen generates and scores passwords from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/spf13/cobra"
)

const (
	Version = "0.1.0"
	appName = "passgen"
)

func main() {
	if err := rootCmd(crypto.SecureSource()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd(src crypto.RandomSource) *cobra.Command {
	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Generate and score passwords",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(generateCmd(src), scoreCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})

	return cmd
}
