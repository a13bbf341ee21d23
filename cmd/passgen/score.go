package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/spf13/cobra"
)

func scoreCmd() *cobra.Command {
	var keyword string

	cmd := &cobra.Command{
		Use:   "score <password|->",
		Short: "Score the strength of a password",
		Long:  "Score the strength of a password. Pass - to read it from stdin and keep it out of shell history.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password := args[0]
			if password == "-" {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("reading password from stdin: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}

			r := crypto.Score(password, crypto.GeneratorOptions{Keyword: keyword})
			a := r.Analysis

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "score:      %d/%d\n", r.Score, crypto.MaxScore)
			fmt.Fprintf(out, "label:      %s\n", r.Label)
			fmt.Fprintf(out, "length:     %d\n", a.Length)
			fmt.Fprintf(out, "lowercase:  %t\n", a.HasLower)
			fmt.Fprintf(out, "uppercase:  %t\n", a.HasUpper)
			fmt.Fprintf(out, "digits:     %t\n", a.HasNumber)
			fmt.Fprintf(out, "symbols:    %t\n", a.HasSymbol)
			fmt.Fprintf(out, "repeats:    %t\n", a.HasRepeatRun)
			fmt.Fprintf(out, "sequences:  %t\n", a.HasSequentialRun)
			if keyword != "" {
				fmt.Fprintf(out, "keyword:    %t (%d chars)\n", a.HasKeyword, a.KeywordLength)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&keyword, "keyword", "k", "", "Keyword to look for in the password")

	return cmd
}
