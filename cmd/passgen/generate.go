package main

import (
	"fmt"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/spf13/cobra"
)

func generateCmd(src crypto.RandomSource) *cobra.Command {
	var (
		length     int
		classNames []string
		keyword    string
		count      int
		noStrength bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more passwords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			classes := make([]crypto.CharacterClass, 0, len(classNames))
			for _, name := range classNames {
				c, err := crypto.ParseClass(name)
				if err != nil {
					return err
				}
				classes = append(classes, c)
			}

			opts := crypto.GeneratorOptions{Length: length, Keyword: keyword}.WithClasses(classes...)
			gen := crypto.NewGenerator(src)
			out := cmd.OutOrStdout()

			for i := 0; i < max(count, 1); i++ {
				password, err := gen.Generate(opts)
				if err != nil {
					return err
				}
				if noStrength {
					fmt.Fprintln(out, password)
					continue
				}
				report := crypto.Score(password, opts)
				fmt.Fprintf(out, "%s\t%d/%d\t%s\n", password, report.Score, crypto.MaxScore, report.Label)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", 16, "Password length")
	cmd.Flags().StringSliceVar(&classNames, "classes", []string{"lower", "upper", "digit", "symbol"},
		"Character classes to use (lower, upper, digit, symbol)")
	cmd.Flags().StringVarP(&keyword, "keyword", "k", "", "Memorable keyword to embed (alphanumerics only, at most length/3 kept)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of passwords to generate")
	cmd.Flags().BoolVar(&noStrength, "no-strength", false, "Print passwords only")

	return cmd
}
