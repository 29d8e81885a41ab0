package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zephyrtronium/floatcalc"
)

func newTokensCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens expr",
		Short: "Print the tokens of an expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toks, err := floatcalc.Tokenize(args[0])
			if err != nil {
				a.report(args[0], err)
				printError(cmd.OutOrStdout(), args[0], err)
				return fmt.Errorf("tokenizing failed")
			}
			for _, tok := range toks {
				fmt.Fprintln(cmd.OutOrStdout(), tok)
			}
			return nil
		},
	}
}
