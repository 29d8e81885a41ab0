package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zephyrtronium/floatcalc"
)

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [expr...]",
		Short: "Check expressions for structural errors without evaluating them",
		RunE: func(cmd *cobra.Command, args []string) error {
			srcs, err := sources(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			bad := 0
			for _, src := range srcs {
				if err := floatcalc.Validate(src, a.opts()...); err != nil {
					a.report(src, err)
					printError(out, src, err)
					bad++
					continue
				}
				fmt.Fprintln(out, "ok")
			}
			if bad > 0 {
				return fmt.Errorf("%d of %d expressions are invalid", bad, len(srcs))
			}
			return nil
		},
	}
}
