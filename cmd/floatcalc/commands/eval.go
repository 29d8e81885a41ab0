package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zephyrtronium/floatcalc"
)

func newEvalCommand(a *app) *cobra.Command {
	var (
		given []string
		echo  bool
	)

	cmd := &cobra.Command{
		Use:   "eval [expr...]",
		Short: "Evaluate expressions",
		Long: `Evaluate each argument as an expression, or each line of standard input
if there are no arguments. Exits with status 1 if any expression fails.`,
		Example: `  floatcalc eval '2^3^2'
  floatcalc eval --given r=2 'pi * r^2'
  echo 'sqrt(x)' | floatcalc eval --given x=16`,
		RunE: func(cmd *cobra.Command, args []string) error {
			vars, err := a.vars(given)
			if err != nil {
				return err
			}
			srcs, err := sources(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			verb := a.cfg.Format + "\n"
			failed := 0
			for _, src := range srcs {
				e, err := floatcalc.Parse(src, a.opts()...)
				if err != nil {
					a.report(src, err)
					printError(out, src, err)
					failed++
					continue
				}
				if echo {
					fmt.Fprintf(out, "%v : ", e)
				}
				r, err := e.Eval(vars)
				if err != nil {
					a.report(src, err)
					fmt.Fprintln(out, err)
					failed++
					continue
				}
				fmt.Fprintf(out, verb, r)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d expressions failed", failed, len(srcs))
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&given, "given", "g", nil, "name=value variable definition (any number of times)")
	cmd.Flags().BoolVar(&echo, "echo", false, "print each expression in fully parenthesized form")
	return cmd
}
