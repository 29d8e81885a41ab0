package commands

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/zephyrtronium/floatcalc"
)

func newFuncsCommand(a *app) *cobra.Command {
	var prec uint

	cmd := &cobra.Command{
		Use:   "funcs",
		Short: "List the available functions and constants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if prec < 2 {
				return fmt.Errorf("precision must be at least 2, not %d", prec)
			}
			out := cmd.OutOrStdout()

			fs := floatcalc.Funcs()
			names := make([]string, 0, len(fs))
			for k := range fs {
				names = append(names, k)
			}
			sort.Strings(names)
			fmt.Fprintln(out, "functions:")
			for _, k := range names {
				fmt.Fprintf(out, "  %s/%d\n", k, fs[k])
			}

			cs := floatcalc.Constants()
			names = names[:0]
			for k := range cs {
				names = append(names, k)
			}
			sort.Strings(names)
			fmt.Fprintln(out, "constants:")
			// Enough digits to show every bit of the exact value.
			digits := int(float64(prec)*0.30103) + 1
			for _, k := range names {
				exact := floatcalc.Exact(k, prec)
				fmt.Fprintf(out, "  %-3s %s\n      %s\n", k, strconv.FormatFloat(cs[k], 'g', -1, 64), exact.Text('g', digits))
			}
			return nil
		},
	}

	cmd.Flags().UintVarP(&prec, "prec", "p", 128, "precision in bits of the exact constant values")
	return cmd
}
