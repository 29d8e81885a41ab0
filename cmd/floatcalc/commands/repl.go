package commands

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"github.com/zephyrtronium/floatcalc"
	"github.com/zephyrtronium/floatcalc/internal/config"
)

func newReplCommand(a *app) *cobra.Command {
	var (
		given []string
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Evaluate expressions interactively",
		Long: `Read expressions line by line and print their values.

Commands:
  :vars   print the variable bindings
  :q      quit

With --watch, variable bindings are reloaded whenever the config file changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vars, err := a.vars(given)
			if err != nil {
				return err
			}
			var mu sync.Mutex
			opts := a.opts()
			if watch {
				if a.cfg.File == "" {
					return fmt.Errorf("--watch requires a config file")
				}
				config.Watch(a.v, func(cfg *config.Config, err error) {
					if err != nil {
						a.log.WithError(err).Warn("failed to reload config")
						return
					}
					// Definitions from flags take precedence over the file.
					nv, err := bindVars(cfg.Vars, given, opts)
					if err != nil {
						a.log.WithError(err).Warn("failed to rebind variables")
						return
					}
					mu.Lock()
					vars = nv
					mu.Unlock()
					a.log.WithField("vars", len(nv)).Info("reloaded variables")
				})
			}

			out := cmd.OutOrStdout()
			sc := bufio.NewScanner(cmd.InOrStdin())
			for fmt.Fprint(out, "> "); sc.Scan(); fmt.Fprint(out, "> ") {
				mu.Lock()
				vs := vars
				mu.Unlock()
				switch line := strings.TrimSpace(sc.Text()); line {
				case "":
				case ":q", ":quit":
					return nil
				case ":vars":
					printVars(out, vs)
				default:
					r, err := floatcalc.Evaluate(line, vs, opts...)
					if err != nil {
						a.report(line, err)
						printError(out, line, err)
						continue
					}
					fmt.Fprintf(out, a.cfg.Format+"\n", r)
				}
			}
			fmt.Fprintln(out)
			return sc.Err()
		},
	}

	cmd.Flags().StringArrayVarP(&given, "given", "g", nil, "name=value variable definition (any number of times)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload variables when the config file changes")
	return cmd
}

func printVars(w io.Writer, vars floatcalc.Vars) {
	names := make([]string, 0, len(vars))
	for k := range vars {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		fmt.Fprintf(w, "%s = %g\n", k, vars[k])
	}
}
