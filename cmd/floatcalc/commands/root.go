package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/zephyrtronium/floatcalc"
	"github.com/zephyrtronium/floatcalc/internal/config"
	"github.com/zephyrtronium/floatcalc/internal/logging"
)

// app is the state shared by all subcommands.
type app struct {
	v          *viper.Viper
	configFile string

	cfg     *config.Config
	log     *logrus.Logger
	cleanup func()
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	rootCmd := &cobra.Command{
		Use:   "floatcalc",
		Short: "Evaluate arithmetic expressions in double precision",
		Long: `floatcalc evaluates arithmetic expressions with + - * / ^, parentheses,
the constants pi and e, the functions sin, cos, tan, sqrt, log, and pow,
and single-letter variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configFile, "config", "c", "", "config file path (default floatcalc.yaml in ., $HOME/.floatcalc, /etc/floatcalc)")
	flags.Int("max-depth", floatcalc.DefaultMaxDepth, "maximum nesting depth of parentheses and calls")
	flags.String("fmt", "%g", "result formatting verb")
	flags.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text or json)")
	_ = a.v.BindPFlag("max_depth", flags.Lookup("max-depth"))
	_ = a.v.BindPFlag("format", flags.Lookup("fmt"))
	_ = a.v.BindPFlag("logger.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("logger.format", flags.Lookup("log-format"))

	rootCmd.AddCommand(
		newEvalCommand(a),
		newCheckCommand(a),
		newTokensCommand(a),
		newFuncsCommand(a),
		newReplCommand(a),
	)

	return rootCmd
}

func (a *app) init() error {
	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	l, cleanup, err := logging.New(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	a.cfg, a.log, a.cleanup = cfg, l, cleanup
	if cfg.File != "" {
		a.log.WithField("file", cfg.File).Debug("loaded config")
	}
	return nil
}

func (a *app) close() {
	if a.cleanup != nil {
		a.cleanup()
		a.cleanup = nil
	}
}

func (a *app) opts() []floatcalc.ParseOption {
	return []floatcalc.ParseOption{floatcalc.MaxDepth(a.cfg.MaxDepth)}
}

// vars combines the configured variables with name=value definitions.
func (a *app) vars(given []string) (floatcalc.Vars, error) {
	return bindVars(a.cfg.Vars, given, a.opts())
}

// bindVars copies base and adds name=value definitions to it. Each value is
// an expression that may use the variables before it.
func bindVars(base floatcalc.Vars, given []string, opts []floatcalc.ParseOption) (floatcalc.Vars, error) {
	vars := make(floatcalc.Vars, len(base)+len(given))
	for k, v := range base {
		vars[k] = v
	}
	for _, s := range given {
		name, val, ok := strings.Cut(s, "=")
		if !ok {
			return nil, fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		name = strings.TrimSpace(name)
		if err := config.CheckVarName(name); err != nil {
			return nil, err
		}
		r, err := floatcalc.Evaluate(val, vars, opts...)
		if err != nil {
			return nil, fmt.Errorf("setting %s: %w", name, err)
		}
		vars[name] = r
	}
	return vars, nil
}

// report logs a failed expression.
func (a *app) report(src string, err error) {
	kind := floatcalc.KindOf(err)
	entry := a.log.WithFields(logrus.Fields{"expr": src, "kind": kind.String()})
	var ie floatcalc.InputError
	if errors.As(err, &ie) {
		entry = entry.WithField("pos", ie.Pos())
	}
	switch kind {
	case floatcalc.KindDomain, floatcalc.KindUnknownIdentifier:
		entry.Debug("evaluation failed")
	default:
		entry.Warn("invalid expression")
	}
}

// printError writes err with a caret under the column it refers to.
func printError(w io.Writer, src string, err error) {
	var ie floatcalc.InputError
	if !errors.As(err, &ie) || ie.Pos() < 1 || ie.Pos() > len([]rune(src))+1 {
		fmt.Fprintln(w, err)
		return
	}
	fmt.Fprintf(w, "%s\n%s^ %v\n", src, strings.Repeat(" ", ie.Pos()-1), err)
}

// sources returns args, or the non-blank lines of r if there are none.
func sources(args []string, r io.Reader) ([]string, error) {
	if len(args) != 0 {
		return args, nil
	}
	var srcs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			srcs = append(srcs, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return srcs, nil
}
