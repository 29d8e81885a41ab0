// Package logging configures the logrus logger used by the floatcalc command.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/zephyrtronium/floatcalc/internal/config"
)

// New creates a logger from the given configuration. The returned cleanup
// function closes the log file, if any, and must be called once the logger
// is no longer needed.
func New(c *config.Logger) (*logrus.Logger, func(), error) {
	l := logrus.New()
	lvl, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}
	l.SetLevel(lvl)

	switch c.Format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	var f *os.File
	switch c.Output {
	case "stdout":
		l.SetOutput(os.Stdout)
	case "stderr", "":
		l.SetOutput(os.Stderr)
	case "discard":
		l.SetOutput(io.Discard)
	case "file":
		if c.OutputFile == "" {
			return nil, nil, fmt.Errorf("log output is file but no output_file is set")
		}
		if err := os.MkdirAll(filepath.Dir(c.OutputFile), 0777); err != nil {
			return nil, nil, err
		}
		f, err = os.OpenFile(c.OutputFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0666)
		if err != nil {
			return nil, nil, err
		}
		l.SetOutput(f)
	default:
		return nil, nil, fmt.Errorf("unknown log output %q", c.Output)
	}

	return l, func() {
		if f != nil {
			_ = f.Close()
		}
	}, nil
}
