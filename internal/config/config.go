package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"github.com/zephyrtronium/floatcalc"
)

// EnvPrefix is the prefix of environment variables that override settings,
// e.g. FLOATCALC_MAX_DEPTH or FLOATCALC_LOGGER_LEVEL.
const EnvPrefix = "FLOATCALC"

// Config represents the configuration of the floatcalc command.
type Config struct {
	// MaxDepth is the nesting limit for parentheses and calls.
	MaxDepth int `key:"max_depth" validate:"min=1"`
	// Format is the fmt verb used to print results.
	Format string `key:"format" validate:"required"`
	// Vars are variable bindings available to every expression.
	Vars   floatcalc.Vars
	Logger *Logger `key:"logger" validate:"required"`
	// File is the config file that was read, or empty if none was found.
	File string
}

var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their config keys.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("key")
	})
	return v
}()

// check validates cfg against its struct tags.
func check(cfg *Config) error {
	err := validate.Struct(cfg)
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		key := strings.TrimPrefix(e.Namespace(), "Config.")
		switch e.Tag() {
		case "required", "required_if":
			msgs = append(msgs, fmt.Sprintf("%s must be set", key))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s, not %v", key, e.Param(), e.Value()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of %s, not %q", key, e.Param(), e.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid: %s", key, e.Tag()))
		}
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// New creates a viper instance with floatcalc's defaults and environment
// bindings. Callers may bind flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("max_depth", floatcalc.DefaultMaxDepth)
	v.SetDefault("format", "%g")
	v.SetDefault("vars", map[string]any{})
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "text")
	v.SetDefault("logger.output", "stderr")
	v.SetDefault("logger.output_file", "")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the configuration. If configPath is empty, floatcalc.yaml is
// searched for in the working directory, $HOME/.floatcalc, and
// /etc/floatcalc, and it is not an error for none to exist.
func Load(v *viper.Viper, configPath string) (*Config, error) {
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("floatcalc")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.floatcalc")
		v.AddConfigPath("/etc/floatcalc")
	}

	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &nf) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		MaxDepth: v.GetInt("max_depth"),
		Format:   v.GetString("format"),
		Logger:   getLoggerConfig(v),
		File:     v.ConfigFileUsed(),
	}
	if err := check(cfg); err != nil {
		return nil, err
	}
	vars, err := getVars(v)
	if err != nil {
		return nil, err
	}
	cfg.Vars = vars
	return cfg, nil
}

// getVars reads the vars table. Viper folds keys to lowercase, so only
// lowercase variables can be bound from configuration.
func getVars(v *viper.Viper) (floatcalc.Vars, error) {
	raw := v.GetStringMap("vars")
	vars := make(floatcalc.Vars, len(raw))
	for name, val := range raw {
		if err := CheckVarName(name); err != nil {
			return nil, err
		}
		x, err := cast.ToFloat64E(val)
		if err != nil {
			return nil, fmt.Errorf("variable %s: %w", name, err)
		}
		vars[name] = x
	}
	return vars, nil
}

// CheckVarName returns an error if name cannot be bound as a variable.
func CheckVarName(name string) error {
	if len(name) != 1 || !('a' <= name[0] && name[0] <= 'z' || 'A' <= name[0] && name[0] <= 'Z') {
		return fmt.Errorf("variable names must be a single letter, not %q", name)
	}
	if _, ok := floatcalc.Constants()[strings.ToLower(name)]; ok {
		return fmt.Errorf("variable %s would be shadowed by a constant", name)
	}
	return nil
}

// Watch watches the config file and calls fn with the reloaded
// configuration each time it is written. It does nothing if no config file
// was read.
func Watch(v *viper.Viper, fn func(*Config, error)) {
	if v.ConfigFileUsed() == "" {
		return
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		fn(fromViper(v))
	})
	v.WatchConfig()
}
