package config

import "github.com/spf13/viper"

// Logger logger config struct
type Logger struct {
	// Level is a logrus level name.
	Level string `key:"level" validate:"oneof=trace debug info warn warning error fatal panic"`
	// Format is "text" or "json".
	Format string `key:"format" validate:"oneof=text json"`
	// Output is "stdout", "stderr", "file", or "discard".
	Output string `key:"output" validate:"oneof=stdout stderr file discard"`
	// OutputFile is the log path when Output is "file".
	OutputFile string `key:"output_file" validate:"required_if=Output file"`
}

func getLoggerConfig(v *viper.Viper) *Logger {
	return &Logger{
		Level:      v.GetString("logger.level"),
		Format:     v.GetString("logger.format"),
		Output:     v.GetString("logger.output"),
		OutputFile: v.GetString("logger.output_file"),
	}
}
