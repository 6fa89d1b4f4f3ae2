package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum enabled level (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info"`
	// Format selects the encoder: "console" or "json".
	Format string `mapstructure:"format" default:"console"`
	// Output is the sink for log entries (stderr, stdout or a file path).
	Output string `mapstructure:"output" default:"stderr"`
}
