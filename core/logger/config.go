package logger

// Config holds logger settings.
type Config struct {
	// Level is the minimum log level: debug, info, warn or error.
	Level string `mapstructure:"level" default:"info"`
	// Format is the encoding: json or console.
	Format string `mapstructure:"format" default:"console"`
}
