package cmd

import (
	"flag"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the application defaults, read from UNICORNS_* environment
// variables. Flags override them.
type Config struct {
	Database string `envconfig:"DATABASE" default:"unicorn_companies_structured.json"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"warning"`
	Plain    bool   `envconfig:"PLAIN" default:"false"`
	Width    int    `envconfig:"WIDTH" default:"100"`
}

// EnvPrefix is the prefix of the configuration environment variables.
const EnvPrefix = "UNICORNS"

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var c Config
	err := envconfig.Process(EnvPrefix, &c)
	return c, err
}

// defaultConfig returns the environment configuration, or the built-in
// defaults if the environment is invalid.
func defaultConfig() Config {
	c, err := LoadConfig()
	if err != nil {
		Log.WithError(err).Warn("invalid environment configuration, using defaults")
		return Config{
			Database: "unicorn_companies_structured.json",
			LogLevel: "warning",
			Width:    100,
		}
	}
	return c
}

var config = defaultConfig()

var databasePath = flag.String("database", config.Database, "Path to the dataset file (JSON, or YAML with a .yaml/.yml extension)")
var logLevel = flag.String("log-level", config.LogLevel, "Log level (debug, info, warning, error)")
var plain = flag.Bool("plain", config.Plain, "Print raw markdown instead of rendering it for the terminal")
