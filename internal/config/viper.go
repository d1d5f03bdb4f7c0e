package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Ledger struct {
		File          string `mapstructure:"file" yaml:"file"`
		BackupEnabled bool   `mapstructure:"backup_enabled" yaml:"backup_enabled"`
	} `mapstructure:"ledger" yaml:"ledger"`

	Display struct {
		DecimalPlaces int `mapstructure:"decimal_places" yaml:"decimal_places"`
	} `mapstructure:"display" yaml:"display"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file, then SPLIT_* environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.spendsplit")
	v.AddConfigPath(".spendsplit")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SPLIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but continue with defaults and env vars.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("ledger.file", "ledger.yaml")
	v.SetDefault("ledger.backup_enabled", false)

	v.SetDefault("display.decimal_places", 2)

	v.SetDefault("csv.delimiter", ",")
}

// validateConfig rejects values the rest of the application cannot honor.
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(strings.ToLower(config.Log.Level)); err != nil {
		return fmt.Errorf("invalid log level %q", config.Log.Level)
	}
	if config.Display.DecimalPlaces < 0 {
		return fmt.Errorf("display.decimal_places must be >= 0, got %d", config.Display.DecimalPlaces)
	}
	if len([]rune(config.CSV.Delimiter)) != 1 {
		return fmt.Errorf("csv.delimiter must be a single character, got %q", config.CSV.Delimiter)
	}
	if strings.TrimSpace(config.Ledger.File) == "" {
		return fmt.Errorf("ledger.file cannot be empty")
	}
	return nil
}

// ConfigureLoggingFromConfig applies the configuration's log settings to the
// global logger and returns it.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	Logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
	return Logger
}
