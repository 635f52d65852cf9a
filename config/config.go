package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the settings of the datasets server.
// A zero MetricsPort disables the metrics listener.
type Config struct {
	Port        int       `mapstructure:"port"`
	MetricsPort int       `mapstructure:"metrics_port"`
	DBDir       string    `mapstructure:"db_dir"`
	BaseDir     string    `mapstructure:"base_dir"`
	LogOutputs  []string  `mapstructure:"log_outputs"`
	TLS         TLSConfig `mapstructure:"tls"`
}

type TLSConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	CertFile string `mapstructure:"cert_file"`
	KeyFile  string `mapstructure:"key_file"`
}

// Load reads configuration with priority order:
// 1. Environment variables (DATASETS_ prefix)
// 2. Configuration file, path or ./datasets.yaml when path is empty
// 3. Default values
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("datasets")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("DATASETS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 10000)
	v.SetDefault("metrics_port", 10001)
	v.SetDefault("db_dir", "datasets.db")
	v.SetDefault("base_dir", "")
	v.SetDefault("log_outputs", []string{"stdout"})
	v.SetDefault("tls.enabled", false)
	v.SetDefault("tls.cert_file", "")
	v.SetDefault("tls.key_file", "")
}

func validate(c *Config) error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.MetricsPort < 0 || c.MetricsPort > 65535 {
		return fmt.Errorf("invalid metrics port %d", c.MetricsPort)
	}
	if c.MetricsPort == c.Port {
		return fmt.Errorf("metrics port %d collides with port", c.MetricsPort)
	}
	if c.DBDir == "" {
		return fmt.Errorf("db_dir is required")
	}
	if c.TLS.Enabled && (c.TLS.CertFile == "" || c.TLS.KeyFile == "") {
		return fmt.Errorf("tls requires cert_file and key_file")
	}

	return nil
}
