package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/creasty/defaults"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	AllowedOrigins  []string      `mapstructure:"allowedOrigins" default:"[\"http://localhost:3000\",\"http://localhost:5000\",\"http://127.0.0.1:5000\"]"`
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout" default:"10s"`
}

type DatabaseConfig struct {
	BusyTimeout     time.Duration `mapstructure:"busyTimeout" default:"30s"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns" default:"100"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns" default:"1"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime" default:"1h"`
	SlowThreshold   time.Duration `mapstructure:"slowThreshold" default:"200ms"`
}

type OrderConfig struct {
	RetryMaxTries        uint          `mapstructure:"retryMaxTries" default:"3"`
	RetryInitialInterval time.Duration `mapstructure:"retryInitialInterval" default:"100ms"`
	RetryMaxElapsedTime  time.Duration `mapstructure:"retryMaxElapsedTime" default:"5s"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Order    OrderConfig    `mapstructure:"order"`
}

// LoadConfig reads config.json from path. A missing file leaves the
// defaults in place.
func LoadConfig(path string) (Config, error) {
	var config Config
	if err := defaults.Set(&config); err != nil {
		return Config{}, fmt.Errorf("set config defaults: %w", err)
	}

	vp := viper.New()
	vp.SetConfigName("config")
	vp.SetConfigType("json")
	vp.AddConfigPath(path)

	if err := vp.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return config, nil
		}
		return Config{}, err
	}

	if err := vp.Unmarshal(&config); err != nil {
		return Config{}, err
	}

	return config, nil
}
