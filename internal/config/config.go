package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Floor  FloorConfig
	Seed   SeedConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

type FloorConfig struct {
	// TableCount is the size of the fixed floor plan. Tables not present in
	// the seed file start free.
	TableCount int
}

type SeedConfig struct {
	// File points to a YAML seed file. Empty means the built-in defaults.
	File string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("SERVER_READ_TIMEOUT", "10s")
	viper.SetDefault("SERVER_WRITE_TIMEOUT", "10s")
	viper.SetDefault("SERVER_IDLE_TIMEOUT", "30s")
	viper.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "10s")
	viper.SetDefault("TABLE_COUNT", 8)
	viper.SetDefault("SEED_FILE", "")
	viper.SetDefault("LOG_LEVEL", "info")

	readTimeout, err := parseDuration("SERVER_READ_TIMEOUT")
	if err != nil {
		return nil, err
	}
	writeTimeout, err := parseDuration("SERVER_WRITE_TIMEOUT")
	if err != nil {
		return nil, err
	}
	idleTimeout, err := parseDuration("SERVER_IDLE_TIMEOUT")
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := parseDuration("SERVER_SHUTDOWN_TIMEOUT")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            viper.GetInt("SERVER_PORT"),
			ReadTimeout:     readTimeout,
			WriteTimeout:    writeTimeout,
			IdleTimeout:     idleTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		Floor: FloorConfig{
			TableCount: viper.GetInt("TABLE_COUNT"),
		},
		Seed: SeedConfig{
			File: viper.GetString("SEED_FILE"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}

func parseDuration(key string) (time.Duration, error) {
	d, err := time.ParseDuration(viper.GetString(key))
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	return d, nil
}
