package server

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config holds the service's runtime configuration, read from the
// environment with an optional .env file for development.
type Config struct {
	Port         string `mapstructure:"PORT"`
	MongoURL     string `mapstructure:"MONGO_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`
	LogLevel     string `mapstructure:"LOG_LEVEL"`
	LogFormat    string `mapstructure:"LOG_FORMAT"`
}

// LoadConfig reads the configuration from the environment, applying
// defaults suitable for local development.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "9000")
	v.SetDefault("MONGO_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "cvriskservice")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")

	v.BindEnv("PORT")
	v.BindEnv("MONGO_URL")
	v.BindEnv("DATABASE_NAME")
	v.BindEnv("LOG_LEVEL")
	v.BindEnv("LOG_FORMAT")

	// The .env file is optional.
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	return cfg, nil
}
