package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"info"`
	Session  string  `yaml:"session" env:"TTT_SESSION" env-default:""`
	Console  Console `yaml:"console"`
	Redis    Redis   `yaml:"redis"`
}

type Console struct {
	Color bool `yaml:"color" env:"TTT_CONSOLE_COLOR" env-default:"true"`
}

type Redis struct {
	Enabled       bool   `yaml:"enabled" env:"TTT_REDIS_ENABLED" env-default:"false"`
	Host          string `yaml:"host" env:"TTT_REDIS_HOST" env-default:"localhost"`
	Port          string `yaml:"port" env:"TTT_REDIS_PORT" env-default:"6379"`
	ChannelPrefix string `yaml:"channel-prefix" env:"TTT_REDIS_CHANNEL_PREFIX" env-default:"tictactoe"`
}

// MustLoad - load all configurations in config.yml file. Without the file
// the configuration comes from the environment and the defaults.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
