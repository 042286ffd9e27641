package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Storage  Storage `yaml:"storage"`
	Redis    Redis   `yaml:"redis"`
	Bot      Bot     `yaml:"bot"`
}

type Storage struct {
	// Enabled keeps the active game in Redis so a restarted process can
	// resume it; when false the game lives in memory only.
	Enabled bool `yaml:"enabled" env:"STORAGE_ENABLED" env-default:"false"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Bot struct {
	Rollouts      int           `yaml:"rollouts" env-default:"2000"`
	SmartMoveProb float64       `yaml:"smart-move-probability" env-default:"0.7"`
	Workers       int           `yaml:"workers" env-default:"4"`
	Seed          int64         `yaml:"seed" env-default:"0"`
	TurnDelay     time.Duration `yaml:"turn-delay" env-default:"600ms"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
