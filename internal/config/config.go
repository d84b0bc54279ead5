package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string `yaml:"http-port" env:"PORT" env-default:"4000"`
	Arena    Arena  `yaml:"arena"`
	Battle   Battle `yaml:"battle"`
	Redis    Redis  `yaml:"redis"`
}

type Arena struct {
	Endpoint       string        `yaml:"endpoint" env:"ARENA_ENDPOINT" env-default:"https://cis2021-arena.herokuapp.com"`
	RequestTimeout time.Duration `yaml:"request-timeout" env:"ARENA_REQUEST_TIMEOUT" env-default:"5s"`
}

type Battle struct {
	InactivityLimit time.Duration `yaml:"inactivity-limit" env:"BATTLE_INACTIVITY_LIMIT" env-default:"18s"`
	PollInterval    time.Duration `yaml:"poll-interval" env:"BATTLE_POLL_INTERVAL" env-default:"10ms"`
	MoveDelay       time.Duration `yaml:"move-delay" env:"BATTLE_MOVE_DELAY" env-default:"100ms"`
}

type Redis struct {
	Enabled    bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host       string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port       string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	ArchiveTTL time.Duration `yaml:"archive-ttl" env:"REDIS_ARCHIVE_TTL" env-default:"168h"`
}

// MustLoad - load configuration from the yml file at path, or from the environment alone when there is no file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if err = cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if that.Arena.Endpoint == "" {
		return fmt.Errorf("%w: arena endpoint is empty", ErrInvalidConfig)
	}

	if that.Battle.PollInterval <= 0 {
		return fmt.Errorf("%w: poll interval must be positive", ErrInvalidConfig)
	}

	if that.Battle.MoveDelay >= that.Battle.InactivityLimit {
		return fmt.Errorf("%w: move delay %s must be below the inactivity limit %s",
			ErrInvalidConfig, that.Battle.MoveDelay, that.Battle.InactivityLimit)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
