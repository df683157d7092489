package envconfig

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type redisEnv struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     int    `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type redis struct {
	raw redisEnv
}

func NewRedisConfig() (*redis, error) {
	var raw redisEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &redis{raw: raw}, nil
}

func (cfg *redis) Address() string {
	return fmt.Sprintf("%s:%d", cfg.raw.Host, cfg.raw.Port)
}

func (cfg *redis) Password() string { return cfg.raw.Password }
func (cfg *redis) DB() int          { return cfg.raw.DB }
