package mongo

import (
	"context"

	"github.com/docker/docker/api/types/container"

	"github.com/sm107-uiuc/sparemate-hub/platform/logger"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...logger.Field)
	Error(ctx context.Context, msg string, fields ...logger.Field)
}

type Config struct {
	NetworkName   string
	ContainerName string
	ImageName     string
	Database      string
	Username      string
	Password      string
	AuthDB        string
	Logger        Logger

	Host string
	Port string
}

type Option func(*Config)

func WithNetworkName(network string) Option {
	return func(c *Config) { c.NetworkName = network }
}

func WithContainerName(name string) Option {
	return func(c *Config) { c.ContainerName = name }
}

func WithImageName(image string) Option {
	return func(c *Config) { c.ImageName = image }
}

func WithDatabase(database string) Option {
	return func(c *Config) { c.Database = database }
}

func WithAuth(username, password string) Option {
	return func(c *Config) {
		c.Username = username
		c.Password = password
	}
}

func WithLogger(l Logger) Option {
	return func(c *Config) { c.Logger = l }
}

func buildConfig(opts ...Option) *Config {
	cfg := &Config{
		ImageName: "mongo:8.0",
		Database:  "storefront",
		Username:  "root",
		Password:  "root",
		AuthDB:    "admin",
		Logger:    &logger.NoopLogger{},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

func autoRemove(hc *container.HostConfig) {
	hc.AutoRemove = true
}
