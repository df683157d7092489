// Package redis starts a disposable Redis container for integration tests.
package redis

import (
	"context"
	"net"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sm107-uiuc/sparemate-hub/platform/logger"
)

const (
	port           = "6379/tcp"
	startupTimeout = 30 * time.Second
)

type Option func(*testcontainers.ContainerRequest)

func WithImageName(image string) Option {
	return func(r *testcontainers.ContainerRequest) { r.Image = image }
}

func WithNetworkName(network string) Option {
	return func(r *testcontainers.ContainerRequest) {
		r.Networks = []string{network}
		r.NetworkAliases = map[string][]string{network: {"redis"}}
	}
}

type Container struct {
	container testcontainers.Container
	client    *goredis.Client
	addr      string
}

func NewContainer(ctx context.Context, opts ...Option) (*Container, error) {
	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{port},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(startupTimeout),
		HostConfigModifier: func(hc *container.HostConfig) {
			hc.AutoRemove = true
		},
	}
	for _, opt := range opts {
		opt(&req)
	}

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "start redis container")
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, errors.Wrap(err, "redis container host")
	}
	mapped, err := c.MappedPort(ctx, port)
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, errors.Wrap(err, "redis container port")
	}

	addr := net.JoinHostPort(host, mapped.Port())
	client := goredis.NewClient(&goredis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = c.Terminate(ctx)
		return nil, errors.Wrap(err, "ping redis")
	}

	logger.Info(ctx, "redis container started", logger.String("addr", addr))

	return &Container{container: c, client: client, addr: addr}, nil
}

func (c *Container) Client() *goredis.Client { return c.client }

func (c *Container) Addr() string { return c.addr }

func (c *Container) Terminate(ctx context.Context) error {
	_ = c.client.Close()

	if err := c.container.Terminate(ctx); err != nil {
		return errors.Wrap(err, "terminate redis container")
	}

	return nil
}
