// Package mongo starts a disposable MongoDB container for integration tests.
package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/sm107-uiuc/sparemate-hub/platform/logger"
)

const (
	port           = "27017/tcp"
	startupTimeout = time.Minute
)

type Container struct {
	container testcontainers.Container
	client    *mongo.Client
	cfg       *Config
}

func NewContainer(ctx context.Context, opts ...Option) (*Container, error) {
	cfg := buildConfig(opts...)

	req := testcontainers.ContainerRequest{
		Name:  cfg.ContainerName,
		Image: cfg.ImageName,
		Env: map[string]string{
			"MONGO_INITDB_ROOT_USERNAME": cfg.Username,
			"MONGO_INITDB_ROOT_PASSWORD": cfg.Password,
			"MONGO_INITDB_DATABASE":      cfg.Database,
		},
		ExposedPorts:       []string{port},
		WaitingFor:         wait.ForListeningPort(port).WithStartupTimeout(startupTimeout),
		HostConfigModifier: autoRemove,
	}
	if cfg.NetworkName != "" {
		req.Networks = []string{cfg.NetworkName}
		req.NetworkAliases = map[string][]string{cfg.NetworkName: {"mongo"}}
	}

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "start mongo container")
	}

	started := false
	defer func() {
		if !started {
			if terr := c.Terminate(ctx); terr != nil {
				cfg.Logger.Error(ctx, "failed to terminate mongo container", logger.ErrorF(terr))
			}
		}
	}()

	if cfg.Host, err = c.Host(ctx); err != nil {
		return nil, errors.Wrap(err, "mongo container host")
	}
	mapped, err := c.MappedPort(ctx, port)
	if err != nil {
		return nil, errors.Wrap(err, "mongo container port")
	}
	cfg.Port = mapped.Port()

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URI()))
	if err != nil {
		return nil, errors.Wrap(err, "connect to mongo")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(err, "ping mongo")
	}

	cfg.Logger.Info(ctx, "mongo container started", logger.String("host", cfg.Host), logger.String("port", cfg.Port))
	started = true

	return &Container{container: c, client: client, cfg: cfg}, nil
}

// URI is the host-reachable connection string.
func (c *Config) URI() string {
	return fmt.Sprintf("mongodb://%s:%s@%s:%s/%s?authSource=%s",
		c.Username, c.Password, c.Host, c.Port, c.Database, c.AuthDB)
}

func (c *Container) Client() *mongo.Client { return c.client }

func (c *Container) Config() *Config { return c.cfg }

// Database returns a handle to the configured database.
func (c *Container) Database() *mongo.Database {
	return c.client.Database(c.cfg.Database)
}

func (c *Container) Terminate(ctx context.Context) error {
	if err := c.client.Disconnect(ctx); err != nil {
		c.cfg.Logger.Error(ctx, "failed to disconnect mongo client", logger.ErrorF(err))
	}

	if err := c.container.Terminate(ctx); err != nil {
		return errors.Wrap(err, "terminate mongo container")
	}

	c.cfg.Logger.Info(ctx, "mongo container terminated")

	return nil
}
