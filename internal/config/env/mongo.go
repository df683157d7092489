package envconfig

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type mongoEnv struct {
	Host            string `env:"MONGO_HOST" envDefault:"localhost"`
	Port            int    `env:"MONGO_PORT" envDefault:"27017"`
	User            string `env:"MONGO_INITDB_ROOT_USERNAME" envDefault:"root"`
	Password        string `env:"MONGO_INITDB_ROOT_PASSWORD" envDefault:"root"`
	DBName          string `env:"MONGO_DATABASE" envDefault:"storefront"`
	AuthDB          string `env:"MONGO_AUTH_DB" envDefault:"admin"`
	CartsCollection string `env:"MONGO_CARTS_COLLECTION" envDefault:"carts"`
	UsersCollection string `env:"MONGO_USERS_COLLECTION" envDefault:"users"`
}

type mongo struct {
	raw mongoEnv
}

func NewMongoConfig() (*mongo, error) {
	var raw mongoEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &mongo{raw: raw}, nil
}

func (cfg *mongo) DatabaseName() string    { return cfg.raw.DBName }
func (cfg *mongo) CartsCollection() string { return cfg.raw.CartsCollection }
func (cfg *mongo) UsersCollection() string { return cfg.raw.UsersCollection }

func (cfg *mongo) DSN() string {
	return fmt.Sprintf(
		"mongodb://%s:%s@%s:%d/%s?authSource=%s",
		cfg.raw.User,
		cfg.raw.Password,
		cfg.raw.Host,
		cfg.raw.Port,
		cfg.raw.DBName,
		cfg.raw.AuthDB,
	)
}
