package envconfig

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
	DriverMongo  = "mongo"
)

type storageEnv struct {
	Driver string `env:"STORAGE_DRIVER" envDefault:"memory"`
}

type storage struct {
	raw storageEnv
}

func NewStorageConfig() (*storage, error) {
	var raw storageEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}

	switch raw.Driver {
	case DriverMemory, DriverRedis, DriverMongo:
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", raw.Driver)
	}

	return &storage{raw: raw}, nil
}

func (cfg *storage) Driver() string { return cfg.raw.Driver }

// ======= Catalog =======

type catalogEnv struct {
	Size int    `env:"CATALOG_SIZE" envDefault:"100"`
	Seed uint64 `env:"CATALOG_SEED" envDefault:"42"`
}

type catalog struct {
	raw catalogEnv
}

func NewCatalogConfig() (*catalog, error) {
	var raw catalogEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	if raw.Size < 1 {
		return nil, fmt.Errorf("CATALOG_SIZE must be positive, got %d", raw.Size)
	}
	return &catalog{raw: raw}, nil
}

func (cfg *catalog) Size() int    { return cfg.raw.Size }
func (cfg *catalog) Seed() uint64 { return cfg.raw.Seed }
