package config

import (
	"time"

	"github.com/IBM/sarama"
)

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	APIDelay() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Storage interface {
	Driver() string
}

type Mongo interface {
	DSN() string
	DatabaseName() string
	CartsCollection() string
	UsersCollection() string
}

type Redis interface {
	Address() string
	Password() string
	DB() int
}

type Catalog interface {
	Size() int
	Seed() uint64
}

type Kafka interface {
	Enabled() bool
	Brokers() []string
	CheckoutTopic() string
	CheckoutProducerConfig() *sarama.Config
}
