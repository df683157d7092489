package app

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/sm107-uiuc/sparemate-hub/internal/config"
	envconfig "github.com/sm107-uiuc/sparemate-hub/internal/config/env"
	"github.com/sm107-uiuc/sparemate-hub/internal/converter"
	cartrepo "github.com/sm107-uiuc/sparemate-hub/internal/repository/cart"
	orderrepo "github.com/sm107-uiuc/sparemate-hub/internal/repository/order"
	partrepo "github.com/sm107-uiuc/sparemate-hub/internal/repository/part"
	userrepo "github.com/sm107-uiuc/sparemate-hub/internal/repository/user"
	authsvc "github.com/sm107-uiuc/sparemate-hub/internal/service/auth"
	cartsvc "github.com/sm107-uiuc/sparemate-hub/internal/service/cart"
	ordersvc "github.com/sm107-uiuc/sparemate-hub/internal/service/order"
	partsvc "github.com/sm107-uiuc/sparemate-hub/internal/service/part"
	checkoutproducer "github.com/sm107-uiuc/sparemate-hub/internal/service/producer/checkout"
	thttp "github.com/sm107-uiuc/sparemate-hub/internal/transport/http/api/v1"
	"github.com/sm107-uiuc/sparemate-hub/platform/closer"
	"github.com/sm107-uiuc/sparemate-hub/platform/kafka"
	"github.com/sm107-uiuc/sparemate-hub/platform/kafka/producer"
	"github.com/sm107-uiuc/sparemate-hub/platform/logger"
)

type PartRepository interface {
	partsvc.PartRepository
	cartsvc.Catalog
	partrepo.BatchCreator
}

type CartService interface {
	thttp.CartService
	ordersvc.CartService
}

type APIHandler interface {
	Register(r chi.Router)
}

type di struct {
	mongoClient *mongo.Client
	mongoDB     *mongo.Database
	redisClient *redis.Client

	partRepository  PartRepository
	cartRepository  cartsvc.CartRepository
	userRepository  authsvc.UserRepository
	orderRepository ordersvc.OrderRepository

	syncProducer     sarama.SyncProducer
	checkoutProducer kafka.Producer
	checkoutSender   ordersvc.CheckoutSender

	partService  thttp.PartService
	cartService  CartService
	authService  thttp.AuthService
	orderService thttp.OrderService

	handler APIHandler
	router  *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) MongoDatabase(ctx context.Context) *mongo.Database {
	if d.mongoDB == nil {
		cfg := config.C().Mongo

		client, err := mongo.Connect(options.Client().ApplyURI(cfg.DSN()))
		if err != nil {
			panic(fmt.Sprintf("failed to connect to mongo: %v\n", err))
		}

		closer.AddNamed("Mongo client", func(ctx context.Context) error {
			return client.Disconnect(ctx)
		})

		if err := client.Ping(ctx, nil); err != nil {
			panic(fmt.Sprintf("failed to ping mongo: %v\n", err))
		}

		d.mongoClient = client
		d.mongoDB = client.Database(cfg.DatabaseName())
	}

	return d.mongoDB
}

func (d *di) RedisClient(ctx context.Context) *redis.Client {
	if d.redisClient == nil {
		cfg := config.C().Redis

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Address(),
			Password: cfg.Password(),
			DB:       cfg.DB(),
		})

		closer.AddNamed("Redis client", func(ctx context.Context) error {
			return client.Close()
		})

		if err := client.Ping(ctx).Err(); err != nil {
			panic(fmt.Sprintf("failed to ping redis %s: %v\n", cfg.Address(), err))
		}

		d.redisClient = client
	}

	return d.redisClient
}

func (d *di) PartRepository(_ context.Context) PartRepository {
	if d.partRepository == nil {
		d.partRepository = partrepo.NewPartRepository()
	}

	return d.partRepository
}

func (d *di) CartRepository(ctx context.Context) cartsvc.CartRepository {
	if d.cartRepository == nil {
		switch config.C().Storage.Driver() {
		case envconfig.DriverRedis:
			d.cartRepository = cartrepo.NewRedisRepository(d.RedisClient(ctx))
		case envconfig.DriverMongo:
			coll := d.MongoDatabase(ctx).Collection(config.C().Mongo.CartsCollection())
			if err := cartrepo.EnsureIndexes(ctx, coll); err != nil {
				panic(fmt.Sprintf("failed to create cart indexes: %v\n", err))
			}
			d.cartRepository = cartrepo.NewMongoRepository(coll)
		default:
			d.cartRepository = cartrepo.NewMemoryRepository()
		}
	}

	return d.cartRepository
}

func (d *di) UserRepository(ctx context.Context) authsvc.UserRepository {
	if d.userRepository == nil {
		switch config.C().Storage.Driver() {
		case envconfig.DriverRedis:
			d.userRepository = userrepo.NewRedisRepository(d.RedisClient(ctx))
		case envconfig.DriverMongo:
			coll := d.MongoDatabase(ctx).Collection(config.C().Mongo.UsersCollection())
			if err := userrepo.EnsureIndexes(ctx, coll); err != nil {
				panic(fmt.Sprintf("failed to create user indexes: %v\n", err))
			}
			d.userRepository = userrepo.NewMongoRepository(coll)
		default:
			d.userRepository = userrepo.NewMemoryRepository()
		}
	}

	return d.userRepository
}

func (d *di) OrderRepository(_ context.Context) ordersvc.OrderRepository {
	if d.orderRepository == nil {
		d.orderRepository = orderrepo.NewOrderRepository(orderrepo.SampleOrders())
	}

	return d.orderRepository
}

func (d *di) SyncProducer(_ context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C().Kafka

		p, err := sarama.NewSyncProducer(
			cfg.Brokers(),
			cfg.CheckoutProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

func (d *di) CheckoutProducer(ctx context.Context) kafka.Producer {
	if d.checkoutProducer == nil {
		d.checkoutProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.CheckoutTopic(),
			logger.L(),
		)
	}

	return d.checkoutProducer
}

func (d *di) CheckoutSender(ctx context.Context) ordersvc.CheckoutSender {
	if d.checkoutSender == nil {
		if config.C().Kafka.Enabled() {
			d.checkoutSender = checkoutproducer.NewCheckoutProducer(
				d.CheckoutProducer(ctx),
				converter.NewKafkaConverter(),
			)
		} else {
			d.checkoutSender = checkoutproducer.NewDiscardSender()
		}
	}

	return d.checkoutSender
}

func (d *di) PartService(ctx context.Context) thttp.PartService {
	if d.partService == nil {
		d.partService = partsvc.NewPartService(d.PartRepository(ctx))
	}

	return d.partService
}

func (d *di) CartService(ctx context.Context) CartService {
	if d.cartService == nil {
		d.cartService = cartsvc.NewCartService(
			d.CartRepository(ctx),
			d.PartRepository(ctx),
		)
	}

	return d.cartService
}

func (d *di) AuthService(ctx context.Context) thttp.AuthService {
	if d.authService == nil {
		d.authService = authsvc.NewAuthService(d.UserRepository(ctx))
	}

	return d.authService
}

func (d *di) OrderService(ctx context.Context) thttp.OrderService {
	if d.orderService == nil {
		d.orderService = ordersvc.NewOrderService(
			d.OrderRepository(ctx),
			d.CartService(ctx),
			d.CheckoutSender(ctx),
		)
	}

	return d.orderService
}

func (d *di) APIHandler(ctx context.Context) APIHandler {
	if d.handler == nil {
		d.handler = thttp.NewHandler(
			d.PartService(ctx),
			d.CartService(ctx),
			d.OrderService(ctx),
			d.AuthService(ctx),
			config.C().Server.APIDelay(),
		)
	}

	return d.handler
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}
