//go:build integration

package repository_test

import (
	"context"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/sm107-uiuc/sparemate-hub/internal/model"
	repository "github.com/sm107-uiuc/sparemate-hub/internal/repository/cart"
	tcmongo "github.com/sm107-uiuc/sparemate-hub/platform/testcontainers/mongo"
	tcnetwork "github.com/sm107-uiuc/sparemate-hub/platform/testcontainers/network"
	tcredis "github.com/sm107-uiuc/sparemate-hub/platform/testcontainers/redis"
)

var (
	ctx      context.Context
	net      *tcnetwork.Network
	mongoC   *tcmongo.Container
	redisC   *tcredis.Container
	cartColl *mongo.Collection
)

func TestCartRepositoryIntegration(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Cart Repository Integration Suite")
}

var _ = BeforeSuite(func() {
	ctx = context.Background()

	By("creating isolated docker network")
	var err error
	net, err = tcnetwork.NewNetwork(ctx, "cart_repository_it")
	Expect(err).NotTo(HaveOccurred())

	By("starting mongo container")
	mongoC, err = tcmongo.NewContainer(ctx, tcmongo.WithNetworkName(net.Name()))
	Expect(err).NotTo(HaveOccurred())

	cartColl = mongoC.Database().Collection("carts")
	Expect(repository.EnsureIndexes(ctx, cartColl)).To(Succeed())

	By("starting redis container")
	redisC, err = tcredis.NewContainer(ctx, tcredis.WithNetworkName(net.Name()))
	Expect(err).NotTo(HaveOccurred())
})

var _ = AfterSuite(func() {
	if mongoC != nil {
		_ = mongoC.Terminate(ctx)
	}
	if redisC != nil {
		_ = redisC.Terminate(ctx)
	}
	if net != nil {
		_ = net.Remove(ctx)
	}
})

var _ = Describe("mongo cart repository", func() {
	var repo interface {
		Lines(ctx context.Context, userID string) ([]model.CartLine, error)
		Save(ctx context.Context, userID string, lines []model.CartLine) error
		Delete(ctx context.Context, userID string) error
	}

	BeforeEach(func() {
		_, err := cartColl.DeleteMany(ctx, bson.M{})
		Expect(err).NotTo(HaveOccurred())
		repo = repository.NewMongoRepository(cartColl)
	})

	It("reads an absent cart as empty", func() {
		lines, err := repo.Lines(ctx, "user-1")
		Expect(err).NotTo(HaveOccurred())
		Expect(lines).To(BeEmpty())
	})

	It("upserts a single document per user", func() {
		Expect(repo.Save(ctx, "user-1", []model.CartLine{{PartID: "part-1", Quantity: 1}})).To(Succeed())
		Expect(repo.Save(ctx, "user-1", []model.CartLine{{PartID: "part-2", Quantity: 4}})).To(Succeed())

		n, err := cartColl.CountDocuments(ctx, bson.M{"user_id": "user-1"})
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(BeEquivalentTo(1))

		lines, err := repo.Lines(ctx, "user-1")
		Expect(err).NotTo(HaveOccurred())
		Expect(lines).To(Equal([]model.CartLine{{PartID: "part-2", Quantity: 4}}))
	})

	It("migrates invalid stored lines on read", func() {
		_, err := cartColl.InsertOne(ctx, bson.M{
			"user_id": "user-2",
			"items": bson.A{
				bson.M{"part_id": "part-1", "quantity": 2},
				bson.M{"part_id": "part-1", "quantity": 1},
				bson.M{"part_id": "", "quantity": 3},
			},
		})
		Expect(err).NotTo(HaveOccurred())

		lines, err := repo.Lines(ctx, "user-2")
		Expect(err).NotTo(HaveOccurred())
		Expect(lines).To(Equal([]model.CartLine{{PartID: "part-1", Quantity: 3}}))
	})

	It("reports documents of the wrong shape as malformed", func() {
		_, err := cartColl.InsertOne(ctx, bson.M{"user_id": "user-3", "items": "not a list"})
		Expect(err).NotTo(HaveOccurred())

		_, err = repo.Lines(ctx, "user-3")
		Expect(err).To(MatchError(model.ErrMalformedCart))
	})

	It("deletes idempotently", func() {
		Expect(repo.Save(ctx, "user-4", []model.CartLine{{PartID: "part-5", Quantity: 1}})).To(Succeed())
		Expect(repo.Delete(ctx, "user-4")).To(Succeed())
		Expect(repo.Delete(ctx, "user-4")).To(Succeed())

		lines, err := repo.Lines(ctx, "user-4")
		Expect(err).NotTo(HaveOccurred())
		Expect(lines).To(BeEmpty())
	})
})

var _ = Describe("redis cart repository", func() {
	var repo interface {
		Lines(ctx context.Context, userID string) ([]model.CartLine, error)
		Save(ctx context.Context, userID string, lines []model.CartLine) error
		Delete(ctx context.Context, userID string) error
	}

	BeforeEach(func() {
		Expect(redisC.Client().FlushDB(ctx).Err()).To(Succeed())
		repo = repository.NewRedisRepository(redisC.Client())
	})

	It("stores the cart as JSON under the user key", func() {
		Expect(repo.Save(ctx, "user-42", []model.CartLine{{PartID: "part-3", Quantity: 2}})).To(Succeed())

		raw, err := redisC.Client().Get(ctx, "cart-user-42").Result()
		Expect(err).NotTo(HaveOccurred())
		Expect(raw).To(MatchJSON(`[{"partId":"part-3","quantity":2}]`))

		lines, err := repo.Lines(ctx, "user-42")
		Expect(err).NotTo(HaveOccurred())
		Expect(lines).To(Equal([]model.CartLine{{PartID: "part-3", Quantity: 2}}))
	})

	It("reports non-JSON values as malformed", func() {
		Expect(redisC.Client().Set(ctx, "cart-user-7", "{oops", 0).Err()).To(Succeed())

		_, err := repo.Lines(ctx, "user-7")
		Expect(err).To(MatchError(model.ErrMalformedCart))
	})

	It("removes the key on delete", func() {
		Expect(repo.Save(ctx, "user-9", []model.CartLine{{PartID: "part-1", Quantity: 1}})).To(Succeed())
		Expect(repo.Delete(ctx, "user-9")).To(Succeed())

		n, err := redisC.Client().Exists(ctx, "cart-user-9").Result()
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(BeZero())
	})
})
