package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/sm107-uiuc/sparemate-hub/internal/model"
)

type mongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(collection *mongo.Collection) *mongoRepository {
	return &mongoRepository{coll: collection}
}

func (r *mongoRepository) Create(ctx context.Context, u *model.User) error {
	const op = "repository.mongo.Create"

	if _, err := r.coll.InsertOne(ctx, UserFromModel(u)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%s: %w", op, model.ErrUserExists)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *mongoRepository) UserByAPIKey(ctx context.Context, apiKey string) (*model.User, error) {
	return r.findOne(ctx, "repository.mongo.UserByAPIKey", bson.M{"api_key": apiKey})
}

func (r *mongoRepository) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, "repository.mongo.UserByEmail", bson.M{"email": normalizeEmail(email)})
}

func (r *mongoRepository) Delete(ctx context.Context, userID string) error {
	const op = "repository.mongo.Delete"

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": userID}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *mongoRepository) findOne(ctx context.Context, op string, filter bson.M) (*model.User, error) {
	var e UserEntity
	if err := r.coll.FindOne(ctx, filter).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return UserToModel(e), nil
}

func EnsureIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "api_key", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	})

	return err
}
