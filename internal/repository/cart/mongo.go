package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/sm107-uiuc/sparemate-hub/internal/model"
	"github.com/sm107-uiuc/sparemate-hub/platform/logger"
)

type mongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(collection *mongo.Collection) *mongoRepository {
	return &mongoRepository{coll: collection}
}

func (r *mongoRepository) Lines(ctx context.Context, userID string) ([]model.CartLine, error) {
	const op = "repository.mongo.Lines"

	raw, err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Raw()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return []model.CartLine{}, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var ent CartEntity
	if err := bson.Unmarshal(raw, &ent); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, model.ErrMalformedCart, err)
	}

	lines, migrated := Sanitize(EntitiesToModel(ent.Items))
	if migrated {
		logger.Warn(ctx, "cart data migrated on read", logger.String("user_id", userID))
	}

	return lines, nil
}

func (r *mongoRepository) Save(ctx context.Context, userID string, lines []model.CartLine) error {
	const op = "repository.mongo.Save"

	ent := CartEntity{
		UserID:    userID,
		Items:     EntitiesFromModel(lines),
		UpdatedAt: time.Now().UTC(),
	}

	_, err := r.coll.ReplaceOne(ctx,
		bson.M{"user_id": userID},
		ent,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *mongoRepository) Delete(ctx context.Context, userID string) error {
	const op = "repository.mongo.Delete"

	if _, err := r.coll.DeleteOne(ctx, bson.M{"user_id": userID}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func EnsureIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})

	return err
}
