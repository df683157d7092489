package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sm107-uiuc/sparemate-hub/internal/model"
	"github.com/sm107-uiuc/sparemate-hub/platform/logger"
)

type PartRepository interface {
	PartByID(ctx context.Context, id string) (*model.Part, error)
	List(ctx context.Context) ([]*model.Part, error)
}

type service struct {
	repo PartRepository
}

func NewPartService(repo PartRepository) *service {
	return &service{repo: repo}
}

func (s *service) Part(ctx context.Context, partID string) (*model.Part, error) {
	const op = "part.service.Part"
	log := logger.With(
		logger.String("part_id", partID),
	)

	partID = strings.TrimSpace(partID)
	if partID == "" {
		log.Error(ctx, "validation: empty part id")
		return nil, errors.Join(model.ErrInvalidArgument, errors.New("part id must be non-empty"))
	}

	p, err := s.repo.PartByID(ctx, partID)
	if err != nil {
		log.Warn(ctx, "repository part by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (s *service) ListParts(
	ctx context.Context,
	filter model.PartsFilter,
	sortBy model.SortOption,
) ([]*model.Part, error) {
	const op = "part.service.ListParts"
	log := logger.With(
		logger.String("query", filter.Query),
		logger.String("sort", string(sortBy)),
	)

	if r := filter.PriceRange; r != nil && r.Min > r.Max {
		log.Error(ctx, "validation: inverted price range")
		return nil, errors.Join(model.ErrInvalidArgument, fmt.Errorf("min price %.2f exceeds max price %.2f", r.Min, r.Max))
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		log.Error(ctx, "repository list parts", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := Filter(all, filter, sortBy)
	log.Debug(ctx, "parts filtered", logger.Int("total", len(all)), logger.Int("matched", len(out)))

	return out, nil
}

func (s *service) Facets(ctx context.Context) (*model.Facets, error) {
	const op = "part.service.Facets"

	all, err := s.repo.List(ctx)
	if err != nil {
		logger.Error(ctx, "repository list parts", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return Facets(all), nil
}
