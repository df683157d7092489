package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/sm107-uiuc/sparemate-hub/internal/model"
	cartrepo "github.com/sm107-uiuc/sparemate-hub/internal/repository/cart"
	"github.com/sm107-uiuc/sparemate-hub/platform/logger"
)

type CartRepository interface {
	Lines(ctx context.Context, userID string) ([]model.CartLine, error)
	Save(ctx context.Context, userID string, lines []model.CartLine) error
	Delete(ctx context.Context, userID string) error
}

type Catalog interface {
	Exists(ctx context.Context, partID string) bool
	PartByID(ctx context.Context, id string) (*model.Part, error)
}

type service struct {
	repo    CartRepository
	catalog Catalog
}

func NewCartService(repo CartRepository, catalog Catalog) *service {
	return &service{repo: repo, catalog: catalog}
}

// Cart returns the user's lines, skipping lines whose part is unknown to the
// catalog. A missing cart is empty.
func (s *service) Cart(ctx context.Context, userID string) ([]model.CartLine, error) {
	const op = "cart.service.Cart"

	if err := validateUser(userID); err != nil {
		return nil, err
	}

	lines, err := s.stored(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.resolvable(ctx, lines), nil
}

// Save replaces the user's lines. Quantities below one are dropped and
// duplicate part ids merged into the first occurrence.
func (s *service) Save(ctx context.Context, userID string, lines []model.CartLine) error {
	const op = "cart.service.Save"
	log := logger.With(logger.String("user_id", userID))

	if err := validateUser(userID); err != nil {
		return err
	}

	for i, l := range lines {
		if strings.TrimSpace(l.PartID) == "" {
			log.Warn(ctx, "validation: empty part id", logger.Int("line", i))
			return errors.Join(model.ErrValidation, fmt.Errorf("line %d: part id must be non-empty", i))
		}
	}

	clean, changed := cartrepo.Sanitize(lines)
	if changed {
		log.Debug(ctx, "normalized cart lines", logger.Int("before", len(lines)), logger.Int("after", len(clean)))
	}

	if err := s.repo.Save(ctx, userID, clean); err != nil {
		log.Error(ctx, "repository save cart", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// AddItem increments the line for partID or appends a new one.
func (s *service) AddItem(ctx context.Context, userID, partID string, quantity int) ([]model.CartLine, error) {
	const op = "cart.service.AddItem"
	log := logger.With(
		logger.String("user_id", userID),
		logger.String("part_id", partID),
		logger.Int("quantity", quantity),
	)

	if err := validateUser(userID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(partID) == "" {
		return nil, errors.Join(model.ErrValidation, errors.New("part id must be non-empty"))
	}
	if quantity < 1 {
		log.Warn(ctx, "validation: non-positive quantity")
		return nil, errors.Join(model.ErrValidation, errors.New("quantity must be a positive integer"))
	}

	lines, err := s.stored(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if i := slices.IndexFunc(lines, byPart(partID)); i >= 0 {
		lines[i].Quantity += quantity
	} else {
		lines = append(lines, model.CartLine{PartID: partID, Quantity: quantity})
	}

	if err := s.repo.Save(ctx, userID, lines); err != nil {
		log.Error(ctx, "repository save cart", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	log.Debug(ctx, "cart item added")

	return s.resolvable(ctx, lines), nil
}

// RemoveItem deletes the line for partID. Removing an absent line is a no-op.
func (s *service) RemoveItem(ctx context.Context, userID, partID string) ([]model.CartLine, error) {
	const op = "cart.service.RemoveItem"

	if err := validateUser(userID); err != nil {
		return nil, err
	}

	lines, err := s.stored(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	kept := slices.DeleteFunc(slices.Clone(lines), byPart(partID))
	if len(kept) != len(lines) {
		if err := s.repo.Save(ctx, userID, kept); err != nil {
			logger.Error(ctx, "repository save cart", logger.String("user_id", userID), logger.ErrorF(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return s.resolvable(ctx, kept), nil
}

// UpdateQuantity sets the quantity of an existing line. A quantity below one
// removes the line.
func (s *service) UpdateQuantity(ctx context.Context, userID, partID string, quantity int) ([]model.CartLine, error) {
	const op = "cart.service.UpdateQuantity"

	if quantity < 1 {
		return s.RemoveItem(ctx, userID, partID)
	}
	if err := validateUser(userID); err != nil {
		return nil, err
	}

	lines, err := s.stored(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	i := slices.IndexFunc(lines, byPart(partID))
	if i < 0 {
		return nil, fmt.Errorf("%s: %w", op, model.ErrCartItemNotFound)
	}
	lines[i].Quantity = quantity

	if err := s.repo.Save(ctx, userID, lines); err != nil {
		logger.Error(ctx, "repository save cart", logger.String("user_id", userID), logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.resolvable(ctx, lines), nil
}

func (s *service) Clear(ctx context.Context, userID string) error {
	const op = "cart.service.Clear"

	if err := validateUser(userID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, userID); err != nil {
		logger.Error(ctx, "repository delete cart", logger.String("user_id", userID), logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Details joins every resolvable line with its catalog summary.
func (s *service) Details(ctx context.Context, userID string) ([]model.CartItemView, error) {
	lines, err := s.Cart(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.View(ctx, lines), nil
}

// View attaches catalog summaries to lines. Lines whose part disappeared keep
// a nil summary.
func (s *service) View(ctx context.Context, lines []model.CartLine) []model.CartItemView {
	return lo.Map(lines, func(l model.CartLine, _ int) model.CartItemView {
		view := model.CartItemView{PartID: l.PartID, Quantity: l.Quantity}
		if p, err := s.catalog.PartByID(ctx, l.PartID); err == nil {
			view.Part = p.Summary()
		}
		return view
	})
}

// stored reads the persisted lines as-is. Data that cannot be decoded is
// reported and read as an empty cart.
func (s *service) stored(ctx context.Context, userID string) ([]model.CartLine, error) {
	lines, err := s.repo.Lines(ctx, userID)
	if errors.Is(err, model.ErrMalformedCart) {
		logger.Warn(ctx, "malformed cart treated as empty", logger.String("user_id", userID), logger.ErrorF(err))
		return []model.CartLine{}, nil
	}
	if err != nil {
		logger.Error(ctx, "repository read cart", logger.String("user_id", userID), logger.ErrorF(err))
		return nil, err
	}

	return lines, nil
}

func (s *service) resolvable(ctx context.Context, lines []model.CartLine) []model.CartLine {
	return lo.Filter(lines, func(l model.CartLine, _ int) bool {
		return s.catalog.Exists(ctx, l.PartID)
	})
}

func validateUser(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return errors.Join(model.ErrValidation, errors.New("user id must be non-empty"))
	}
	return nil
}

func byPart(partID string) func(model.CartLine) bool {
	return func(l model.CartLine) bool { return l.PartID == partID }
}
