package service

import (
	"context"
	"fmt"

	"restaurant-service/internal/models"
	"restaurant-service/internal/repository"

	"github.com/google/uuid"
)

type CatalogItem struct {
	Name       string
	PriceCents int64
}

// CatalogLookup резолвит позицию каталога в её текущее имя и цену.
// (nil, nil) — позиции нет (удалена или никогда не существовала).
type CatalogLookup interface {
	Resolve(ctx context.Context, itemID uuid.UUID, kind models.ItemKind) (*CatalogItem, error)
}

type repoCatalog struct {
	repo repository.CatalogRepo
}

func NewCatalogLookup(repo repository.CatalogRepo) CatalogLookup {
	return &repoCatalog{repo: repo}
}

func (c *repoCatalog) Resolve(ctx context.Context, itemID uuid.UUID, kind models.ItemKind) (*CatalogItem, error) {
	switch kind {
	case models.ItemKindDish:
		dish, err := c.repo.GetDish(ctx, itemID)
		if err != nil {
			return nil, fmt.Errorf("resolve dish: %w", err)
		}
		if dish == nil {
			return nil, nil
		}
		return &CatalogItem{Name: dish.Name, PriceCents: dish.PriceCents}, nil
	case models.ItemKindDrink:
		drink, err := c.repo.GetDrink(ctx, itemID)
		if err != nil {
			return nil, fmt.Errorf("resolve drink: %w", err)
		}
		if drink == nil {
			return nil, nil
		}
		return &CatalogItem{Name: drink.Name, PriceCents: drink.PriceCents}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownItemKind, kind)
	}
}
