package repository

import (
	"context"
	"errors"

	"restaurant-service/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogRepo — read-only доступ к каталогу для ценообразования и проекции.
// Каталог этот сервис не изменяет.
type CatalogRepo interface {
	GetDish(ctx context.Context, id uuid.UUID) (*models.Dish, error)
	GetDrink(ctx context.Context, id uuid.UUID) (*models.Drink, error)
}

type catalogRepo struct{ db *gorm.DB }

func NewCatalogRepo(db *gorm.DB) CatalogRepo { return &catalogRepo{db: db} }

func (r *catalogRepo) GetDish(ctx context.Context, id uuid.UUID) (*models.Dish, error) {
	var dish models.Dish
	err := r.db.WithContext(ctx).First(&dish, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *catalogRepo) GetDrink(ctx context.Context, id uuid.UUID) (*models.Drink, error) {
	var drink models.Drink
	err := r.db.WithContext(ctx).First(&drink, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &drink, nil
}
