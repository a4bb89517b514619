package repository

import "gorm.io/gorm"

type Repository struct {
	DB      *gorm.DB
	Orders  OrderRepo
	Catalog CatalogRepo
}

func buildRepository(db *gorm.DB) *Repository {
	return &Repository{
		DB:      db,
		Orders:  NewOrderRepo(db),
		Catalog: NewCatalogRepo(db),
	}
}

func New(db *gorm.DB) *Repository { return buildRepository(db) }
