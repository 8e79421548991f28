package repositories

import (
	"catalog/internal/models"
)

// ListParams narrows and pages a product listing.
type ListParams struct {
	Category string // exact category match, empty means no filter
	Search   string // case-insensitive substring match on name
	Limit    int
	Offset   int
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	List(params ListParams) ([]models.Product, int64, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	SearchByName(name string) ([]models.Product, error)
	CategoryStats() ([]models.CategoryStat, error)
}
