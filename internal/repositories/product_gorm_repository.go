package repositories

import (
	"fmt"
	"strings"

	"catalog/internal/apperrors"
	"catalog/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// filtered returns a query scoped to the given listing filter.
func (r *GORMProductRepository) filtered(params ListParams) *gorm.DB {
	query := r.db.Model(&models.Product{})
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}
	if params.Search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(params.Search)+"%")
	}
	return query
}

// List retrieves one page of products matching the filter, plus the total
// number of matches across all pages.
func (r *GORMProductRepository) List(params ListParams) ([]models.Product, int64, error) {
	var total int64
	if err := r.filtered(params).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	products := make([]models.Product, 0)
	err := r.filtered(params).
		Order("id").
		Limit(params.Limit).
		Offset(params.Offset).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return products, total, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("Product", id)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update updates an existing product in the database.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Save(product) // Save will update all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// GORM's Save doesn't return ErrRecordNotFound when no rows match,
		// so we check RowsAffected.
		return apperrors.NewNotFoundError("Product", product.ID)
	}
	return nil
}

// Delete deletes a product by its ID from the database.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Product", id)
	}
	return nil
}

// SearchByName retrieves every product whose name contains the given
// substring, ignoring case. No match is an empty slice, not an error.
func (r *GORMProductRepository) SearchByName(name string) ([]models.Product, error) {
	products := make([]models.Product, 0)
	err := r.db.
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search products by name: %w", err)
	}
	return products, nil
}

// CategoryStats groups all products by category and computes the product
// count and average price per group.
func (r *GORMProductRepository) CategoryStats() ([]models.CategoryStat, error) {
	stats := make([]models.CategoryStat, 0)
	err := r.db.Model(&models.Product{}).
		Select("category, COUNT(*) AS count, AVG(price) AS avg_price").
		Group("category").
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate category stats: %w", err)
	}
	return stats, nil
}
