package repositories

import (
	"sort"
	"strings"
	"sync"

	"catalog/internal/apperrors"
	"catalog/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// matches reports whether a product satisfies the listing filter.
func matches(p models.Product, params ListParams) bool {
	if params.Category != "" && p.Category != params.Category {
		return false
	}
	if params.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(params.Search)) {
		return false
	}
	return true
}

// List returns one page of matching products plus the total match count.
// Results are ordered by ID so pages are stable across calls.
func (r *MockProductRepository) List(params ListParams) ([]models.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Product, 0)
	for _, p := range r.products {
		if matches(p, params) {
			matched = append(matched, p)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := int64(len(matched))
	start := params.Offset
	if start > len(matched) {
		start = len(matched)
	}
	end := start + params.Limit
	if params.Limit <= 0 || end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("Product", id)
	}
	return &product, nil
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[product.ID]
	if !ok {
		return apperrors.NewNotFoundError("Product", product.ID)
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[id]
	if !ok {
		return apperrors.NewNotFoundError("Product", id)
	}
	delete(r.products, id)
	return nil
}

// SearchByName returns every product whose name contains the substring,
// ignoring case.
func (r *MockProductRepository) SearchByName(name string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(name)
	found := make([]models.Product, 0)
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			found = append(found, p)
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].ID < found[j].ID })
	return found, nil
}

// CategoryStats groups products by category with count and average price.
func (r *MockProductRepository) CategoryStats() ([]models.CategoryStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int64)
	sums := make(map[string]float64)
	for _, p := range r.products {
		counts[p.Category]++
		sums[p.Category] += p.Price
	}

	stats := make([]models.CategoryStat, 0, len(counts))
	for category, count := range counts {
		stats = append(stats, models.CategoryStat{
			Category: category,
			Count:    count,
			AvgPrice: sums[category] / float64(count),
		})
	}
	return stats, nil
}
