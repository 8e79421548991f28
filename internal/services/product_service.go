package services

import (
	"log"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/pkg/rabbitmq"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// ListResult is the paginated response shape of a product listing.
type ListResult struct {
	Products    []models.Product `json:"products"`
	TotalPages  int64            `json:"totalPages"`
	CurrentPage int              `json:"currentPage"`
	Total       int64            `json:"total"`
}

// ProductService handles business logic related to catalog products.
type ProductService struct {
	repo     repositories.ProductRepository
	mqClient *rabbitmq.Client
}

// NewProductService creates a new ProductService. The RabbitMQ client may be
// nil, in which case change events are skipped.
func NewProductService(repo repositories.ProductRepository, mqClient *rabbitmq.Client) *ProductService {
	return &ProductService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// ListProducts retrieves one page of products, optionally narrowed by exact
// category and by case-insensitive name substring. Page and limit values
// below 1 fall back to the defaults.
func (s *ProductService) ListProducts(category, search string, page, limit int) (*ListResult, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}

	products, total, err := s.repo.List(repositories.ListParams{
		Category: category,
		Search:   search,
		Limit:    limit,
		Offset:   (page - 1) * limit,
	})
	if err != nil {
		return nil, err
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)
	return &ListResult{
		Products:    products,
		TotalPages:  totalPages,
		CurrentPage: page,
		Total:       total,
	}, nil
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct persists a new product built from an already validated
// request and returns it with its assigned ID.
func (s *ProductService) CreateProduct(req *models.ProductRequest) (*models.Product, error) {
	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    req.Category,
	}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}

	s.publishEvent("product.created", product)
	return product, nil
}

// UpdateProduct replaces the fields of an existing product and returns the
// updated entity.
func (s *ProductService) UpdateProduct(id string, req *models.ProductRequest) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = *req.Price
	product.Category = req.Category
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}

	s.publishEvent("product.updated", product)
	return product, nil
}

// DeleteProduct removes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.publishEvent("product.deleted", &models.Product{ID: id})
	return nil
}

// SearchProductsByName retrieves every product whose name contains the given
// substring, ignoring case. An absent match is an empty result, not an error.
func (s *ProductService) SearchProductsByName(name string) ([]models.Product, error) {
	return s.repo.SearchByName(name)
}

// CategoryStats computes the per-category product count and average price.
func (s *ProductService) CategoryStats() ([]models.CategoryStat, error) {
	return s.repo.CategoryStats()
}

// publishEvent emits a catalog change event. Publication is best effort:
// a broker failure is logged and never fails the request that caused it.
func (s *ProductService) publishEvent(event string, product *models.Product) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishProductEvent(event, product); err != nil {
		log.Printf("Warning: failed to publish %s event for product %s: %v", event, product.ID, err)
	}
}
