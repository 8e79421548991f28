package handlers

import (
	"catalog/internal/middleware"
	"catalog/internal/models"
	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for catalog products. Each handler
// composes its gates, a single persistence operation, and response shaping;
// failures are returned for the central error handler to format.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes. auth and validate are the
// gates applied to write routes, auth first.
//
// Note: GET /products keeps its unprefixed, unauthenticated registration
// alongside the /api/products family; the two surfaces are intentionally
// distinct, not duplicates to merge.
func (h *ProductHandler) RegisterRoutes(app *fiber.App, auth fiber.Handler, validate fiber.Handler) {
	app.Get("/products", h.HandleListProducts)

	api := app.Group("/api")
	// The search route must be registered before /products/:id so that
	// "search" is not captured as an id.
	api.Get("/products/search/:name", h.HandleSearchProducts)
	api.Get("/products/:id", h.HandleGetProductByID)
	api.Post("/products", auth, validate, h.HandleCreateProduct)
	api.Put("/products/:id", auth, validate, h.HandleUpdateProduct)
	api.Delete("/products/:id", auth, h.HandleDeleteProduct)
	api.Get("/stats", h.HandleCategoryStats)
}

// HandleListProducts returns one page of products with pagination metadata.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	result, err := h.service.ListProducts(
		c.Query("category"),
		c.Query("search"),
		c.QueryInt("page", 1),
		c.QueryInt("limit", 10),
	)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// HandleGetProductByID returns a single product or a not-found error.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	product, err := h.service.GetProductByID(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// HandleCreateProduct persists the validated request body as a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	req := c.Locals(middleware.ProductRequestKey).(*models.ProductRequest)
	product, err := h.service.CreateProduct(req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct replaces the fields of an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	req := c.Locals(middleware.ProductRequestKey).(*models.ProductRequest)
	product, err := h.service.UpdateProduct(c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// HandleDeleteProduct removes a product and confirms the deletion.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
	})
}

// HandleSearchProducts returns every product whose name contains the path
// segment, ignoring case. No match is 200 with an empty array, unlike the
// by-id lookup's 404.
func (h *ProductHandler) HandleSearchProducts(c *fiber.Ctx) error {
	products, err := h.service.SearchProductsByName(c.Params("name"))
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// HandleCategoryStats returns the per-category count and average price.
func (h *ProductHandler) HandleCategoryStats(c *fiber.Ctx) error {
	stats, err := h.service.CategoryStats()
	if err != nil {
		return err
	}
	return c.JSON(stats)
}
