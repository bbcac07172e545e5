package handlers

import (
	"strconv"

	"masterdesk/internal/adapters/persistence/models"
	"masterdesk/internal/core/services"
	"masterdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles product master endpoints
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List lists products
// @Summary List products
// @Description Get products filtered by status and per-column filters (Admin only)
// @Tags Master
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param status query string false "active (default), inactive or all"
// @Param product_type query string false "Exact product type match"
// @Param product_name query string false "Substring match on product name"
// @Param product_code query string false "Substring match on product code"
// @Param description query string false "Substring match on description"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /master/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	filter := services.ProductFilter{
		Status:      c.Query("status"),
		ProductType: c.Query("product_type"),
		ProductName: c.Query("product_name"),
		ProductCode: c.Query("product_code"),
		Description: c.Query("description"),
	}

	products, err := h.service.List(c.Context(), filter)
	if err != nil {
		return response.InternalServerError(c, "Failed to list products")
	}

	return response.Success(c, "Products retrieved successfully", fiber.Map{
		"products": products,
		"total":    len(products),
	})
}

// Types lists the accepted product types
// @Summary List product types
// @Description Get the fixed product type options for the filter dropdown
// @Tags Master
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /master/products/types [get]
func (h *ProductHandler) Types(c *fiber.Ctx) error {
	return response.Success(c, "Product types retrieved successfully", fiber.Map{
		"product_types": models.ProductTypes,
	})
}

// Get gets a product by ID
// @Summary Get product
// @Description Get a product by ID (Admin only)
// @Tags Master
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /master/products/{id} [get]
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	product, err := h.service.GetByID(c.Context(), uint(id))
	if err != nil {
		return response.NotFound(c, "Product not found")
	}

	return response.Success(c, "Product retrieved successfully", fiber.Map{
		"product": product,
	})
}

// Create creates a new product
// @Summary Create product
// @Description Create a new product (Admin only)
// @Tags Master
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.ProductInput true "Product data"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /master/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var input services.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	product, err := h.service.Create(c.Context(), &input, actor(c))
	if err != nil {
		return writeMasterError(c, err, "Product not found")
	}

	return response.Created(c, "Product created successfully", fiber.Map{
		"product": product,
	})
}

// Update updates an existing product
// @Summary Update product
// @Description Update a product by ID (Admin only)
// @Tags Master
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param body body services.ProductInput true "Product data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /master/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var input services.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	product, err := h.service.Update(c.Context(), uint(id), &input, actor(c))
	if err != nil {
		return writeMasterError(c, err, "Product not found")
	}

	return response.Success(c, "Product updated successfully", fiber.Map{
		"product": product,
	})
}
