package handlers

import (
	"strconv"

	"masterdesk/internal/core/services"
	"masterdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DocumentTypeHandler handles document type master endpoints
type DocumentTypeHandler struct {
	service *services.DocumentTypeService
}

// NewDocumentTypeHandler creates a new document type handler
func NewDocumentTypeHandler(service *services.DocumentTypeService) *DocumentTypeHandler {
	return &DocumentTypeHandler{service: service}
}

// List lists document types
// @Summary List document types
// @Description Get document types filtered by status and search text (Admin only)
// @Tags Master
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param status query string false "active (default), inactive or all"
// @Param search query string false "Substring match on name and description"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /master/document-types [get]
func (h *DocumentTypeHandler) List(c *fiber.Ctx) error {
	filter := services.DocumentTypeFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	}

	docTypes, err := h.service.List(c.Context(), filter)
	if err != nil {
		return response.InternalServerError(c, "Failed to list document types")
	}

	return response.Success(c, "Document types retrieved successfully", fiber.Map{
		"document_types": docTypes,
		"total":          len(docTypes),
	})
}

// Get gets a document type by ID
// @Summary Get document type
// @Description Get a document type by ID (Admin only)
// @Tags Master
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document Type ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /master/document-types/{id} [get]
func (h *DocumentTypeHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	docType, err := h.service.GetByID(c.Context(), uint(id))
	if err != nil {
		return response.NotFound(c, "Document type not found")
	}

	return response.Success(c, "Document type retrieved successfully", fiber.Map{
		"document_type": docType,
	})
}

// Create creates a new document type
// @Summary Create document type
// @Description Create a new document type (Admin only)
// @Tags Master
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.DocumentTypeInput true "Document type data"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /master/document-types [post]
func (h *DocumentTypeHandler) Create(c *fiber.Ctx) error {
	var input services.DocumentTypeInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	docType, err := h.service.Create(c.Context(), &input, actor(c))
	if err != nil {
		return writeMasterError(c, err, "Document type not found")
	}

	return response.Created(c, "Document type created successfully", fiber.Map{
		"document_type": docType,
	})
}

// Update updates an existing document type
// @Summary Update document type
// @Description Update a document type by ID (Admin only)
// @Tags Master
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document Type ID"
// @Param body body services.DocumentTypeInput true "Document type data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /master/document-types/{id} [put]
func (h *DocumentTypeHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var input services.DocumentTypeInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	docType, err := h.service.Update(c.Context(), uint(id), &input, actor(c))
	if err != nil {
		return writeMasterError(c, err, "Document type not found")
	}

	return response.Success(c, "Document type updated successfully", fiber.Map{
		"document_type": docType,
	})
}
