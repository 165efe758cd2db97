package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/mvaldebenito/gamestore-backend/internal/services"
)

type productRequest struct {
	Name             string         `json:"name"`
	Description      string         `json:"description"`
	Price            float64        `json:"price"`
	ProductTypeID    uuid.UUID      `json:"product_type_id"`
	ClassificationID uuid.UUID      `json:"classification_id"`
	StatusID         uuid.UUID      `json:"status_id"`
	Metadata         datatypes.JSON `json:"metadata"`
	Active           *bool          `json:"active"`
}

type productPatchRequest struct {
	Name             *string        `json:"name"`
	Description      *string        `json:"description"`
	Price            *float64       `json:"price"`
	ProductTypeID    *uuid.UUID     `json:"product_type_id"`
	ClassificationID *uuid.UUID     `json:"classification_id"`
	StatusID         *uuid.UUID     `json:"status_id"`
	Metadata         datatypes.JSON `json:"metadata"`
	Active           *bool          `json:"active"`
}

type ProductHandler struct {
	productService services.ProductService
}

func NewProductHandler(productService services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func (ph *ProductHandler) Create(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	product, err := ph.productService.Create(c.Request.Context(), toProductInput(req))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondCreated(c, product)
}

func (ph *ProductHandler) Replace(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	product, err := ph.productService.Replace(c.Request.Context(), id, toProductInput(req))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, product)
}

func (ph *ProductHandler) Patch(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req productPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	product, err := ph.productService.Patch(c.Request.Context(), id, services.ProductPatch{
		Name:             req.Name,
		Description:      req.Description,
		Price:            req.Price,
		ProductTypeID:    req.ProductTypeID,
		ClassificationID: req.ClassificationID,
		StatusID:         req.StatusID,
		Metadata:         req.Metadata,
		Active:           req.Active,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, product)
}

func (ph *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := ph.productService.Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (ph *ProductHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	product, err := ph.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, product)
}

func (ph *ProductHandler) List(c *gin.Context) {
	products, err := ph.productService.List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, products)
}

func toProductInput(req productRequest) services.ProductInput {
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	return services.ProductInput{
		Name:             req.Name,
		Description:      req.Description,
		Price:            req.Price,
		ProductTypeID:    req.ProductTypeID,
		ClassificationID: req.ClassificationID,
		StatusID:         req.StatusID,
		Metadata:         req.Metadata,
		Active:           active,
	}
}
