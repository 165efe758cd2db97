package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mvaldebenito/gamestore-backend/internal/services"
	"github.com/mvaldebenito/gamestore-backend/internal/types"
)

type catalogRequest struct {
	Name        string `json:"name"`
	Active      *bool  `json:"active"`
	Description string `json:"description"`
}

type catalogPatchRequest struct {
	Name        *string `json:"name"`
	Active      *bool   `json:"active"`
	Description *string `json:"description"`
}

// CatalogHandler serves one lookup kind. The router instantiates it once per
// kind and mounts it under that kind's path.
type CatalogHandler[T any, PT interface {
	*T
	types.CatalogRecord
}] struct {
	service services.CatalogService[T, PT]
}

func NewCatalogHandler[T any, PT interface {
	*T
	types.CatalogRecord
}](service services.CatalogService[T, PT]) *CatalogHandler[T, PT] {
	return &CatalogHandler[T, PT]{service: service}
}

func (ch *CatalogHandler[T, PT]) Register(rg *gin.RouterGroup, path string) {
	rg.GET("/"+path, ch.List)
	rg.POST("/"+path, ch.Create)
	rg.GET("/"+path+"/:id", ch.GetByID)
	rg.PUT("/"+path+"/:id", ch.Replace)
	rg.PATCH("/"+path+"/:id", ch.Patch)
	rg.DELETE("/"+path+"/:id", ch.Delete)
}

func (ch *CatalogHandler[T, PT]) Create(c *gin.Context) {
	var req catalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	rec, err := ch.service.Create(c.Request.Context(), services.CatalogInput{
		Name:        req.Name,
		Active:      active,
		Description: req.Description,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondCreated(c, rec)
}

func (ch *CatalogHandler[T, PT]) Replace(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req catalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	rec, err := ch.service.Replace(c.Request.Context(), id, services.CatalogInput{
		Name:        req.Name,
		Active:      active,
		Description: req.Description,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, rec)
}

func (ch *CatalogHandler[T, PT]) Patch(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req catalogPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	rec, err := ch.service.Patch(c.Request.Context(), id, services.CatalogPatch{
		Name:        req.Name,
		Active:      req.Active,
		Description: req.Description,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, rec)
}

func (ch *CatalogHandler[T, PT]) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := ch.service.Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (ch *CatalogHandler[T, PT]) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	rec, err := ch.service.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, rec)
}

func (ch *CatalogHandler[T, PT]) List(c *gin.Context) {
	results, err := ch.service.List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, results)
}
