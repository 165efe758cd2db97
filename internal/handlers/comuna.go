package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mvaldebenito/gamestore-backend/internal/services"
)

type comunaRequest struct {
	RegionID uuid.UUID `json:"region_id"`
	Name     string    `json:"name"`
	Active   *bool     `json:"active"`
}

type comunaPatchRequest struct {
	RegionID *uuid.UUID `json:"region_id"`
	Name     *string    `json:"name"`
	Active   *bool      `json:"active"`
}

type ComunaHandler struct {
	comunaService services.ComunaService
}

func NewComunaHandler(comunaService services.ComunaService) *ComunaHandler {
	return &ComunaHandler{comunaService: comunaService}
}

func (ch *ComunaHandler) Create(c *gin.Context) {
	var req comunaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	comuna, err := ch.comunaService.Create(c.Request.Context(), services.ComunaInput{
		RegionID: req.RegionID,
		Name:     req.Name,
		Active:   active,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondCreated(c, comuna)
}

func (ch *ComunaHandler) Replace(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req comunaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	comuna, err := ch.comunaService.Replace(c.Request.Context(), id, services.ComunaInput{
		RegionID: req.RegionID,
		Name:     req.Name,
		Active:   active,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, comuna)
}

func (ch *ComunaHandler) Patch(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req comunaPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	comuna, err := ch.comunaService.Patch(c.Request.Context(), id, services.ComunaPatch{
		RegionID: req.RegionID,
		Name:     req.Name,
		Active:   req.Active,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, comuna)
}

func (ch *ComunaHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := ch.comunaService.Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (ch *ComunaHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	comuna, err := ch.comunaService.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, comuna)
}

func (ch *ComunaHandler) ListByRegion(c *gin.Context) {
	regionID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	comunas, err := ch.comunaService.ListByRegion(c.Request.Context(), regionID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, comunas)
}
