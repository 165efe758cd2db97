package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mvaldebenito/gamestore-backend/internal/services"
)

type addressRequest struct {
	UserID   uuid.UUID `json:"user_id"`
	ComunaID uuid.UUID `json:"comuna_id"`
	Street   string    `json:"street"`
	Number   string    `json:"number"`
	Extra    string    `json:"extra"`
}

type addressPatchRequest struct {
	ComunaID *uuid.UUID `json:"comuna_id"`
	Street   *string    `json:"street"`
	Number   *string    `json:"number"`
	Extra    *string    `json:"extra"`
}

type AddressHandler struct {
	addressService services.AddressService
}

func NewAddressHandler(addressService services.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService}
}

func (ah *AddressHandler) Create(c *gin.Context) {
	var req addressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	address, err := ah.addressService.Create(c.Request.Context(), services.AddressInput{
		UserID:   req.UserID,
		ComunaID: req.ComunaID,
		Street:   req.Street,
		Number:   req.Number,
		Extra:    req.Extra,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondCreated(c, address)
}

func (ah *AddressHandler) Replace(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req addressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	address, err := ah.addressService.Replace(c.Request.Context(), id, services.AddressInput{
		UserID:   req.UserID,
		ComunaID: req.ComunaID,
		Street:   req.Street,
		Number:   req.Number,
		Extra:    req.Extra,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, address)
}

func (ah *AddressHandler) Patch(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req addressPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	address, err := ah.addressService.Patch(c.Request.Context(), id, services.AddressPatch{
		ComunaID: req.ComunaID,
		Street:   req.Street,
		Number:   req.Number,
		Extra:    req.Extra,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, address)
}

func (ah *AddressHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := ah.addressService.Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (ah *AddressHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	address, err := ah.addressService.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, address)
}

func (ah *AddressHandler) ListByUser(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	addresses, err := ah.addressService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, addresses)
}
