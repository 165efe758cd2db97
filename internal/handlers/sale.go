package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mvaldebenito/gamestore-backend/internal/services"
)

type saleItemRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
}

// Request bodies for sales deliberately have no total or subtotal fields;
// those are derived and cannot be supplied.
type createSaleRequest struct {
	UserID           uuid.UUID         `json:"user_id"`
	PaymentMethodID  uuid.UUID         `json:"payment_method_id"`
	ShippingMethodID uuid.UUID         `json:"shipping_method_id"`
	StatusID         uuid.UUID         `json:"status_id"`
	PurchaseDate     *string           `json:"purchase_date"`
	PurchaseTime     *string           `json:"purchase_time"`
	Items            []saleItemRequest `json:"items"`
}

type replaceSaleRequest struct {
	PaymentMethodID  uuid.UUID `json:"payment_method_id"`
	ShippingMethodID uuid.UUID `json:"shipping_method_id"`
	StatusID         uuid.UUID `json:"status_id"`
	PurchaseDate     string    `json:"purchase_date"`
	PurchaseTime     string    `json:"purchase_time"`
}

type patchSaleRequest struct {
	PaymentMethodID  *uuid.UUID `json:"payment_method_id"`
	ShippingMethodID *uuid.UUID `json:"shipping_method_id"`
	StatusID         *uuid.UUID `json:"status_id"`
	PurchaseDate     *string    `json:"purchase_date"`
	PurchaseTime     *string    `json:"purchase_time"`
}

type patchSaleItemRequest struct {
	ProductID *uuid.UUID `json:"product_id"`
	Quantity  *int       `json:"quantity"`
	UnitPrice *float64   `json:"unit_price"`
}

type SaleHandler struct {
	saleService     services.SaleService
	saleItemService services.SaleItemService
}

func NewSaleHandler(saleService services.SaleService, saleItemService services.SaleItemService) *SaleHandler {
	return &SaleHandler{saleService: saleService, saleItemService: saleItemService}
}

func (sh *SaleHandler) Create(c *gin.Context) {
	var req createSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	items := make([]services.SaleItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = services.SaleItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}
	sale, err := sh.saleService.Create(c.Request.Context(), services.CreateSaleInput{
		UserID:           req.UserID,
		PaymentMethodID:  req.PaymentMethodID,
		ShippingMethodID: req.ShippingMethodID,
		StatusID:         req.StatusID,
		PurchaseDate:     req.PurchaseDate,
		PurchaseTime:     req.PurchaseTime,
		Items:            items,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondCreated(c, sale)
}

func (sh *SaleHandler) Replace(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req replaceSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	sale, err := sh.saleService.Replace(c.Request.Context(), id, services.ReplaceSaleInput{
		PaymentMethodID:  req.PaymentMethodID,
		ShippingMethodID: req.ShippingMethodID,
		StatusID:         req.StatusID,
		PurchaseDate:     req.PurchaseDate,
		PurchaseTime:     req.PurchaseTime,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, sale)
}

func (sh *SaleHandler) Patch(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req patchSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	sale, err := sh.saleService.Patch(c.Request.Context(), id, services.PatchSaleInput{
		PaymentMethodID:  req.PaymentMethodID,
		ShippingMethodID: req.ShippingMethodID,
		StatusID:         req.StatusID,
		PurchaseDate:     req.PurchaseDate,
		PurchaseTime:     req.PurchaseTime,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, sale)
}

func (sh *SaleHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := sh.saleService.Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (sh *SaleHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	sale, err := sh.saleService.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, sale)
}

func (sh *SaleHandler) ListByUser(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	sales, err := sh.saleService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, sales)
}

func (sh *SaleHandler) PatchItem(c *gin.Context) {
	itemID, ok := parseUUIDParam(c, "itemID")
	if !ok {
		return
	}
	var req patchSaleItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	item, err := sh.saleItemService.Patch(c.Request.Context(), itemID, services.SaleItemPatch{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, item)
}

func (sh *SaleHandler) DeleteItem(c *gin.Context) {
	itemID, ok := parseUUIDParam(c, "itemID")
	if !ok {
		return
	}
	if err := sh.saleItemService.Delete(c.Request.Context(), itemID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
