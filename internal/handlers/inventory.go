package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/highvale/orchard-backend/internal/services"
	"github.com/highvale/orchard-backend/internal/types"
)

type InventoryHandler struct {
	inventoryService services.InventoryService
}

func NewInventoryHandler(inventoryService services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

func (ih *InventoryHandler) Create(c *gin.Context) {
	var req struct {
		Name         string     `json:"name"`
		ItemType     string     `json:"item_type"`
		Quantity     float64    `json:"quantity"`
		Unit         string     `json:"unit"`
		PricePerUnit float64    `json:"price_per_unit"`
		Supplier     string     `json:"supplier"`
		ExpiryDate   *time.Time `json:"expiry_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	item := types.InventoryItem{
		Name:         req.Name,
		ItemType:     types.ItemType(req.ItemType),
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		PricePerUnit: req.PricePerUnit,
		Supplier:     req.Supplier,
		ExpiryDate:   req.ExpiryDate,
	}
	created, err := ih.inventoryService.AddItem(c.Request.Context(), &item)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (ih *InventoryHandler) List(c *gin.Context) {
	items, err := ih.inventoryService.ListItems(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, items)
}

func (ih *InventoryHandler) UpdateQuantity(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req struct {
		Quantity float64 `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if err := ih.inventoryService.AdjustQuantity(c.Request.Context(), itemID, req.Quantity); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"id": itemID, "quantity": req.Quantity})
}

func (ih *InventoryHandler) Summary(c *gin.Context) {
	summary, err := ih.inventoryService.Summary(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, summary)
}
