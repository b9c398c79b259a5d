package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/highvale/orchard-backend/internal/services"
	"github.com/highvale/orchard-backend/internal/types"
)

type EquipmentHandler struct {
	equipmentService services.EquipmentService
}

func NewEquipmentHandler(equipmentService services.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{equipmentService: equipmentService}
}

func (eh *EquipmentHandler) Create(c *gin.Context) {
	var req struct {
		Name            string     `json:"name"`
		Type            string     `json:"type"`
		Ownership       string     `json:"ownership"`
		DailyCost       float64    `json:"daily_cost"`
		Condition       string     `json:"condition"`
		LastMaintenance *time.Time `json:"last_maintenance"`
		NextService     *time.Time `json:"next_service"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	eq := types.Equipment{
		Name:      req.Name,
		Type:      req.Type,
		Ownership: types.Ownership(req.Ownership),
		DailyCost: req.DailyCost,
		Condition: types.Condition(req.Condition),
	}
	if req.LastMaintenance != nil {
		eq.LastMaintenance = *req.LastMaintenance
	}
	if req.NextService != nil {
		eq.NextService = *req.NextService
	}
	created, err := eh.equipmentService.AddEquipment(c.Request.Context(), &eq)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (eh *EquipmentHandler) List(c *gin.Context) {
	equipment, err := eh.equipmentService.ListEquipment(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, equipment)
}

func (eh *EquipmentHandler) UpdateCondition(c *gin.Context) {
	equipmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req struct {
		Condition string `json:"condition"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if err := eh.equipmentService.UpdateCondition(c.Request.Context(), equipmentID, types.Condition(req.Condition)); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"id": equipmentID, "condition": req.Condition})
}

func (eh *EquipmentHandler) Summary(c *gin.Context) {
	summary, err := eh.equipmentService.Summary(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, summary)
}
