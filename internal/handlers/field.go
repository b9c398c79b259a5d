package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/highvale/orchard-backend/internal/services"
	"github.com/highvale/orchard-backend/internal/types"
)

type FieldHandler struct {
	fieldService services.FieldService
}

func NewFieldHandler(fieldService services.FieldService) *FieldHandler {
	return &FieldHandler{fieldService: fieldService}
}

func (fh *FieldHandler) Create(c *gin.Context) {
	var req struct {
		Name         string     `json:"name"`
		Area         float64    `json:"area"`
		Crop         string     `json:"crop"`
		PlantingDate *time.Time `json:"planting_date"`
		GrowthStage  string     `json:"growth_stage"`
		WeedState    string     `json:"weed_state"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	field := types.Field{
		Name:        req.Name,
		Area:        req.Area,
		Crop:        req.Crop,
		GrowthStage: types.GrowthStage(req.GrowthStage),
		WeedState:   types.WeedState(req.WeedState),
	}
	if req.PlantingDate != nil {
		field.PlantingDate = *req.PlantingDate
	}
	created, err := fh.fieldService.CreateField(c.Request.Context(), &field)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (fh *FieldHandler) List(c *gin.Context) {
	fields, err := fh.fieldService.ListFields(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, fields)
}

func (fh *FieldHandler) UpdateGrowthStage(c *gin.Context) {
	fieldID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req struct {
		GrowthStage string `json:"growth_stage"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if err := fh.fieldService.UpdateGrowthStage(c.Request.Context(), fieldID, types.GrowthStage(req.GrowthStage)); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"id": fieldID, "growth_stage": req.GrowthStage})
}

func (fh *FieldHandler) UpdateWeedState(c *gin.Context) {
	fieldID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req struct {
		WeedState string `json:"weed_state"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if err := fh.fieldService.UpdateWeedState(c.Request.Context(), fieldID, types.WeedState(req.WeedState)); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"id": fieldID, "weed_state": req.WeedState})
}

func (fh *FieldHandler) RecordFertilizer(c *gin.Context) {
	fieldID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req struct {
		Type   string     `json:"type"`
		Amount float64    `json:"amount"`
		Date   *time.Time `json:"date"`
		Cost   float64    `json:"cost"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	app := types.FertilizerApplication{
		FieldID: fieldID,
		Type:    req.Type,
		Amount:  req.Amount,
		Cost:    req.Cost,
	}
	if req.Date != nil {
		app.Date = *req.Date
	}
	created, err := fh.fieldService.RecordFertilizerApplication(c.Request.Context(), &app)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (fh *FieldHandler) Summary(c *gin.Context) {
	summary, err := fh.fieldService.Summary(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, summary)
}
