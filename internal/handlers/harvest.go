package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/highvale/orchard-backend/internal/services"
	"github.com/highvale/orchard-backend/internal/types"
)

type HarvestHandler struct {
	harvestService services.HarvestService
}

func NewHarvestHandler(harvestService services.HarvestService) *HarvestHandler {
	return &HarvestHandler{harvestService: harvestService}
}

func (hh *HarvestHandler) Create(c *gin.Context) {
	var req struct {
		TreeBlockID     uuid.UUID  `json:"tree_block_id"`
		BinCount        float64    `json:"bin_count"`
		QualityGrade    string     `json:"quality_grade"`
		HarvestDate     *time.Time `json:"harvest_date"`
		PricePerBin     float64    `json:"price_per_bin"`
		StorageLocation string     `json:"storage_location"`
		ShelfLifeDays   int        `json:"shelf_life_days"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	record := types.HarvestRecord{
		TreeBlockID:     req.TreeBlockID,
		BinCount:        req.BinCount,
		QualityGrade:    types.QualityGrade(req.QualityGrade),
		PricePerBin:     req.PricePerBin,
		StorageLocation: req.StorageLocation,
		ShelfLifeDays:   req.ShelfLifeDays,
	}
	if req.HarvestDate != nil {
		record.HarvestDate = *req.HarvestDate
	}
	created, err := hh.harvestService.RecordHarvest(c.Request.Context(), &record)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (hh *HarvestHandler) List(c *gin.Context) {
	records, err := hh.harvestService.ListHarvest(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, records)
}

func (hh *HarvestHandler) Summary(c *gin.Context) {
	summary, err := hh.harvestService.Summary(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, summary)
}
