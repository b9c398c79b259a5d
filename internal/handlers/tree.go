package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/highvale/orchard-backend/internal/services"
	"github.com/highvale/orchard-backend/internal/types"
)

type TreeHandler struct {
	treeService services.TreeService
}

func NewTreeHandler(treeService services.TreeService) *TreeHandler {
	return &TreeHandler{treeService: treeService}
}

func (th *TreeHandler) Create(c *gin.Context) {
	var req struct {
		FieldID       uuid.UUID `json:"field_id"`
		Variety       string    `json:"variety"`
		Row           int       `json:"row"`
		TreeCount     int       `json:"tree_count"`
		Status        string    `json:"status"`
		PlantingYear  int       `json:"planting_year"`
		YieldEstimate float64   `json:"yield_estimate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	block := types.TreeBlock{
		FieldID:       req.FieldID,
		Variety:       req.Variety,
		Row:           req.Row,
		TreeCount:     req.TreeCount,
		Status:        types.TreeStatus(req.Status),
		PlantingYear:  req.PlantingYear,
		YieldEstimate: req.YieldEstimate,
	}
	created, err := th.treeService.CreateTreeBlock(c.Request.Context(), &block)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (th *TreeHandler) List(c *gin.Context) {
	blocks, err := th.treeService.ListTreeBlocks(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, blocks)
}

func (th *TreeHandler) UpdateStatus(c *gin.Context) {
	blockID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if err := th.treeService.UpdateTreeStatus(c.Request.Context(), blockID, types.TreeStatus(req.Status)); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"id": blockID, "status": req.Status})
}

func (th *TreeHandler) Summary(c *gin.Context) {
	summary, err := th.treeService.Summary(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, summary)
}

func (th *TreeHandler) VarietyPerformance(c *gin.Context) {
	report, err := th.treeService.VarietyPerformance(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, report)
}
