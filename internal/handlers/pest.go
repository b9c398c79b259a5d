package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/highvale/orchard-backend/internal/services"
	"github.com/highvale/orchard-backend/internal/types"
)

type PestHandler struct {
	pestService services.PestService
}

func NewPestHandler(pestService services.PestService) *PestHandler {
	return &PestHandler{pestService: pestService}
}

func (ph *PestHandler) Create(c *gin.Context) {
	var req struct {
		TreeBlockID     uuid.UUID  `json:"tree_block_id"`
		PestType        string     `json:"pest_type"`
		TreatmentStep   int        `json:"treatment_step"`
		Chemical        string     `json:"chemical"`
		Dosage          string     `json:"dosage"`
		ApplicationDate *time.Time `json:"application_date"`
		NextDue         *time.Time `json:"next_due"`
		Cost            float64    `json:"cost"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	treatment := types.PestTreatment{
		TreeBlockID:   req.TreeBlockID,
		PestType:      types.PestType(req.PestType),
		TreatmentStep: req.TreatmentStep,
		Chemical:      req.Chemical,
		Dosage:        req.Dosage,
		NextDue:       req.NextDue,
		Cost:          req.Cost,
	}
	if req.ApplicationDate != nil {
		treatment.ApplicationDate = *req.ApplicationDate
	}
	created, err := ph.pestService.ScheduleTreatment(c.Request.Context(), &treatment)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (ph *PestHandler) List(c *gin.Context) {
	treatments, err := ph.pestService.ListTreatments(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, treatments)
}

func (ph *PestHandler) Complete(c *gin.Context) {
	treatmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req struct {
		Effectiveness *string `json:"effectiveness"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	var effectiveness *types.Effectiveness
	if req.Effectiveness != nil {
		eff := types.Effectiveness(*req.Effectiveness)
		effectiveness = &eff
	}
	if err := ph.pestService.CompleteTreatment(c.Request.Context(), treatmentID, effectiveness); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"id": treatmentID, "completed": true})
}

func (ph *PestHandler) Summary(c *gin.Context) {
	summary, err := ph.pestService.Summary(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, summary)
}
