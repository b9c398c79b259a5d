package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/highvale/orchard-backend/internal/services"
)

type VarietyHandler struct {
	varietyService services.VarietyService
}

func NewVarietyHandler(varietyService services.VarietyService) *VarietyHandler {
	return &VarietyHandler{varietyService: varietyService}
}

func (vh *VarietyHandler) List(c *gin.Context) {
	varieties, err := vh.varietyService.ListVarieties(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, varieties)
}

func (vh *VarietyHandler) Get(c *gin.Context) {
	info, err := vh.varietyService.GetVariety(c.Request.Context(), c.Param("name"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, info)
}
