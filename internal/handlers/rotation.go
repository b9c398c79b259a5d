package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/highvale/orchard-backend/internal/services"
)

type RotationHandler struct {
	rotationService services.RotationService
}

func NewRotationHandler(rotationService services.RotationService) *RotationHandler {
	return &RotationHandler{rotationService: rotationService}
}

func (rh *RotationHandler) List(c *gin.Context) {
	crops, err := rh.rotationService.ListBaseCrops(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, crops)
}

func (rh *RotationHandler) Get(c *gin.Context) {
	plan, err := rh.rotationService.GetPlan(c.Request.Context(), c.Param("crop"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, plan)
}
