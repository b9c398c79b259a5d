package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/highvale/orchard-backend/internal/services"
	"github.com/highvale/orchard-backend/internal/types"
)

type FinanceHandler struct {
	financeService services.FinanceService
}

func NewFinanceHandler(financeService services.FinanceService) *FinanceHandler {
	return &FinanceHandler{financeService: financeService}
}

func (fh *FinanceHandler) Create(c *gin.Context) {
	var req struct {
		Date        *time.Time `json:"date"`
		Description string     `json:"description"`
		Category    string     `json:"category"`
		Amount      float64    `json:"amount"`
		EntryType   string     `json:"entry_type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	entry := types.FinancialEntry{
		Description: req.Description,
		Category:    types.FinanceCategory(req.Category),
		Amount:      req.Amount,
		EntryType:   types.EntryType(req.EntryType),
	}
	if req.Date != nil {
		entry.Date = *req.Date
	}
	created, err := fh.financeService.RecordEntry(c.Request.Context(), &entry)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (fh *FinanceHandler) List(c *gin.Context) {
	entries, err := fh.financeService.ListEntries(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, entries)
}

func (fh *FinanceHandler) Totals(c *gin.Context) {
	totals, err := fh.financeService.Totals(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, totals)
}

func (fh *FinanceHandler) TotalsByCategory(c *gin.Context) {
	totals, err := fh.financeService.TotalsByCategory(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, totals)
}
