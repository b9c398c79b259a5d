package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/highvale/orchard-backend/internal/repos"
	"github.com/highvale/orchard-backend/internal/services"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondServiceError maps service-layer failures onto HTTP statuses:
// rejected input is the caller's fault, a missing record is 404, anything
// else is a server error and the raw cause stays out of the response.
func RespondServiceError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		RespondError(c, http.StatusBadRequest, "invalid_input", verr)
	case errors.Is(err, repos.ErrNotFound):
		RespondError(c, http.StatusNotFound, "not_found", err)
	default:
		RespondError(c, http.StatusInternalServerError, "internal", errors.New("internal server error"))
	}
}
