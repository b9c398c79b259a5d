package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/highvale/orchard-backend/internal/services"
	"github.com/highvale/orchard-backend/internal/types"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (uh *UserHandler) List(c *gin.Context) {
	users, err := uh.userService.ListUsers(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, users)
}

func (uh *UserHandler) Invite(c *gin.Context) {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	user, err := uh.userService.InviteUser(c.Request.Context(), req.Name, req.Email, types.UserRole(req.Role))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (uh *UserHandler) Activate(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := uh.userService.ActivateUser(c.Request.Context(), userID); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"id": userID, "status": types.UserStatusActive})
}

func (uh *UserHandler) Summary(c *gin.Context) {
	summary, err := uh.userService.Summary(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, summary)
}
