// internal/handlers/profile.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/petville/petcare-backend/internal/models"
	"github.com/petville/petcare-backend/internal/utils"
)

type ProfileHandler struct {
	user models.User
}

func NewProfileHandler(user models.User) *ProfileHandler {
	return &ProfileHandler{user: user}
}

// GET /profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	utils.SuccessResponse(c, h.user)
}
