// internal/handlers/appointments.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/petville/petcare-backend/internal/services"
	"github.com/petville/petcare-backend/internal/utils"
)

type AppointmentHandler struct {
	appointmentService *services.AppointmentService
}

func NewAppointmentHandler(appointmentService *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// GET /appointments
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{"appointments": h.appointmentService.List()})
}

// POST /appointments
func (h *AppointmentHandler) BookAppointment(c *gin.Context) {
	var req services.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	appointment, err := h.appointmentService.Book(&req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Pet")
			return
		}
		if errors.Is(err, services.ErrAppointmentInPast) {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.CreatedResponse(c, appointment)
}
