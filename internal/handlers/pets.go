// internal/handlers/pets.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/petville/petcare-backend/internal/models"
	"github.com/petville/petcare-backend/internal/services"
	"github.com/petville/petcare-backend/internal/utils"
)

type PetHandler struct {
	petService *services.PetService
}

func NewPetHandler(petService *services.PetService) *PetHandler {
	return &PetHandler{petService: petService}
}

// GET /pets
func (h *PetHandler) GetPets(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{"pets": h.petService.ListPets()})
}

// GET /pets/:id
func (h *PetHandler) GetPet(c *gin.Context) {
	pet, err := h.petService.GetPet(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Pet")
		return
	}
	utils.SuccessResponse(c, pet)
}

// POST /pets
func (h *PetHandler) AddPet(c *gin.Context) {
	var req services.AddPetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	pet, err := h.petService.AddPet(&req)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.CreatedResponse(c, pet)
}

// PUT /pets/:id
func (h *PetHandler) UpdatePet(c *gin.Context) {
	var pet models.Pet
	if err := c.ShouldBindJSON(&pet); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}
	pet.ID = c.Param("id")

	if err := h.petService.UpdatePet(pet); err != nil {
		utils.NotFoundResponse(c, "Pet")
		return
	}
	utils.SuccessResponse(c, pet)
}

// GET /pets/:id/vaccines
func (h *PetHandler) GetVaccineRecords(c *gin.Context) {
	records, err := h.petService.VaccineRecords(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Pet")
		return
	}
	utils.SuccessResponse(c, gin.H{"records": records})
}

// POST /pets/:id/vaccines
func (h *PetHandler) AddVaccineRecord(c *gin.Context) {
	var req services.AddVaccineRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	record, err := h.petService.AddVaccineRecord(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Pet")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.CreatedResponse(c, record)
}

// GET /vaccines/recommendations?species=Dog
func (h *PetHandler) GetRecommendations(c *gin.Context) {
	species := models.PetSpecies(c.DefaultQuery("species", string(models.SpeciesDog)))
	utils.SuccessResponse(c, gin.H{
		"recommendations": h.petService.Recommendations(species),
	})
}
