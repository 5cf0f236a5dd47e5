package handler

import (
	"net/http"
	"strconv"

	"clinic-appointments-api/internal/models"
	"clinic-appointments-api/internal/service"
	"clinic-appointments-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	doctorService *service.DoctorService
}

func NewDoctorHandler(doctorService *service.DoctorService) *DoctorHandler {
	return &DoctorHandler{
		doctorService: doctorService,
	}
}

// GetAllDoctors retrieves every doctor
func (h *DoctorHandler) GetAllDoctors(c *gin.Context) {
	doctors, err := h.doctorService.FindAll()
	if err != nil {
		respondError(c, err, "Failed to fetch doctors")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"doctors": doctors,
		"count":   len(doctors),
	})
}

// GetDoctor retrieves a specific doctor by ID
func (h *DoctorHandler) GetDoctor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid doctor ID")
		return
	}

	doctor, err := h.doctorService.FindByID(uint(id))
	if err != nil {
		respondError(c, err, "Failed to fetch doctor")
		return
	}

	utils.SuccessResponse(c, doctor)
}

// CreateDoctor creates a new doctor
func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.doctorService.Create(&doctor); err != nil {
		respondError(c, err, "Failed to create doctor")
		return
	}

	utils.CreatedResponse(c, doctor)
}

// UpdateDoctor replaces all fields of an existing doctor
func (h *DoctorHandler) UpdateDoctor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid doctor ID")
		return
	}

	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	updated, err := h.doctorService.Update(uint(id), &doctor)
	if err != nil {
		respondError(c, err, "Failed to update doctor")
		return
	}

	utils.SuccessResponse(c, updated)
}

// DeleteDoctor removes a doctor by ID
func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid doctor ID")
		return
	}

	if err := h.doctorService.Delete(uint(id)); err != nil {
		respondError(c, err, "Failed to delete doctor")
		return
	}

	c.Status(http.StatusNoContent)
}
