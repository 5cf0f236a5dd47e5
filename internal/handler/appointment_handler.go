package handler

import (
	"net/http"
	"strconv"
	"time"

	"clinic-appointments-api/internal/models"
	"clinic-appointments-api/internal/service"
	"clinic-appointments-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	appointmentService *service.AppointmentService
}

func NewAppointmentHandler(appointmentService *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentService: appointmentService,
	}
}

// GetAllAppointments retrieves every appointment
func (h *AppointmentHandler) GetAllAppointments(c *gin.Context) {
	appts, err := h.appointmentService.FindAll()
	if err != nil {
		respondError(c, err, "Failed to fetch appointments")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"appointments": appts,
		"count":        len(appts),
	})
}

// GetAppointment retrieves a specific appointment by ID
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	appt, err := h.appointmentService.FindByID(uint(id))
	if err != nil {
		respondError(c, err, "Failed to fetch appointment")
		return
	}

	utils.SuccessResponse(c, appt)
}

// CreateAppointment admits and persists a new appointment
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var appt models.Appointment
	if err := c.ShouldBindJSON(&appt); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.appointmentService.Create(&appt); err != nil {
		respondError(c, err, "Failed to create appointment")
		return
	}

	utils.CreatedResponse(c, appt)
}

// UpdateAppointment replaces all fields of an existing appointment and
// revalidates the result
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	var appt models.Appointment
	if err := c.ShouldBindJSON(&appt); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	updated, err := h.appointmentService.Update(uint(id), &appt)
	if err != nil {
		respondError(c, err, "Failed to update appointment")
		return
	}

	utils.SuccessResponse(c, updated)
}

// DeleteAppointment removes an appointment by ID
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	if err := h.appointmentService.DeleteByID(uint(id)); err != nil {
		respondError(c, err, "Failed to delete appointment")
		return
	}

	c.Status(http.StatusNoContent)
}

// CancelAppointment removes an appointment that has not happened yet
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	if err := h.appointmentService.Cancel(uint(id)); err != nil {
		respondError(c, err, "Failed to cancel appointment")
		return
	}

	c.Status(http.StatusNoContent)
}

// SearchAppointments filters appointments by optional date, room and
// doctor query parameters
func (h *AppointmentHandler) SearchAppointments(c *gin.Context) {
	var date *time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid date, expected RFC 3339 or YYYY-MM-DD")
			return
		}
		date = &parsed
	}

	roomID, ok := parseOptionalID(c, "room_id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid room_id")
		return
	}
	doctorID, ok := parseOptionalID(c, "doctor_id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid doctor_id")
		return
	}

	appts, err := h.appointmentService.Search(date, roomID, doctorID)
	if err != nil {
		respondError(c, err, "Failed to search appointments")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"appointments": appts,
		"count":        len(appts),
	})
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

// parseOptionalID reads a query parameter as an id, with 0 meaning the
// parameter was absent.
func parseOptionalID(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
