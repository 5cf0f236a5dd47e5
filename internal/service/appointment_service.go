package service

import (
	"fmt"
	"strings"
	"time"

	"clinic-appointments-api/internal/models"
	"clinic-appointments-api/internal/repository"
)

const (
	// patientSpacing is the minimum wall-clock gap between two
	// appointments for the same patient on the same day.
	patientSpacing = 2 * time.Hour

	// maxDailyAppointments caps how many appointments a doctor may hold
	// within one calendar day.
	maxDailyAppointments = 8
)

type AppointmentService struct {
	repo repository.AppointmentStore
}

func NewAppointmentService(repo repository.AppointmentStore) *AppointmentService {
	return &AppointmentService{repo: repo}
}

// FindAll retrieves every appointment
func (s *AppointmentService) FindAll() ([]models.Appointment, error) {
	return s.repo.ListAll()
}

// FindByID retrieves a single appointment
func (s *AppointmentService) FindByID(id uint) (*models.Appointment, error) {
	return s.repo.FindByID(id)
}

// Create admits and persists a new appointment. Field checks and the
// admission rules run before the save; rule evaluation and the save
// share one store transaction so a concurrent request for the same slot
// cannot slip between the check and the write.
func (s *AppointmentService) Create(appt *models.Appointment) error {
	if err := checkFields(appt); err != nil {
		return err
	}
	return s.repo.InTransaction(func(store repository.AppointmentStore) error {
		if err := ValidateAdmission(appt, store); err != nil {
			return err
		}
		if err := store.Save(appt); err != nil {
			return fmt.Errorf("saving appointment: %w", err)
		}
		return nil
	})
}

// Update replaces all mutable fields of an existing appointment and
// revalidates the merged result, not the delta. The stored row being
// edited stays visible to the admission queries, so an edit that keeps
// the original slot can collide with itself; this matches the behavior
// the rules were specified against.
func (s *AppointmentService) Update(id uint, in *models.Appointment) (*models.Appointment, error) {
	if err := checkFields(in); err != nil {
		return nil, err
	}
	var updated *models.Appointment
	err := s.repo.InTransaction(func(store repository.AppointmentStore) error {
		existing, err := store.FindByID(id)
		if err != nil {
			return err
		}
		existing.RoomID = in.RoomID
		existing.DoctorID = in.DoctorID
		existing.PatientName = strings.TrimSpace(in.PatientName)
		existing.StartTime = in.StartTime
		existing.Room = models.Room{}
		existing.Doctor = models.Doctor{}
		if err := ValidateAdmission(existing, store); err != nil {
			return err
		}
		if err := store.Save(existing); err != nil {
			return fmt.Errorf("saving appointment: %w", err)
		}
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteByID removes an appointment without any temporal guard
func (s *AppointmentService) DeleteByID(id uint) error {
	if err := s.repo.DeleteByID(id); err != nil {
		return fmt.Errorf("deleting appointment: %w", err)
	}
	return nil
}

// Cancel removes an appointment that has not happened yet. A missing id
// yields repository.ErrNotFound; an appointment whose start is not
// strictly in the future is rejected.
func (s *AppointmentService) Cancel(id uint) error {
	appt, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if !appt.StartTime.After(time.Now()) {
		return validationError("cannot cancel a past appointment")
	}
	if err := s.repo.DeleteByID(id); err != nil {
		return fmt.Errorf("deleting appointment: %w", err)
	}
	return nil
}

// Search filters appointments by day and, within a day, by room or
// doctor. With a date, the room filter takes priority over the doctor
// filter when both are supplied. Without a date every other filter is
// ignored and the full set is returned. Zero roomID/doctorID means
// "not given".
func (s *AppointmentService) Search(date *time.Time, roomID, doctorID uint) ([]models.Appointment, error) {
	if date == nil {
		return s.repo.ListAll()
	}
	dayStart, dayEnd := dayBounds(*date)
	switch {
	case roomID != 0:
		return s.repo.ListByRoomAndStartBetween(roomID, dayStart, dayEnd)
	case doctorID != 0:
		return s.repo.ListByDoctorAndStartBetween(doctorID, dayStart, dayEnd)
	default:
		return s.repo.ListByStartBetween(dayStart, dayEnd)
	}
}

// ValidateAdmission decides whether an appointment may be persisted
// given the existing appointment set. It issues only read queries and
// never mutates the store; the first failing rule wins and comes back as
// a *ValidationError. Callers run it inside the same transaction as the
// subsequent save.
//
// Overlap rules are one-sided on purpose: a candidate is rejected when
// an existing appointment *starts* inside the candidate's hour, not on
// full interval intersection. Narrowing or widening that window changes
// which schedules are accepted.
func ValidateAdmission(appt *models.Appointment, store repository.AppointmentStore) error {
	start := appt.StartTime
	end := appt.End()

	// Rule 1: no two appointments share a room in the same hour.
	taken, err := store.ExistsByRoomAndStartBetween(appt.RoomID, start, end)
	if err != nil {
		return fmt.Errorf("checking room availability: %w", err)
	}
	if taken {
		return validationError("the room already has an appointment at that time")
	}

	// Rule 2: no two appointments share a doctor in the same hour.
	taken, err = store.ExistsByDoctorAndStartBetween(appt.DoctorID, start, end)
	if err != nil {
		return fmt.Errorf("checking doctor availability: %w", err)
	}
	if taken {
		return validationError("the doctor already has an appointment at that time")
	}

	dayStart, dayEnd := dayBounds(start)

	// Rule 3: a patient needs at least 2 hours between appointments on
	// the same day.
	sameDay, err := store.ListByPatientAndStartBetween(appt.PatientName, dayStart, dayEnd)
	if err != nil {
		return fmt.Errorf("checking patient schedule: %w", err)
	}
	for _, other := range sameDay {
		gap := other.StartTime.Sub(start)
		if gap < 0 {
			gap = -gap
		}
		if gap < patientSpacing {
			return validationError("the patient already has an appointment less than 2 hours apart that day")
		}
	}

	// Rule 4: a doctor holds at most 8 appointments per calendar day.
	// The count window is inclusive up to the day's last second.
	count, err := store.CountByDoctorAndStartBetween(appt.DoctorID, dayStart, dayEnd.Add(-time.Second))
	if err != nil {
		return fmt.Errorf("checking doctor daily load: %w", err)
	}
	if count >= maxDailyAppointments {
		return validationError("the doctor cannot have more than 8 appointments in one day")
	}

	return nil
}

// checkFields validates the candidate's own fields before the admission
// rules run. Start times must be strictly in the future at admission
// time; the rule engine itself never consults the clock.
func checkFields(appt *models.Appointment) error {
	if appt.RoomID == 0 {
		return validationError("room_id is required")
	}
	if appt.DoctorID == 0 {
		return validationError("doctor_id is required")
	}
	if strings.TrimSpace(appt.PatientName) == "" {
		return validationError("patient_name is required")
	}
	appt.PatientName = strings.TrimSpace(appt.PatientName)
	if appt.StartTime.IsZero() {
		return validationError("start_time is required")
	}
	if !appt.StartTime.After(time.Now()) {
		return validationError("start_time must be in the future")
	}
	return nil
}

func dayBounds(t time.Time) (time.Time, time.Time) {
	dayStart := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return dayStart, dayStart.Add(24 * time.Hour)
}
