package repository

import (
	"errors"
	"time"

	"clinic-appointments-api/internal/models"

	"gorm.io/gorm"
)

// AppointmentStore is the query surface the admission engine and the
// appointment service depend on. Exists/List windows are half-open
// (from inclusive, to exclusive); CountByDoctorAndStartBetween is
// inclusive on both bounds.
//
// InTransaction scopes a validate-then-persist sequence to one atomic
// unit. Two concurrent requests for the same room/doctor/slot must not
// both pass validation and both commit, so every caller that writes
// after querying has to do both through the store handed to fn.
type AppointmentStore interface {
	ExistsByRoomAndStartBetween(roomID uint, from, to time.Time) (bool, error)
	ExistsByDoctorAndStartBetween(doctorID uint, from, to time.Time) (bool, error)
	ExistsByPatientAndStartBetween(patientName string, from, to time.Time) (bool, error)
	ListByPatientAndStartBetween(patientName string, from, to time.Time) ([]models.Appointment, error)
	CountByDoctorAndStartBetween(doctorID uint, from, to time.Time) (int64, error)

	FindByID(id uint) (*models.Appointment, error)
	ListAll() ([]models.Appointment, error)
	ListByStartBetween(from, to time.Time) ([]models.Appointment, error)
	ListByRoomAndStartBetween(roomID uint, from, to time.Time) ([]models.Appointment, error)
	ListByDoctorAndStartBetween(doctorID uint, from, to time.Time) ([]models.Appointment, error)

	Save(appt *models.Appointment) error
	DeleteByID(id uint) error

	InTransaction(fn func(store AppointmentStore) error) error
}

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepo(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

var _ AppointmentStore = (*AppointmentRepository)(nil)

// InTransaction runs fn against a transaction-scoped repository. The
// transaction commits when fn returns nil and rolls back otherwise.
func (r *AppointmentRepository) InTransaction(fn func(store AppointmentStore) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&AppointmentRepository{db: tx})
	})
}

// ExistsByRoomAndStartBetween reports whether any appointment for the
// room starts within [from, to).
func (r *AppointmentRepository) ExistsByRoomAndStartBetween(roomID uint, from, to time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.Appointment{}).
		Where("room_id = ? AND start_time >= ? AND start_time < ?", roomID, from, to).
		Count(&count).Error
	return count > 0, err
}

// ExistsByDoctorAndStartBetween reports whether any appointment for the
// doctor starts within [from, to).
func (r *AppointmentRepository) ExistsByDoctorAndStartBetween(doctorID uint, from, to time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.Appointment{}).
		Where("doctor_id = ? AND start_time >= ? AND start_time < ?", doctorID, from, to).
		Count(&count).Error
	return count > 0, err
}

// ExistsByPatientAndStartBetween reports whether the patient has any
// appointment starting within [from, to). Retained for the legacy
// window-based spacing query; the engine's spacing rule uses
// ListByPatientAndStartBetween instead.
func (r *AppointmentRepository) ExistsByPatientAndStartBetween(patientName string, from, to time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.Appointment{}).
		Where("patient_name = ? AND start_time >= ? AND start_time < ?", patientName, from, to).
		Count(&count).Error
	return count > 0, err
}

// ListByPatientAndStartBetween retrieves the patient's appointments
// starting within [from, to), ordered by start time.
func (r *AppointmentRepository) ListByPatientAndStartBetween(patientName string, from, to time.Time) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.Where("patient_name = ? AND start_time >= ? AND start_time < ?", patientName, from, to).
		Order("start_time ASC").
		Find(&appts).Error
	return appts, err
}

// CountByDoctorAndStartBetween counts the doctor's appointments starting
// within [from, to], both bounds inclusive. Callers pass the last second
// of the day as the upper bound for daily-load counts.
func (r *AppointmentRepository) CountByDoctorAndStartBetween(doctorID uint, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Appointment{}).
		Where("doctor_id = ? AND start_time BETWEEN ? AND ?", doctorID, from, to).
		Count(&count).Error
	return count, err
}

// FindByID retrieves an appointment with its room and doctor preloaded
func (r *AppointmentRepository) FindByID(id uint) (*models.Appointment, error) {
	var appt models.Appointment
	err := r.db.Preload("Room").Preload("Doctor").First(&appt, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &appt, nil
}

// ListAll retrieves every appointment ordered by start time
func (r *AppointmentRepository) ListAll() ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.Preload("Room").Preload("Doctor").
		Order("start_time ASC").
		Find(&appts).Error
	return appts, err
}

// ListByStartBetween retrieves appointments starting within [from, to)
func (r *AppointmentRepository) ListByStartBetween(from, to time.Time) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.Preload("Room").Preload("Doctor").
		Where("start_time >= ? AND start_time < ?", from, to).
		Order("start_time ASC").
		Find(&appts).Error
	return appts, err
}

// ListByRoomAndStartBetween retrieves a room's appointments starting within [from, to)
func (r *AppointmentRepository) ListByRoomAndStartBetween(roomID uint, from, to time.Time) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.Preload("Room").Preload("Doctor").
		Where("room_id = ? AND start_time >= ? AND start_time < ?", roomID, from, to).
		Order("start_time ASC").
		Find(&appts).Error
	return appts, err
}

// ListByDoctorAndStartBetween retrieves a doctor's appointments starting within [from, to)
func (r *AppointmentRepository) ListByDoctorAndStartBetween(doctorID uint, from, to time.Time) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.Preload("Room").Preload("Doctor").
		Where("doctor_id = ? AND start_time >= ? AND start_time < ?", doctorID, from, to).
		Order("start_time ASC").
		Find(&appts).Error
	return appts, err
}

// Save inserts the appointment, assigning its id, or updates it in place
// when the id is already set.
func (r *AppointmentRepository) Save(appt *models.Appointment) error {
	return r.db.Omit("Room", "Doctor").Save(appt).Error
}

// DeleteByID removes an appointment. Deleting a missing id is not an error.
func (r *AppointmentRepository) DeleteByID(id uint) error {
	return r.db.Delete(&models.Appointment{}, id).Error
}
