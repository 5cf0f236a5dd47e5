package models

import "time"

// AppointmentDuration is the implicit length of every appointment.
// It is not stored; the schedule is a grid of 1-hour bookings.
const AppointmentDuration = time.Hour

// Appointment represents a scheduled 1-hour patient/doctor/room booking
type Appointment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RoomID      uint      `gorm:"not null;index" json:"room_id"`
	DoctorID    uint      `gorm:"not null;index" json:"doctor_id"`
	PatientName string    `gorm:"size:255;not null" json:"patient_name"`
	StartTime   time.Time `gorm:"not null;index" json:"start_time"`

	// Relationships
	Room   Room   `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

// TableName specifies the table name for Appointment model
func (Appointment) TableName() string {
	return "appointments"
}

// End returns the end of the appointment's hour slot.
func (a *Appointment) End() time.Time {
	return a.StartTime.Add(AppointmentDuration)
}
