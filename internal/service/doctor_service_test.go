package service

import (
	"testing"

	"clinic-appointments-api/internal/models"
)

func TestDoctorFieldChecks(t *testing.T) {
	valid := models.Doctor{
		FirstName:       "Elena",
		PaternalSurname: "Camacho",
		MaternalSurname: "Ramirez",
		Specialty:       "Cardiology",
	}

	tests := []struct {
		name  string
		morph func(d *models.Doctor)
		want  string
	}{
		{"blank first name", func(d *models.Doctor) { d.FirstName = "  " }, "first_name is required"},
		{"blank paternal surname", func(d *models.Doctor) { d.PaternalSurname = "" }, "paternal_surname is required"},
		{"blank maternal surname", func(d *models.Doctor) { d.MaternalSurname = "" }, "maternal_surname is required"},
		{"blank specialty", func(d *models.Doctor) { d.Specialty = "" }, "specialty is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid
			tt.morph(&d)
			// A nil repo proves the check runs before any persistence.
			err := NewDoctorService(nil).Create(&d)
			mustBeRejected(t, err, tt.want)
		})
	}

	d := valid
	d.FirstName = "  Elena  "
	if err := checkDoctorFields(&d); err != nil {
		t.Fatalf("checkDoctorFields error: %v", err)
	}
	if d.FirstName != "Elena" {
		t.Fatalf("first name = %q, want trimmed", d.FirstName)
	}
}

func TestRoomFieldChecks(t *testing.T) {
	tests := []struct {
		name string
		room models.Room
		want string
	}{
		{"zero number", models.Room{Number: 0, Floor: 1}, "number must be a positive integer"},
		{"negative number", models.Room{Number: -3, Floor: 1}, "number must be a positive integer"},
		{"zero floor", models.Room{Number: 101, Floor: 0}, "floor must be a positive integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRoomService(nil).Create(&tt.room)
			mustBeRejected(t, err, tt.want)
		})
	}

	if err := checkRoomFields(&models.Room{Number: 101, Floor: 2}); err != nil {
		t.Fatalf("checkRoomFields error: %v", err)
	}
}
