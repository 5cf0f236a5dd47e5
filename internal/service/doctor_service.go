package service

import (
	"fmt"
	"strings"

	"clinic-appointments-api/internal/models"
	"clinic-appointments-api/internal/repository"
)

type DoctorService struct {
	repo *repository.DoctorRepository
}

func NewDoctorService(repo *repository.DoctorRepository) *DoctorService {
	return &DoctorService{repo: repo}
}

// FindAll retrieves all doctors
func (s *DoctorService) FindAll() ([]models.Doctor, error) {
	return s.repo.GetAll()
}

// FindByID retrieves a doctor by ID
func (s *DoctorService) FindByID(id uint) (*models.Doctor, error) {
	return s.repo.GetByID(id)
}

// Create validates and persists a new doctor
func (s *DoctorService) Create(doctor *models.Doctor) error {
	if err := checkDoctorFields(doctor); err != nil {
		return err
	}
	if err := s.repo.Create(doctor); err != nil {
		return fmt.Errorf("saving doctor: %w", err)
	}
	return nil
}

// Update replaces all fields of an existing doctor
func (s *DoctorService) Update(id uint, in *models.Doctor) (*models.Doctor, error) {
	if err := checkDoctorFields(in); err != nil {
		return nil, err
	}
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	existing.FirstName = in.FirstName
	existing.PaternalSurname = in.PaternalSurname
	existing.MaternalSurname = in.MaternalSurname
	existing.Specialty = in.Specialty
	if err := s.repo.Update(existing); err != nil {
		return nil, fmt.Errorf("saving doctor: %w", err)
	}
	return existing, nil
}

// Delete removes a doctor by ID
func (s *DoctorService) Delete(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("deleting doctor: %w", err)
	}
	return nil
}

func checkDoctorFields(doctor *models.Doctor) error {
	doctor.FirstName = strings.TrimSpace(doctor.FirstName)
	doctor.PaternalSurname = strings.TrimSpace(doctor.PaternalSurname)
	doctor.MaternalSurname = strings.TrimSpace(doctor.MaternalSurname)
	doctor.Specialty = strings.TrimSpace(doctor.Specialty)
	switch {
	case doctor.FirstName == "":
		return validationError("first_name is required")
	case doctor.PaternalSurname == "":
		return validationError("paternal_surname is required")
	case doctor.MaternalSurname == "":
		return validationError("maternal_surname is required")
	case doctor.Specialty == "":
		return validationError("specialty is required")
	}
	return nil
}
