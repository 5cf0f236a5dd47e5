package repository

import (
	"errors"

	"clinic-appointments-api/internal/models"

	"gorm.io/gorm"
)

type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepo(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

// GetAll retrieves all doctors
func (r *DoctorRepository) GetAll() ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := r.db.Order("paternal_surname ASC, first_name ASC").Find(&doctors).Error
	return doctors, err
}

// GetByID retrieves a doctor by ID
func (r *DoctorRepository) GetByID(id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.First(&doctor, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doctor, nil
}

// Create inserts a new doctor
func (r *DoctorRepository) Create(doctor *models.Doctor) error {
	return r.db.Create(doctor).Error
}

// Update saves all fields of an existing doctor
func (r *DoctorRepository) Update(doctor *models.Doctor) error {
	return r.db.Save(doctor).Error
}

// Delete removes a doctor by ID
func (r *DoctorRepository) Delete(id uint) error {
	return r.db.Delete(&models.Doctor{}, id).Error
}
