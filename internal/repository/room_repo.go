package repository

import (
	"errors"

	"clinic-appointments-api/internal/models"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepo(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// GetAll retrieves all rooms
func (r *RoomRepository) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.Order("floor ASC, number ASC").Find(&rooms).Error
	return rooms, err
}

// GetByID retrieves a room by ID
func (r *RoomRepository) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	err := r.db.First(&room, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &room, nil
}

// Create inserts a new room
func (r *RoomRepository) Create(room *models.Room) error {
	return r.db.Create(room).Error
}

// Update saves all fields of an existing room
func (r *RoomRepository) Update(room *models.Room) error {
	return r.db.Save(room).Error
}

// Delete removes a room by ID
func (r *RoomRepository) Delete(id uint) error {
	return r.db.Delete(&models.Room{}, id).Error
}
