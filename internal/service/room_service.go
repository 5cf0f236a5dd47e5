package service

import (
	"fmt"

	"clinic-appointments-api/internal/models"
	"clinic-appointments-api/internal/repository"
)

type RoomService struct {
	repo *repository.RoomRepository
}

func NewRoomService(repo *repository.RoomRepository) *RoomService {
	return &RoomService{repo: repo}
}

// FindAll retrieves all rooms
func (s *RoomService) FindAll() ([]models.Room, error) {
	return s.repo.GetAll()
}

// FindByID retrieves a room by ID
func (s *RoomService) FindByID(id uint) (*models.Room, error) {
	return s.repo.GetByID(id)
}

// Create validates and persists a new room
func (s *RoomService) Create(room *models.Room) error {
	if err := checkRoomFields(room); err != nil {
		return err
	}
	if err := s.repo.Create(room); err != nil {
		return fmt.Errorf("saving room: %w", err)
	}
	return nil
}

// Update replaces all fields of an existing room
func (s *RoomService) Update(id uint, in *models.Room) (*models.Room, error) {
	if err := checkRoomFields(in); err != nil {
		return nil, err
	}
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	existing.Number = in.Number
	existing.Floor = in.Floor
	if err := s.repo.Update(existing); err != nil {
		return nil, fmt.Errorf("saving room: %w", err)
	}
	return existing, nil
}

// Delete removes a room by ID
func (s *RoomService) Delete(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("deleting room: %w", err)
	}
	return nil
}

func checkRoomFields(room *models.Room) error {
	if room.Number <= 0 {
		return validationError("number must be a positive integer")
	}
	if room.Floor <= 0 {
		return validationError("floor must be a positive integer")
	}
	return nil
}
