package services

import (
	"gorm.io/gorm"

	"hotel-backoffice/models"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// GetAll lists every room, active or not, ordered by room number.
func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Order("room_number").Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) Create(room *models.Room) error {
	return s.DB.Create(room).Error
}

// Update replaces every mutable field of the room. Returns false when no
// row matched the id.
func (s *RoomService) Update(id int64, room models.Room) (bool, error) {
	res := s.DB.Model(&models.Room{}).Where("id = ?", id).Updates(map[string]interface{}{
		"room_number": room.RoomNumber,
		"room_type":   room.RoomType,
		"floor":       room.Floor,
		"note":        room.Note,
		"is_active":   room.IsActive,
	})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Deactivate soft-deletes a room. Inventory is never removed physically.
func (s *RoomService) Deactivate(id int64) (bool, error) {
	res := s.DB.Model(&models.Room{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
