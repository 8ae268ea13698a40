package models

import "time"

// Cleaning status values. Write paths accept TODO / DOING / DONE; reads
// fill PENDING for areas without a recorded fact that day.
const (
	CleaningStatusPending = "PENDING"
	CleaningStatusTodo    = "TODO"
	CleaningStatusDoing   = "DOING"
	CleaningStatusDone    = "DONE"
)

// CleaningArea is the static catalog of which areas exist per room.
type CleaningArea struct {
	RoomNumber string `gorm:"column:room_number;primaryKey;type:varchar(50)"`
	AreaCode   string `gorm:"column:area_code;primaryKey;type:varchar(20)"`
	AreaName   string `gorm:"column:area_name;type:varchar(100)"`
	IsActive   bool   `gorm:"column:is_active;default:true"`
}

func (CleaningArea) TableName() string { return "cleaning_areas" }

// CleaningStatus is the daily fact table, one row per (room, area, date).
// The date is stored as yyyy-MM-dd text so the composite key compares the
// same on MySQL and the sqlite test databases.
type CleaningStatus struct {
	ID           int64     `gorm:"primaryKey;column:id"`
	RoomNumber   string    `gorm:"column:room_number;type:varchar(50);uniqueIndex:uniq_room_area_date"`
	AreaCode     string    `gorm:"column:area_code;type:varchar(20);uniqueIndex:uniq_room_area_date"`
	CleaningDate string    `gorm:"column:cleaning_date;type:varchar(10);uniqueIndex:uniq_room_area_date"`
	Status       string    `gorm:"column:status;type:varchar(10)"`
	CleanerID    *int64    `gorm:"column:cleaner_id"`
	CleanerName  *string   `gorm:"column:cleaner_name;type:varchar(100)"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (CleaningStatus) TableName() string { return "cleaning_status" }

type CleaningAreaStatus struct {
	AreaCode    string  `json:"areaCode"`
	AreaName    string  `json:"areaName"`
	Status      string  `json:"status"`
	CleanerName *string `json:"cleanerName"`
}

type RoomCleaningStatus struct {
	RoomNumber string               `json:"roomNumber"`
	Areas      []CleaningAreaStatus `json:"areas"`
}

type CleaningUpdateRequest struct {
	RoomNumber  string  `json:"roomNumber"`
	AreaCode    string  `json:"areaCode"`
	Status      string  `json:"status"`
	CleanerID   *int64  `json:"cleanerId"`
	CleanerName *string `json:"cleanerName"`
}

type QrCompleteRequest struct {
	RoomNumber  string  `json:"roomNumber"`
	AreaCode    string  `json:"areaCode"`
	CleanerID   *int64  `json:"cleanerId"`
	CleanerName *string `json:"cleanerName"`
}
