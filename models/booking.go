package models

import (
	"time"

	"gorm.io/datatypes"
)

// Booking is a stay record. Deletion is a flag plus audit fields; rows are
// never removed physically.
type Booking struct {
	ID            int64          `gorm:"primaryKey;column:id"`
	CustomerID    int64          `gorm:"column:customerid;index"`
	CheckInDate   datatypes.Date `gorm:"column:checkindate"`
	RoomNumber    string         `gorm:"column:roomnumber;type:varchar(50)"`
	BookingSource string         `gorm:"column:bookingsource;type:varchar(50)"`
	BookingName   string         `gorm:"column:bookingname;type:varchar(100)"`
	Amount        float64        `gorm:"column:amount"`
	IsDeleted     bool           `gorm:"column:isdeleted;default:false"`
	DeletedBy     string         `gorm:"column:deletedby;type:varchar(50)"`
	DeletedAt     *time.Time     `gorm:"column:deletedat"`
}

func (Booking) TableName() string { return "bookings" }

type BookingCreateRequest struct {
	IDNumber      string  `json:"idNumber"`
	CheckInDate   string  `json:"checkInDate"`
	RoomNumber    string  `json:"roomNumber"`
	BookingSource string  `json:"bookingSource"`
	BookingName   string  `json:"bookingName"`
	Amount        float64 `json:"amount"`
}

// BookingHistoryEntry renders the check-in date as yyyy/MM/dd for the
// front office list view.
type BookingHistoryEntry struct {
	ID            int64   `json:"id"`
	CustomerID    int64   `json:"customerId"`
	CheckInDate   string  `json:"checkInDate"`
	RoomNumber    string  `json:"roomNumber"`
	BookingSource string  `json:"bookingSource"`
	BookingName   string  `json:"bookingName"`
	Amount        float64 `json:"amount"`
}

func (b Booking) ToHistoryEntry() BookingHistoryEntry {
	return BookingHistoryEntry{
		ID:            b.ID,
		CustomerID:    b.CustomerID,
		CheckInDate:   time.Time(b.CheckInDate).Format("2006/01/02"),
		RoomNumber:    b.RoomNumber,
		BookingSource: b.BookingSource,
		BookingName:   b.BookingName,
		Amount:        b.Amount,
	}
}
