package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-backoffice/models"
	"hotel-backoffice/utils"
)

const bookingHistoryLimit = 200

var (
	ErrCustomerNotFound = errors.New("no customer matches the given ID number")
	ErrBadCheckInDate   = errors.New("checkInDate must be yyyy-MM-dd")
)

type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// Create resolves the customer by ID number first; no booking row is written
// when the number matches nobody. The check-in date is validated strictly,
// unlike the lenient date-of-birth handling on the customer side.
func (s *BookingService) Create(req models.BookingCreateRequest) (int64, error) {
	checkIn, err := time.Parse("2006-01-02", strings.TrimSpace(req.CheckInDate))
	if err != nil {
		return 0, ErrBadCheckInDate
	}

	var customer models.Customer
	if err := s.DB.Where("UPPER(idnumber) = UPPER(?)", req.IDNumber).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrCustomerNotFound
		}
		return 0, err
	}

	booking := models.Booking{
		CustomerID:    customer.ID,
		CheckInDate:   datatypes.Date(checkIn),
		RoomNumber:    req.RoomNumber,
		BookingSource: req.BookingSource,
		BookingName:   req.BookingName,
		Amount:        req.Amount,
	}
	if err := s.DB.Create(&booking).Error; err != nil {
		return 0, err
	}
	return booking.ID, nil
}

// History lists a customer's active bookings, newest check-in first,
// ties broken by descending id.
func (s *BookingService) History(customerID int64) ([]models.BookingHistoryEntry, error) {
	var bookings []models.Booking
	err := s.DB.
		Where("customerid = ? AND isdeleted = ?", customerID, false).
		Order("checkindate DESC, id DESC").
		Limit(bookingHistoryLimit).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}

	entries := make([]models.BookingHistoryEntry, 0, len(bookings))
	for _, b := range bookings {
		entries = append(entries, b.ToHistoryEntry())
	}
	return entries, nil
}

// SoftDelete flags an active booking. Already-deleted rows are not
// re-matched, so a second call reports not-found. Returns false when no
// active row matched the id.
func (s *BookingService) SoftDelete(id int64, deletedBy string) (bool, error) {
	now := utils.NowLocal()
	res := s.DB.Model(&models.Booking{}).
		Where("id = ? AND isdeleted = ?", id, false).
		Updates(map[string]interface{}{
			"isdeleted": true,
			"deletedby": deletedBy,
			"deletedat": now,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
