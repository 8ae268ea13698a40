package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotel-backoffice/models"
	"hotel-backoffice/utils"
)

var ErrInvalidCleaningStatus = errors.New("status must be one of TODO / DOING / DONE")

var writableStatuses = map[string]bool{
	models.CleaningStatusTodo:  true,
	models.CleaningStatusDoing: true,
	models.CleaningStatusDone:  true,
}

type CleaningService struct {
	DB *gorm.DB
}

func NewCleaningService(db *gorm.DB) *CleaningService {
	return &CleaningService{DB: db}
}

// UpsertStatus writes today's (hotel-local) fact row for the given room and
// area, updating status/cleaner/updated_at when the row already exists.
// Concurrent writers are serialized by the database's conflict resolution;
// last writer wins. Returns the cleaning date written.
func (s *CleaningService) UpsertStatus(roomNumber, areaCode, status string, cleanerID *int64, cleanerName *string) (string, error) {
	if !writableStatuses[status] {
		return "", ErrInvalidCleaningStatus
	}

	day := utils.TodayLocal()
	row := models.CleaningStatus{
		RoomNumber:   roomNumber,
		AreaCode:     areaCode,
		CleaningDate: day,
		Status:       status,
		CleanerID:    cleanerID,
		CleanerName:  cleanerName,
		UpdatedAt:    time.Now(),
	}

	err := s.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "room_number"},
			{Name: "area_code"},
			{Name: "cleaning_date"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"status", "cleaner_id", "cleaner_name", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return "", err
	}
	return day, nil
}

type dailyStatusRow struct {
	RoomNumber  string
	AreaCode    string
	AreaName    string
	Status      *string
	CleanerName *string
}

// DailyStatus returns the cleaning grid for one day: every active catalog
// area, grouped by ascending room number, areas ordered by area code. Areas
// without a fact row for that day report PENDING and no cleaner. day must be
// yyyy-MM-dd; empty means today (hotel-local).
func (s *CleaningService) DailyStatus(day string) ([]models.RoomCleaningStatus, error) {
	if strings.TrimSpace(day) == "" {
		day = utils.TodayLocal()
	}

	var rows []dailyStatusRow
	err := s.DB.
		Table("cleaning_areas AS ca").
		Select("ca.room_number, ca.area_code, ca.area_name, cs.status, cs.cleaner_name").
		Joins("LEFT JOIN cleaning_status cs ON cs.room_number = ca.room_number AND cs.area_code = ca.area_code AND cs.cleaning_date = ?", day).
		Where("ca.is_active = ?", true).
		Order("ca.room_number, ca.area_code").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]models.RoomCleaningStatus, 0)
	index := map[string]int{}
	for _, r := range rows {
		status := models.CleaningStatusPending
		cleaner := r.CleanerName
		if r.Status != nil && *r.Status != "" {
			status = *r.Status
		} else {
			cleaner = nil
		}

		i, ok := index[r.RoomNumber]
		if !ok {
			result = append(result, models.RoomCleaningStatus{RoomNumber: r.RoomNumber})
			i = len(result) - 1
			index[r.RoomNumber] = i
		}
		result[i].Areas = append(result[i].Areas, models.CleaningAreaStatus{
			AreaCode:    r.AreaCode,
			AreaName:    r.AreaName,
			Status:      status,
			CleanerName: cleaner,
		})
	}
	return result, nil
}
