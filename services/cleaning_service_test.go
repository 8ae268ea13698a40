package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel-backoffice/models"
	"hotel-backoffice/utils"
)

func seedCleaningAreas(t *testing.T, svc *CleaningService) {
	t.Helper()
	areas := []models.CleaningArea{
		{RoomNumber: "101", AreaCode: "BATH", AreaName: "Bathroom", IsActive: true},
		{RoomNumber: "101", AreaCode: "BED", AreaName: "Bed & Linen", IsActive: true},
		{RoomNumber: "101", AreaCode: "OLD", AreaName: "Retired area", IsActive: false},
		{RoomNumber: "102", AreaCode: "BED", AreaName: "Bed & Linen", IsActive: true},
	}
	assert.NoError(t, svc.DB.Create(&areas).Error)
}

func TestUpsertStatusTwiceLeavesOneRow(t *testing.T) {
	svc := NewCleaningService(newTestDB(t))

	_, err := svc.UpsertStatus("101", "BED", models.CleaningStatusTodo, nil, nil)
	assert.NoError(t, err)

	cleaner := "Mali"
	day, err := svc.UpsertStatus("101", "BED", models.CleaningStatusDone, nil, &cleaner)
	assert.NoError(t, err)
	assert.Equal(t, utils.TodayLocal(), day)

	var rows []models.CleaningStatus
	assert.NoError(t, svc.DB.Find(&rows).Error)
	assert.Len(t, rows, 1)
	assert.Equal(t, models.CleaningStatusDone, rows[0].Status)
	if assert.NotNil(t, rows[0].CleanerName) {
		assert.Equal(t, "Mali", *rows[0].CleanerName)
	}
}

func TestUpsertStatusRejectsUnknownStatus(t *testing.T) {
	svc := NewCleaningService(newTestDB(t))

	_, err := svc.UpsertStatus("101", "BED", "SPARKLING", nil, nil)
	assert.ErrorIs(t, err, ErrInvalidCleaningStatus)

	var count int64
	svc.DB.Model(&models.CleaningStatus{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestDailyStatusFillsPending(t *testing.T) {
	svc := NewCleaningService(newTestDB(t))
	seedCleaningAreas(t, svc)

	cleaner := "Mali"
	_, err := svc.UpsertStatus("101", "BED", models.CleaningStatusDone, nil, &cleaner)
	assert.NoError(t, err)

	grid, err := svc.DailyStatus("")
	assert.NoError(t, err)
	assert.Len(t, grid, 2)

	// rooms ascending
	assert.Equal(t, "101", grid[0].RoomNumber)
	assert.Equal(t, "102", grid[1].RoomNumber)

	// room 101: inactive area excluded, remaining areas ordered by code
	assert.Len(t, grid[0].Areas, 2)
	assert.Equal(t, "BATH", grid[0].Areas[0].AreaCode)
	assert.Equal(t, models.CleaningStatusPending, grid[0].Areas[0].Status)
	assert.Nil(t, grid[0].Areas[0].CleanerName)

	assert.Equal(t, "BED", grid[0].Areas[1].AreaCode)
	assert.Equal(t, models.CleaningStatusDone, grid[0].Areas[1].Status)
	if assert.NotNil(t, grid[0].Areas[1].CleanerName) {
		assert.Equal(t, "Mali", *grid[0].Areas[1].CleanerName)
	}

	// room 102 has no facts at all
	assert.Len(t, grid[1].Areas, 1)
	assert.Equal(t, models.CleaningStatusPending, grid[1].Areas[0].Status)
}

func TestDailyStatusOtherDayIgnoresTodayFacts(t *testing.T) {
	svc := NewCleaningService(newTestDB(t))
	seedCleaningAreas(t, svc)

	_, err := svc.UpsertStatus("101", "BED", models.CleaningStatusDoing, nil, nil)
	assert.NoError(t, err)

	grid, err := svc.DailyStatus("2020-01-01")
	assert.NoError(t, err)
	for _, room := range grid {
		for _, area := range room.Areas {
			assert.Equal(t, models.CleaningStatusPending, area.Status)
		}
	}
}
