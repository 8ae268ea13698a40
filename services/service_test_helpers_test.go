package services

import (
	"fmt"
	"os"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hotel-backoffice/models"
	"hotel-backoffice/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

// newTestDB opens a named in-memory database so every pooled connection sees
// the same data within one test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Room{},
		&models.Booking{},
		&models.CleaningArea{},
		&models.CleaningStatus{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}
