package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hotel-backoffice/models"
	"hotel-backoffice/utils"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := utils.EnvOrDefault("DB_USER", "root")
	pass := utils.EnvOrDefault("DB_PASS", "")
	host := utils.EnvOrDefault("DB_HOST", "127.0.0.1")
	port := utils.EnvOrDefault("DB_PORT", "3306")
	dbName := utils.EnvOrDefault("DB_NAME", "hotel_office")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := DB.AutoMigrate(
		&models.Customer{},
		&models.Room{},
		&models.Booking{},
		&models.CleaningArea{},
		&models.CleaningStatus{},
	); err != nil {
		return err
	}

	SeedCleaningAreas()
	return nil
}

// defaultAreas is the area set every room starts with. Housekeeping can
// deactivate rows per room afterwards.
var defaultAreas = []struct {
	Code string
	Name string
}{
	{"BED", "Bed & Linen"},
	{"BATH", "Bathroom"},
	{"FLOOR", "Floor"},
	{"TRASH", "Trash & Amenities"},
}

// SeedCleaningAreas builds the area catalog from the active room inventory
// when the catalog is empty. Safe to call on every boot.
func SeedCleaningAreas() {
	var count int64
	DB.Model(&models.CleaningArea{}).Count(&count)
	if count > 0 {
		log.Println("Cleaning areas already seeded")
		return
	}

	var rooms []models.Room
	if err := DB.Where("is_active = ?", true).Find(&rooms).Error; err != nil {
		log.Printf("warning: cannot read rooms for area seeding: %v", err)
		return
	}
	if len(rooms) == 0 {
		return
	}

	areas := make([]models.CleaningArea, 0, len(rooms)*len(defaultAreas))
	for _, room := range rooms {
		for _, area := range defaultAreas {
			areas = append(areas, models.CleaningArea{
				RoomNumber: room.RoomNumber,
				AreaCode:   area.Code,
				AreaName:   area.Name,
				IsActive:   true,
			})
		}
	}

	if err := DB.Create(&areas).Error; err != nil {
		log.Printf("warning: failed to seed cleaning areas: %v", err)
		return
	}
	log.Printf("Cleaning areas seeded for %d rooms", len(rooms))
}
