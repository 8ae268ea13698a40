package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"hotel-backoffice/config"
	"hotel-backoffice/models"
	"hotel-backoffice/utils"
)

var ErrSyncNotConfigured = errors.New("cleaning sync endpoint is not configured")

// SyncError carries the remote endpoint's status and body for diagnosis.
type SyncError struct {
	StatusCode int
	Body       string
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("cleaning sync upsert failed: %d %s", e.StatusCode, e.Body)
}

// CleaningSyncService handles QR-triggered completions: a local DONE upsert
// followed by a mirrored upsert to the external endpoint. The two writes are
// not coordinated; the local row stays written when the mirror fails.
type CleaningSyncService struct {
	cleaning *CleaningService
	client   *resty.Client
	cfg      config.CleaningSyncConfig
}

func NewCleaningSyncService(cleaning *CleaningService, cfg config.CleaningSyncConfig) *CleaningSyncService {
	client := resty.New().
		SetTimeout(15 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &CleaningSyncService{cleaning: cleaning, client: client, cfg: cfg}
}

type syncRow struct {
	RoomNumber   string    `json:"room_number"`
	AreaCode     string    `json:"area_code"`
	CleaningDate string    `json:"cleaning_date"`
	Status       string    `json:"status"`
	CleanerID    *int64    `json:"cleaner_id"`
	CleanerName  *string   `json:"cleaner_name"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type QrCompleteResult struct {
	OK           bool   `json:"ok"`
	RoomNumber   string `json:"roomNumber"`
	AreaCode     string `json:"areaCode"`
	CleaningDate string `json:"cleaningDate"`
	Remote       string `json:"remote"`
}

// CompleteDone marks the area DONE for today (hotel-local) and mirrors the
// row to the external endpoint, merge-on-conflict keyed by
// (cleaning_date, room_number, area_code). A non-2xx remote response is an
// operation failure, not fire-and-forget.
func (s *CleaningSyncService) CompleteDone(roomNumber, areaCode string, cleanerID *int64, cleanerName *string) (*QrCompleteResult, error) {
	if !s.cfg.Configured() {
		return nil, ErrSyncNotConfigured
	}

	name := cleanerName
	if name != nil && strings.TrimSpace(*name) == "" {
		name = nil
	}

	day, err := s.cleaning.UpsertStatus(roomNumber, areaCode, models.CleaningStatusDone, cleanerID, name)
	if err != nil {
		return nil, err
	}

	payload := []syncRow{{
		RoomNumber:   roomNumber,
		AreaCode:     areaCode,
		CleaningDate: day,
		Status:       models.CleaningStatusDone,
		CleanerID:    cleanerID,
		CleanerName:  name,
		UpdatedAt:    time.Now().UTC(),
	}}

	endpoint := fmt.Sprintf("%s/rest/v1/%s?on_conflict=cleaning_date,room_number,area_code",
		strings.TrimRight(s.cfg.URL, "/"), s.cfg.Table)

	resp, err := s.client.R().
		SetHeader("apikey", s.cfg.ServiceKey).
		SetAuthToken(s.cfg.ServiceKey).
		SetHeader("Prefer", "resolution=merge-duplicates,return=representation").
		SetBody(payload).
		Post(endpoint)
	if err != nil {
		return nil, fmt.Errorf("cleaning sync request failed: %w", err)
	}
	if resp.IsError() {
		return nil, &SyncError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	utils.InfoLogger.Infof("cleaning sync ok: room=%s area=%s date=%s", roomNumber, areaCode, day)

	return &QrCompleteResult{
		OK:           true,
		RoomNumber:   roomNumber,
		AreaCode:     areaCode,
		CleaningDate: day,
		Remote:       resp.String(),
	}, nil
}
