package services

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel-backoffice/config"
	"hotel-backoffice/models"
	"hotel-backoffice/utils"
)

func TestCompleteDoneMirrorsUpsert(t *testing.T) {
	var gotPath, gotQuery, gotAPIKey, gotAuth, gotPrefer string
	var gotBody []byte

	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAPIKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")
		gotPrefer = r.Header.Get("Prefer")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`[{"status":"DONE"}]`))
	}))
	defer remote.Close()

	cleaning := NewCleaningService(newTestDB(t))
	svc := NewCleaningSyncService(cleaning, config.CleaningSyncConfig{
		URL:        remote.URL,
		ServiceKey: "service-key",
		Table:      "cleaning_status",
	})

	blank := "   "
	result, err := svc.CompleteDone("101", "BED", nil, &blank)
	assert.NoError(t, err)
	assert.True(t, result.OK)
	assert.Equal(t, utils.TodayLocal(), result.CleaningDate)

	assert.Equal(t, "/rest/v1/cleaning_status", gotPath)
	assert.Equal(t, "on_conflict=cleaning_date,room_number,area_code", gotQuery)
	assert.Equal(t, "service-key", gotAPIKey)
	assert.Equal(t, "Bearer service-key", gotAuth)
	assert.Equal(t, "resolution=merge-duplicates,return=representation", gotPrefer)

	var rows []map[string]interface{}
	assert.NoError(t, json.Unmarshal(gotBody, &rows))
	assert.Len(t, rows, 1)
	assert.Equal(t, "101", rows[0]["room_number"])
	assert.Equal(t, "DONE", rows[0]["status"])
	// blank cleaner names are normalized to absent
	assert.Nil(t, rows[0]["cleaner_name"])

	// local write happened too
	var local models.CleaningStatus
	assert.NoError(t, cleaning.DB.Where("room_number = ? AND area_code = ?", "101", "BED").First(&local).Error)
	assert.Equal(t, models.CleaningStatusDone, local.Status)
}

func TestCompleteDoneRemoteFailureSurfaces(t *testing.T) {
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`duplicate key`))
	}))
	defer remote.Close()

	cleaning := NewCleaningService(newTestDB(t))
	svc := NewCleaningSyncService(cleaning, config.CleaningSyncConfig{
		URL:        remote.URL,
		ServiceKey: "service-key",
		Table:      "cleaning_status",
	})

	_, err := svc.CompleteDone("101", "BED", nil, nil)
	var syncErr *SyncError
	if assert.ErrorAs(t, err, &syncErr) {
		assert.Equal(t, http.StatusConflict, syncErr.StatusCode)
		assert.Contains(t, syncErr.Body, "duplicate key")
	}

	// the local write is not rolled back when the mirror fails
	var count int64
	cleaning.DB.Model(&models.CleaningStatus{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCompleteDoneUnconfigured(t *testing.T) {
	cleaning := NewCleaningService(newTestDB(t))
	svc := NewCleaningSyncService(cleaning, config.CleaningSyncConfig{})

	_, err := svc.CompleteDone("101", "BED", nil, nil)
	assert.ErrorIs(t, err, ErrSyncNotConfigured)
}
