package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/princechakusa/Card-management-system/config"
	"github.com/princechakusa/Card-management-system/internal/model"
	"github.com/princechakusa/Card-management-system/internal/persist"
	"github.com/princechakusa/Card-management-system/internal/store"
)

func setupRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	require.NoError(t, db.AutoMigrate(&model.Slot{}))

	s := store.New()
	cfg := &config.ServerConfig{RateLimitPerSec: 1000, RateLimitBurst: 1000, CacheTTLSeconds: 1}
	return NewRouter(s, persist.NewGormAdapter(db), cfg), s
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		blob, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(blob)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPostCard(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(t, router, "POST", "/api/cards", gin.H{
		"unitId": "u1", "type": "Access Card", "number": "A-9", "status": "Available",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var card model.Card
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &card))
	assert.NotEmpty(t, card.ID)
	assert.Equal(t, model.StatusAvailable, card.Status)
	assert.Len(t, card.History, 1)
}

func TestPostCard_StatusDefaultsToAvailable(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(t, router, "POST", "/api/cards", gin.H{"unitId": "u1", "number": "A-9"})
	require.Equal(t, http.StatusCreated, w.Code)

	var card model.Card
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &card))
	assert.Equal(t, model.StatusAvailable, card.Status)
}

func TestPostCard_Validation(t *testing.T) {
	router, _ := setupRouter(t)

	testCases := []struct {
		name string
		body gin.H
	}{
		{name: "missing number", body: gin.H{"unitId": "u1", "type": "Access Card"}},
		{name: "missing unit", body: gin.H{"number": "A-9"}},
		{name: "bad status", body: gin.H{"unitId": "u1", "number": "A-9", "status": "Lost"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, router, "POST", "/api/cards", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "error")
		})
	}
}

func TestAssignAndReturnCard(t *testing.T) {
	router, s := setupRouter(t)

	card, err := s.AddCard("u1", "Access Card", "A-9", model.StatusAvailable)
	require.NoError(t, err)

	w := doJSON(t, router, "POST", "/api/cards/"+card.ID+"/assign", gin.H{
		"assignedTo": "Alice", "status": "Assigned",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var assigned model.Card
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &assigned))
	assert.Equal(t, "Alice", assigned.AssignedTo)
	assert.Equal(t, model.StatusAssigned, assigned.Status)
	assert.Len(t, assigned.History, 2)

	w = doJSON(t, router, "POST", "/api/cards/"+card.ID+"/return", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var returned model.Card
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &returned))
	assert.Equal(t, model.StatusAvailable, returned.Status)
	assert.Equal(t, "", returned.AssignedTo)
	require.Len(t, returned.History, 3)
	assert.Equal(t, "Previous Assigned", returned.History[2].Note)
}

func TestAssignCard_NotFound(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(t, router, "POST", "/api/cards/c-nope/assign", gin.H{"assignedTo": "Alice", "status": "Assigned"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReturnCard_NotFound(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(t, router, "POST", "/api/cards/c-nope/return", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCard(t *testing.T) {
	router, s := setupRouter(t)

	card, err := s.AddCard("u1", "Access Card", "A-9", model.StatusAvailable)
	require.NoError(t, err)

	w := doJSON(t, router, "DELETE", "/api/cards/"+card.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, s.Snapshot().Cards)

	// Deleting again is still a success: silent no-op.
	w = doJSON(t, router, "DELETE", "/api/cards/"+card.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestGetCardHistory(t *testing.T) {
	router, s := setupRouter(t)

	card, err := s.AddCard("u1", "Access Card", "A-9", model.StatusAvailable)
	require.NoError(t, err)
	_, err = s.AssignCard(card.ID, "Alice", model.StatusAssigned)
	require.NoError(t, err)

	w := doJSON(t, router, "GET", "/api/cards/"+card.ID+"/history", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var entries []model.HistoryEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "Created", entries[0].Action)
	assert.Equal(t, "Assigned", entries[1].Action)
}

func TestGetCardHistory_NotFound(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(t, router, "GET", "/api/cards/c-nope/history", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetExport(t *testing.T) {
	router, s := setupRouter(t)

	_, err := s.AddCard("u1", "Access Card", "A-9", model.StatusAvailable)
	require.NoError(t, err)

	w := doJSON(t, router, "GET", "/api/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv;charset=utf-8;", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=card-management-export.csv", w.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "unit,unitId,type,number,status,assignedTo,historyCount"))
	assert.Contains(t, w.Body.String(), `"A-9"`)
}
