package entry

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ajshieldpay/otpay/internal/event_bus"
	"github.com/ajshieldpay/otpay/internal/utils"
	"github.com/ajshieldpay/otpay/pkg/calendar"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) (*mux.Router, *StubRepository) {
	t.Helper()
	repo := NewStubRepository()
	handler := NewHandler(NewService(repo, event_bus.NewEventBus(), calendar.Default(), utils.NewMockClock(time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC))))
	router := mux.NewRouter()
	router.HandleFunc("/api/entry", handler.List).Methods("GET")
	router.HandleFunc("/api/entry", handler.Create).Methods("POST")
	router.HandleFunc("/api/entry/draft", handler.Draft).Methods("GET")
	router.HandleFunc("/api/entry/{entryId}", handler.Get).Methods("GET")
	router.HandleFunc("/api/entry/{entryId}", handler.Update).Methods("PUT")
	router.HandleFunc("/api/entry/{entryId}", handler.Delete).Methods("DELETE")
	return router, repo
}

func TestHoursDTO_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		json string
		want string
	}{
		{`{"hours133": 4}`, "4"},
		{`{"hours133": "2.5"}`, "2.5"},
		{`{"hours133": null}`, "0"},
		{`{"hours133": ""}`, "0"},
		{`{"hours133": "lots"}`, "0"},
		{`{"hours133": -1}`, "0"},
		{`{}`, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.json, func(t *testing.T) {
			var dto EntryDTO
			require.NoError(t, json.Unmarshal([]byte(tt.json), &dto))
			assert.Equal(t, tt.want, dto.Hours133.Decimal.String())
		})
	}
}

func TestHandler_Create(t *testing.T) {
	t.Run("should create an entry", func(t *testing.T) {
		// given
		router, repo := setupRouter(t)
		body := `{"date":"2026-02-09","reason":"Late job","hours133":"4","hours150":null,"hours200":"","allowance":"PA1"}`

		// when
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest("POST", "/api/entry", strings.NewReader(body)))

		// then
		require.Equal(t, http.StatusCreated, rr.Code)
		var created EntryDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&created))
		assert.NotEmpty(t, created.Id)
		assert.Equal(t, "2026-02-09", created.Date)
		assert.Equal(t, "PA1", created.Allowance)
		entries, _ := repo.List(context.Background())
		assert.Len(t, entries, 1)
	})

	t.Run("should answer 204 and store nothing for an empty entry", func(t *testing.T) {
		// given
		router, repo := setupRouter(t)
		body := `{"date":"2026-02-09","reason":"","hours133":"0","allowance":"None","comments":""}`

		// when
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest("POST", "/api/entry", strings.NewReader(body)))

		// then
		assert.Equal(t, http.StatusNoContent, rr.Code)
		entries, _ := repo.List(context.Background())
		assert.Empty(t, entries)
	})

	t.Run("should reject a malformed date", func(t *testing.T) {
		// given
		router, _ := setupRouter(t)

		// when
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest("POST", "/api/entry", strings.NewReader(`{"date":"09/02/2026","reason":"x"}`)))

		// then
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid date format")
	})
}

func TestHandler_UpdateAndDelete(t *testing.T) {
	// given
	router, repo := setupRouter(t)
	id, err := repo.Create(context.Background(), Entry{Date: calendar.Date(2026, 3, 3), Reason: "Court"})
	require.NoError(t, err)

	// when
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("PUT", "/api/entry/"+id, strings.NewReader(`{"date":"2026-03-04","hours200":3}`)))

	// then
	require.Equal(t, http.StatusOK, rr.Code)
	stored, err := repo.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, calendar.Date(2026, 3, 4), stored.Date)
	assert.Equal(t, "3", stored.Hours200.String())

	// when
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("DELETE", "/api/entry/"+id, nil))

	// then
	assert.Equal(t, http.StatusNoContent, rr.Code)

	// when
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/api/entry/"+id, nil))

	// then
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandler_UpdateWithMismatchedId(t *testing.T) {
	// given
	router, repo := setupRouter(t)
	id, err := repo.Create(context.Background(), Entry{Date: calendar.Date(2026, 3, 3), Reason: "Court"})
	require.NoError(t, err)
	body := `{"id":"another-entry","date":"2026-03-04","hours200":3}`

	// when
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("PUT", "/api/entry/"+id, strings.NewReader(body)))

	// then
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Invalid entry id in request body")
	stored, err := repo.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, calendar.Date(2026, 3, 3), stored.Date)
	assert.True(t, stored.Hours200.IsZero())
}

func TestHandler_Draft(t *testing.T) {
	// given
	router, _ := setupRouter(t)

	// when
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/api/entry/draft", nil))

	// then
	require.Equal(t, http.StatusOK, rr.Code)
	var draft EntryDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&draft))
	assert.Empty(t, draft.Id)
	assert.Equal(t, "2026-10-17", draft.Date)
	assert.Equal(t, "None", draft.Allowance)
}
