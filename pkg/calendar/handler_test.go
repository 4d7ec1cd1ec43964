package calendar

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(today time.Time) *mux.Router {
	handler := NewHandler(Default(), func() time.Time { return today })
	router := mux.NewRouter()
	router.HandleFunc("/api/calendar/periods", handler.GetPeriods).Methods("GET")
	return router
}

func getPeriods(t *testing.T, router *mux.Router, url string) (*httptest.ResponseRecorder, CalendarDTO) {
	t.Helper()
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", url, nil))
	var dto CalendarDTO
	if rr.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &dto))
	}
	return rr, dto
}

func TestHandler_GetPeriods(t *testing.T) {
	t.Run("should list all periods and locate today", func(t *testing.T) {
		// given
		router := setupRouter(time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC))

		// when
		rr, dto := getPeriods(t, router, "/api/calendar/periods")

		// then
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "2026-02-09", dto.Start)
		assert.Equal(t, "2027-02-07", dto.End)
		require.Len(t, dto.Periods, 12)
		assert.Equal(t, PeriodDTO{Label: "April 2026", Short: "Apr", Start: "2026-02-09", End: "2026-03-08"}, dto.Periods[0])
		assert.Equal(t, "Mar", dto.Periods[11].Short)
		require.NotNil(t, dto.Current)
		assert.Equal(t, "December 2026", dto.Periods[*dto.Current].Label)
	})

	t.Run("should locate the requested date", func(t *testing.T) {
		// given
		router := setupRouter(time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC))

		// when
		rr, dto := getPeriods(t, router, "/api/calendar/periods?date=2026-03-09")

		// then
		require.Equal(t, http.StatusOK, rr.Code)
		require.NotNil(t, dto.Current)
		assert.Equal(t, 1, *dto.Current)
	})

	t.Run("should leave current empty outside the fiscal year", func(t *testing.T) {
		// given
		router := setupRouter(time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC))

		// when
		rr, dto := getPeriods(t, router, "/api/calendar/periods")

		// then
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Nil(t, dto.Current)
		assert.Len(t, dto.Periods, 12)
	})

	t.Run("should reject a malformed date", func(t *testing.T) {
		// given
		router := setupRouter(time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC))

		// when
		rr, _ := getPeriods(t, router, "/api/calendar/periods?date=17/10/2026")

		// then
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "YYYY-MM-DD")
	})
}
