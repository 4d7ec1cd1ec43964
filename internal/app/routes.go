package app

import (
	_ "github.com/ajshieldpay/otpay/docs"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Entries
	r.HandleFunc("/api/entry", deps.EntryHandler.List).Methods("GET")
	r.HandleFunc("/api/entry", deps.EntryHandler.Create).Methods("POST")
	r.HandleFunc("/api/entry/draft", deps.EntryHandler.Draft).Methods("GET")
	r.HandleFunc("/api/entry/{entryId}", deps.EntryHandler.Get).Methods("GET")
	r.HandleFunc("/api/entry/{entryId}", deps.EntryHandler.Update).Methods("PUT")
	r.HandleFunc("/api/entry/{entryId}", deps.EntryHandler.Delete).Methods("DELETE")

	// Settings
	r.HandleFunc("/api/settings", deps.SettingsHandler.Get).Methods("GET")
	r.HandleFunc("/api/settings/rank", deps.SettingsHandler.SetRank).Methods("PUT")
	r.HandleFunc("/api/settings/service", deps.SettingsHandler.SetServiceBand).Methods("PUT")
	r.HandleFunc("/api/settings/tax", deps.SettingsHandler.SetTaxRate).Methods("PUT")
	r.HandleFunc("/api/settings/options", deps.SettingsHandler.Options).Methods("GET")

	// Stats
	r.HandleFunc("/api/stats/dashboard", deps.StatsHandler.GetDashboard).Methods("GET")
	r.HandleFunc("/api/stats/live", deps.StatsHandler.GetLiveDashboard).Methods("GET")
	r.HandleFunc("/api/stats/breakdown", deps.StatsHandler.GetBreakdown).Methods("GET")
	r.HandleFunc("/api/stats/graph", deps.StatsHandler.GetGraph).Methods("GET")

	// Calendar
	r.HandleFunc("/api/calendar/periods", deps.CalendarHandler.GetPeriods).Methods("GET")

	// API documentation
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler).Methods("GET")
}
