package http

import (
	"database/sql"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
)

// RegisterHealthCheck registers the health check endpoint. Both the catalog
// database and the stock ledger connection have to answer for the service to
// report healthy.
func RegisterHealthCheck(router *mux.Router, db *sql.DB, ledger *sqlx.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Database unavailable",
			})
			return
		}

		if ledger != nil {
			if err := ledger.PingContext(r.Context()); err != nil {
				respondJSON(w, http.StatusServiceUnavailable, Response{
					Success: false,
					Error:   "Stock ledger unavailable",
				})
				return
			}
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Catalog service is healthy",
		})
	}).Methods("GET")
}
