package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
	"github.com/yealoro/shop-cart-sub000/pkg/logger"
)

// Response is the JSON envelope every endpoint returns
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// respondDomainError maps a service error to its HTTP status. Unexpected
// errors become a generic 500; the detail stays in the log, not the body.
func respondDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: err.Error()})
	case errors.Is(err, domain.ErrCategoryHasProducts):
		respondJSON(w, http.StatusConflict, Response{Success: false, Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidPayload):
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
	default:
		logger.Error(r.Context()).Err(err).Str("path", r.URL.Path).Msg("Request failed")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Internal server error"})
	}
}
