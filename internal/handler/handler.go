package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/DerickDu/ks-backend/internal/domain"
)

// ErrorResponse is the structured error body every endpoint returns on
// failure.
type ErrorResponse struct {
	ErrorType string `json:"error_type"`
	Message   string `json:"message"`
}

func writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Errorf("Failed to encode JSON response: %v", err)
	}
}

// writeError maps the error classification onto an HTTP status and writes
// the structured body. Only the classified message is exposed; the full
// error chain goes to the log.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch domain.TypeOf(err) {
	case domain.ErrorTypeValidation:
		status = http.StatusBadRequest
	case domain.ErrorTypeNotFound:
		status = http.StatusNotFound
	}

	if status >= http.StatusInternalServerError {
		log.WithFields(log.Fields{"path": r.URL.Path}).Errorf("Request failed: %v", err)
	}

	writeJSON(w, ErrorResponse{
		ErrorType: string(domain.TypeOf(err)),
		Message:   domain.PublicMessage(err),
	}, status)
}

// refreshParam reads the refresh query flag. Anything strconv.ParseBool
// rejects counts as false.
func refreshParam(r *http.Request) bool {
	refresh, _ := strconv.ParseBool(r.URL.Query().Get("refresh"))
	return refresh
}
