package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pipetrack/pipetrack/internal/usecase"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// respondError maps the usecase error taxonomy onto HTTP statuses. Remote
// failures surface as 502 with the upstream body preserved for the user.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case usecase.IsNotFound(err):
		status = http.StatusNotFound
	case usecase.IsValidation(err):
		status = http.StatusBadRequest
	case usecase.IsRemote(err):
		status = http.StatusBadGateway
	}
	respondJSON(w, status, ErrorResponse{Error: err.Error()})
}
