package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pipetrack/pipetrack/internal/entity"
	"github.com/pipetrack/pipetrack/internal/usecase"
)

type UserHandler struct {
	API      usecase.LeadsAPI
	Sessions usecase.SessionRepository
}

func NewUserHandler(api usecase.LeadsAPI, sessions usecase.SessionRepository) *UserHandler {
	return &UserHandler{API: api, Sessions: sessions}
}

func (h *UserHandler) HandleListBDAs(w http.ResponseWriter, r *http.Request) {
	users, err := h.API.FetchUsers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, users)
}

// HandleGetSession returns the current user, 404 when nobody is logged in.
func (h *UserHandler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	user, err := h.Sessions.Load(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if user == nil {
		respondJSON(w, http.StatusNotFound, ErrorResponse{Error: "no active session"})
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *UserHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var user entity.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON"})
		return
	}
	if user.ID == "" || user.Name == "" {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "id and name are required"})
		return
	}

	if err := h.Sessions.Save(r.Context(), &user); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *UserHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Clear(r.Context()); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
