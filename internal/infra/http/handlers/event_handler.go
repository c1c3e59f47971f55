package handlers

import (
	"net/http"
	"time"

	"github.com/pipetrack/pipetrack/internal/entity"
	"github.com/pipetrack/pipetrack/internal/followup"
	"github.com/pipetrack/pipetrack/internal/infra/http/middleware"
	"github.com/pipetrack/pipetrack/internal/store"
)

// EventHandler serves the two derived follow-up surfaces: the notification
// list (overdue + today) and the calendar feed (all buckets). Both derive
// fresh from the store on every request.
type EventHandler struct {
	Store *store.Store
}

func NewEventHandler(s *store.Store) *EventHandler {
	return &EventHandler{Store: s}
}

type EventsResponse struct {
	Events []entity.FollowUpEvent `json:"events"`
	Total  int                    `json:"total"`
}

func (h *EventHandler) HandleNotifications(w http.ResponseWriter, r *http.Request) {
	events := followup.Notifications(h.Store.All(), time.Now())
	for _, ev := range events {
		middleware.RecordFollowUpEvent(string(ev.Bucket))
	}
	respondJSON(w, http.StatusOK, EventsResponse{Events: events, Total: len(events)})
}

func (h *EventHandler) HandleCalendar(w http.ResponseWriter, r *http.Request) {
	events := followup.Calendar(h.Store.All(), time.Now())
	respondJSON(w, http.StatusOK, EventsResponse{Events: events, Total: len(events)})
}
