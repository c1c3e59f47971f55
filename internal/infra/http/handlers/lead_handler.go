package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pipetrack/pipetrack/internal/entity"
	"github.com/pipetrack/pipetrack/internal/infra/http/middleware"
	"github.com/pipetrack/pipetrack/internal/store"
	"github.com/pipetrack/pipetrack/internal/usecase"
	"github.com/pipetrack/pipetrack/internal/view"
)

type LeadHandler struct {
	Store     *store.Store
	Refresh   *usecase.RefreshLeads
	Reconcile *usecase.ReconcileLead
	Assign    *usecase.BulkAssign
	Import    *usecase.ImportLeads
}

func NewLeadHandler(s *store.Store, refresh *usecase.RefreshLeads, reconcile *usecase.ReconcileLead, assign *usecase.BulkAssign, importUC *usecase.ImportLeads) *LeadHandler {
	return &LeadHandler{
		Store:     s,
		Refresh:   refresh,
		Reconcile: reconcile,
		Assign:    assign,
		Import:    importUC,
	}
}

type ListLeadsResponse struct {
	Leads []entity.Lead `json:"leads"`
	Total int           `json:"total"`
}

// HandleList derives a filtered, sorted view of the store. All filters are
// optional query params; sort=pipeline selects the two-level board
// ordering, any other value is treated as a canonical field name.
func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	leads := view.Apply(h.Store.All(), view.Query{
		Search:   q.Get("search"),
		Status:   entity.Status(q.Get("status")),
		Assignee: q.Get("assignee"),
		Bucket:   q.Get("bucket"),
	})

	switch sortKey := q.Get("sort"); sortKey {
	case "":
		// keep store order
	case "pipeline":
		leads = view.SortPipeline(leads)
	default:
		leads = view.SortBy(leads, sortKey, q.Get("dir"))
	}

	respondJSON(w, http.StatusOK, ListLeadsResponse{Leads: leads, Total: len(leads)})
}

func (h *LeadHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	lead, ok := h.Store.Get(id)
	if !ok {
		respondError(w, &usecase.NotFoundError{LeadID: id})
		return
	}
	respondJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch usecase.LeadPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON"})
		return
	}

	lead, err := h.Reconcile.Execute(r.Context(), id, patch)
	if err != nil {
		middleware.RecordReconciliation("rejected")
		respondError(w, err)
		return
	}

	middleware.RecordReconciliation("committed")
	respondJSON(w, http.StatusOK, lead)
}

type AssignLeadsRequest struct {
	LeadIDs []string `json:"leadIds"`
	BdaID   string   `json:"bdaId"`
	BdaName string   `json:"bdaName"`
}

type AssignLeadsResponse struct {
	Updated int `json:"updated"`
}

func (h *LeadHandler) HandleAssign(w http.ResponseWriter, r *http.Request) {
	var req AssignLeadsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON"})
		return
	}

	assignee := entity.User{ID: req.BdaID, Name: req.BdaName, Role: entity.RoleBDA}
	updated, err := h.Assign.Execute(r.Context(), req.LeadIDs, assignee)
	if err != nil {
		middleware.RecordBulkAssignment("rejected")
		respondError(w, err)
		return
	}

	middleware.RecordBulkAssignment("committed")
	respondJSON(w, http.StatusOK, AssignLeadsResponse{Updated: len(updated)})
}

func (h *LeadHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	result, err := h.Refresh.Execute(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.RecordIngestion("refresh", result.Ingested, result.Skipped)
	respondJSON(w, http.StatusOK, result)
}

func (h *LeadHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "file field is required"})
		return
	}
	defer file.Close()

	result, err := h.Import.Execute(r.Context(), header.Filename, file)
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.RecordIngestion("import", result.Ingested, result.Skipped)
	respondJSON(w, http.StatusOK, result)
}
