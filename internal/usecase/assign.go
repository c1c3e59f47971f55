package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/pipetrack/pipetrack/internal/entity"
	"github.com/pipetrack/pipetrack/internal/store"
)

// BulkAssign applies one assignee to a set of lead ids as a single
// client-side unit of work: validate first, contact the remote once, and on
// success commit every local change in one batch. Partial local updates are
// never observable.
type BulkAssign struct {
	API   LeadsAPI
	Store *store.Store
}

func NewBulkAssign(api LeadsAPI, s *store.Store) *BulkAssign {
	return &BulkAssign{API: api, Store: s}
}

func (uc *BulkAssign) Execute(ctx context.Context, leadIDs []string, assignee entity.User) ([]entity.Lead, error) {
	if len(leadIDs) == 0 {
		return nil, &ValidationError{Field: "leadIds", Message: "at least one lead must be selected"}
	}
	if strings.TrimSpace(assignee.ID) == "" || strings.TrimSpace(assignee.Name) == "" {
		return nil, &ValidationError{Field: "assignee", Message: "assignee id and name are required"}
	}

	if err := uc.API.Assign(ctx, leadIDs, assignee.ID, assignee.Name); err != nil {
		return nil, err
	}

	now := time.Now().UTC().Truncate(time.Second)
	updated := make([]entity.Lead, 0, len(leadIDs))
	for _, id := range leadIDs {
		lead, ok := uc.Store.Get(id)
		if !ok {
			// The remote owns ids we have not ingested yet; they show up
			// on the next refresh.
			log.Printf("bulk assign: lead %s not in local store, skipping local update", id)
			continue
		}
		lead.AssignedToID = assignee.ID
		lead.AssignedToName = assignee.Name
		lead.UpdatedAt = now
		updated = append(updated, lead)
	}

	uc.Store.UpsertBatch(updated)
	return updated, nil
}
