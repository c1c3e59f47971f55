package usecase

import (
	"context"
	"log"
	"time"

	"github.com/pipetrack/pipetrack/internal/entity"
	"github.com/pipetrack/pipetrack/internal/mapper"
	"github.com/pipetrack/pipetrack/internal/store"
)

// ReconcileLead applies one partial edit to one lead: merge over the
// current record, submit to the remote, and only then commit locally. The
// store is never touched on the failure path — no optimistic local
// mutation. Retry is the caller's decision; overlapping reconciliations for
// the same id commit in completion order, later response wins.
type ReconcileLead struct {
	API   LeadsAPI
	Store *store.Store

	// Refresh is the fallback source of the authoritative record when the
	// remote confirms an update without echoing the lead back.
	Refresh *RefreshLeads
}

func NewReconcileLead(api LeadsAPI, s *store.Store, refresh *RefreshLeads) *ReconcileLead {
	return &ReconcileLead{API: api, Store: s, Refresh: refresh}
}

func (uc *ReconcileLead) Execute(ctx context.Context, id string, patch LeadPatch) (entity.Lead, error) {
	current, ok := uc.Store.Get(id)
	if !ok {
		return entity.Lead{}, &NotFoundError{LeadID: id}
	}

	if err := patch.Validate(); err != nil {
		return entity.Lead{}, err
	}

	merged := patch.Apply(current)
	payload := mapper.Outbound(merged)

	updatedRaw, err := uc.API.Update(ctx, id, payload)
	if err != nil {
		return entity.Lead{}, err
	}

	if updatedRaw == nil {
		// Remote accepted but returned no record; a full refresh is the
		// authoritative source then.
		if uc.Refresh != nil {
			if _, err := uc.Refresh.Execute(ctx); err != nil {
				log.Printf("reconcile: refresh after update failed for lead %s: %v", id, err)
			} else if lead, ok := uc.Store.Get(id); ok {
				return lead, nil
			}
		}
		updatedRaw = payload
	}

	lead, err := mapper.Normalize(updatedRaw)
	if err != nil {
		// Response body lost the id; fall back to what we submitted.
		lead = merged
	}
	lead.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	uc.Store.Upsert(lead)
	return lead, nil
}
