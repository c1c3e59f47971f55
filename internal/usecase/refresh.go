package usecase

import (
	"context"
	"log"

	"github.com/pipetrack/pipetrack/internal/mapper"
	"github.com/pipetrack/pipetrack/internal/store"
)

type RefreshLeads struct {
	API   LeadsAPI
	Store *store.Store
}

func NewRefreshLeads(api LeadsAPI, s *store.Store) *RefreshLeads {
	return &RefreshLeads{API: api, Store: s}
}

type RefreshResult struct {
	Ingested int `json:"ingested"`
	Skipped  int `json:"skipped"`
}

// Execute pulls the full lead set from the remote, normalizes every record
// and swaps the store contents in one atomic replace. Records without a
// usable id are counted, not fatal; a failed fetch leaves the store at its
// last known good state.
func (uc *RefreshLeads) Execute(ctx context.Context) (RefreshResult, error) {
	raws, err := uc.API.FetchAll(ctx)
	if err != nil {
		return RefreshResult{}, err
	}

	leads, skipped := mapper.NormalizeAll(raws)
	uc.Store.ReplaceAll(leads)

	if skipped > 0 {
		log.Printf("refresh: %d record(s) skipped (no usable id)", skipped)
	}
	return RefreshResult{Ingested: len(leads), Skipped: skipped}, nil
}
