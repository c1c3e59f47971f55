package usecase

import (
	"context"
	"io"
	"log"

	"github.com/google/uuid"

	"github.com/pipetrack/pipetrack/internal/mapper"
	"github.com/pipetrack/pipetrack/internal/store"
)

// ImportLeads pushes a CSV file to the remote, which parses it and replies
// with the ingested rows; those rows run through the same normalizer as a
// full refresh and merge into the store as one batch.
type ImportLeads struct {
	API   LeadsAPI
	Store *store.Store
}

func NewImportLeads(api LeadsAPI, s *store.Store) *ImportLeads {
	return &ImportLeads{API: api, Store: s}
}

type ImportResult struct {
	ImportID string `json:"import_id"`
	Ingested int    `json:"ingested"`
	Skipped  int    `json:"skipped"`
}

func (uc *ImportLeads) Execute(ctx context.Context, filename string, file io.Reader) (ImportResult, error) {
	if filename == "" {
		return ImportResult{}, &ValidationError{Field: "file", Message: "a file is required"}
	}

	raws, err := uc.API.Upload(ctx, filename, file)
	if err != nil {
		return ImportResult{}, err
	}

	leads, skipped := mapper.NormalizeAll(raws)
	uc.Store.UpsertBatch(leads)

	result := ImportResult{
		ImportID: uuid.New().String(),
		Ingested: len(leads),
		Skipped:  skipped,
	}
	log.Printf("import %s: %d ingested, %d skipped (%s)", result.ImportID, result.Ingested, result.Skipped, filename)
	return result, nil
}
