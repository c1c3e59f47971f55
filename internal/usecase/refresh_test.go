package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pipetrack/pipetrack/internal/entity"
	"github.com/pipetrack/pipetrack/internal/mapper"
	"github.com/pipetrack/pipetrack/internal/usecase"
)

func TestRefreshReplacesStoreContents(t *testing.T) {
	api := new(MockLeadsAPI)
	s := seededStore(entity.Lead{ID: "stale", Name: "old", Status: entity.StatusNew})
	uc := usecase.NewRefreshLeads(api, s)

	api.On("FetchAll", mock.Anything).Return([]mapper.RawRecord{
		{"id": "1", "name": "fresh"},
		{"name": "no id, skipped"},
	}, nil)

	result, err := uc.Execute(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Ingested)
	assert.Equal(t, 1, result.Skipped)

	_, ok := s.Get("stale")
	assert.False(t, ok)
	lead, ok := s.Get("1")
	assert.True(t, ok)
	assert.Equal(t, "fresh", lead.Name)
}

func TestRefreshFailureKeepsLastKnownGood(t *testing.T) {
	api := new(MockLeadsAPI)
	s := seededStore(entity.Lead{ID: "keep", Name: "survivor", Status: entity.StatusNew})
	uc := usecase.NewRefreshLeads(api, s)

	api.On("FetchAll", mock.Anything).Return(nil, &usecase.RemoteError{Status: 503, Body: "down"})

	_, err := uc.Execute(context.Background())

	assert.True(t, usecase.IsRemote(err))
	assert.Equal(t, 1, s.Len())
}

func TestImportFeedsRowsThroughNormalizer(t *testing.T) {
	api := new(MockLeadsAPI)
	s := seededStore(entity.Lead{ID: "existing", Name: "stays", Status: entity.StatusNew})
	uc := usecase.NewImportLeads(api, s)

	file := strings.NewReader("name,contactNo\nAcme,+91999\n")
	api.On("Upload", mock.Anything, "leads.csv", file).Return([]mapper.RawRecord{
		{"id": "7", "name": "Acme", "contactNo": "+91999", "intrests": "website,crm,bogus"},
	}, nil)

	result, err := uc.Execute(context.Background(), "leads.csv", file)

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Ingested)
	assert.Equal(t, 0, result.Skipped)
	assert.NotEmpty(t, result.ImportID)

	// Import merges; it does not replace the collection.
	assert.Equal(t, 2, s.Len())
	lead, _ := s.Get("7")
	assert.Equal(t, []string{"website", "crm"}, lead.Interests)
}

func TestImportRequiresFilename(t *testing.T) {
	api := new(MockLeadsAPI)
	uc := usecase.NewImportLeads(api, seededStore())

	_, err := uc.Execute(context.Background(), "", strings.NewReader(""))

	assert.True(t, usecase.IsValidation(err))
	api.AssertNotCalled(t, "Upload")
}
