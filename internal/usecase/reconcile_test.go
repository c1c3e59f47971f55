package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pipetrack/pipetrack/internal/entity"
	"github.com/pipetrack/pipetrack/internal/mapper"
	"github.com/pipetrack/pipetrack/internal/store"
	"github.com/pipetrack/pipetrack/internal/usecase"
)

func seededStore(leads ...entity.Lead) *store.Store {
	s := store.New()
	s.ReplaceAll(leads)
	return s
}

func strPtr(s string) *string { return &s }

func statusPtr(s entity.Status) *entity.Status { return &s }

func TestReconcileUnknownLeadIsNotFound(t *testing.T) {
	api := new(MockLeadsAPI)
	uc := usecase.NewReconcileLead(api, seededStore(), nil)

	_, err := uc.Execute(context.Background(), "missing", usecase.LeadPatch{})

	assert.True(t, usecase.IsNotFound(err))
	api.AssertNotCalled(t, "Update")
}

func TestReconcileInvalidPatchNeverReachesRemote(t *testing.T) {
	api := new(MockLeadsAPI)
	current := entity.Lead{ID: "42", Status: entity.StatusNew}
	uc := usecase.NewReconcileLead(api, seededStore(current), nil)

	_, err := uc.Execute(context.Background(), "42", usecase.LeadPatch{
		Status: statusPtr(entity.Status("nonsense")),
	})

	assert.True(t, usecase.IsValidation(err))
	api.AssertNotCalled(t, "Update")
}

func TestReconcileSuccessCommitsAuthoritativeRecord(t *testing.T) {
	api := new(MockLeadsAPI)
	current := entity.Lead{
		ID: "42", Name: "Acme", Phone: "+91999",
		Status: entity.StatusNew, Remarks: "keep me",
	}
	s := seededStore(current)
	uc := usecase.NewReconcileLead(api, s, nil)

	// The remote echoes the updated record back in its own shape.
	api.On("Update", mock.Anything, "42", mock.Anything).Return(mapper.RawRecord{
		"id":        "42",
		"name":      "Acme",
		"contactNo": "+91999",
		"status":    "qualified",
		"remarks":   "keep me",
	}, nil)

	before := time.Now()
	lead, err := uc.Execute(context.Background(), "42", usecase.LeadPatch{
		Status: statusPtr(entity.StatusQualified),
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusQualified, lead.Status)
	assert.Equal(t, "keep me", lead.Remarks, "unspecified fields carry over")
	assert.False(t, lead.UpdatedAt.Before(before.UTC().Truncate(time.Second)))

	stored, ok := s.Get("42")
	assert.True(t, ok)
	assert.Equal(t, entity.StatusQualified, stored.Status)
}

func TestReconcileOutboundPayloadUsesUpstreamNames(t *testing.T) {
	api := new(MockLeadsAPI)
	current := entity.Lead{ID: "42", Phone: "+91999", Status: entity.StatusNew, Interests: []string{"website", "crm"}}
	uc := usecase.NewReconcileLead(api, seededStore(current), nil)

	var sent mapper.RawRecord
	api.On("Update", mock.Anything, "42", mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(2).(mapper.RawRecord) }).
		Return(nil, nil)

	_, err := uc.Execute(context.Background(), "42", usecase.LeadPatch{Name: strPtr("Acme")})
	assert.NoError(t, err)

	assert.Equal(t, "+91999", sent["contactNo"])
	assert.Equal(t, "website,crm", sent["intrests"])
	assert.Equal(t, "Acme", sent["name"])
}

func TestReconcileFailureLeavesStoreUntouched(t *testing.T) {
	api := new(MockLeadsAPI)
	current := entity.Lead{ID: "42", Name: "Acme", Status: entity.StatusNew}
	s := seededStore(current)
	uc := usecase.NewReconcileLead(api, s, nil)

	api.On("Update", mock.Anything, "42", mock.Anything).
		Return(nil, &usecase.RemoteError{Status: 500, Body: "boom"})

	_, err := uc.Execute(context.Background(), "42", usecase.LeadPatch{
		Status: statusPtr(entity.StatusQualified),
	})

	assert.True(t, usecase.IsRemote(err))

	stored, _ := s.Get("42")
	assert.Equal(t, current, stored, "no speculative local mutation on failure")
}

func TestReconcileEmptyResponseTriggersRefresh(t *testing.T) {
	api := new(MockLeadsAPI)
	current := entity.Lead{ID: "42", Name: "Acme", Status: entity.StatusNew}
	s := seededStore(current)
	refresh := usecase.NewRefreshLeads(api, s)
	uc := usecase.NewReconcileLead(api, s, refresh)

	api.On("Update", mock.Anything, "42", mock.Anything).Return(nil, nil)
	api.On("FetchAll", mock.Anything).Return([]mapper.RawRecord{
		{"id": "42", "name": "Acme", "status": "qualified"},
	}, nil)

	lead, err := uc.Execute(context.Background(), "42", usecase.LeadPatch{
		Status: statusPtr(entity.StatusQualified),
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusQualified, lead.Status)
	api.AssertCalled(t, "FetchAll", mock.Anything)
}
