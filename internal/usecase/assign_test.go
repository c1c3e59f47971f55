package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pipetrack/pipetrack/internal/entity"
	"github.com/pipetrack/pipetrack/internal/usecase"
)

var jane = entity.User{ID: "u1", Name: "Jane", Role: entity.RoleBDA}

func TestBulkAssignRejectsEmptySelection(t *testing.T) {
	api := new(MockLeadsAPI)
	uc := usecase.NewBulkAssign(api, seededStore())

	_, err := uc.Execute(context.Background(), nil, jane)

	assert.True(t, usecase.IsValidation(err))
	api.AssertNotCalled(t, "Assign")
}

func TestBulkAssignRejectsUnresolvedAssignee(t *testing.T) {
	api := new(MockLeadsAPI)
	uc := usecase.NewBulkAssign(api, seededStore())

	_, err := uc.Execute(context.Background(), []string{"10"}, entity.User{ID: "u1"})
	assert.True(t, usecase.IsValidation(err))

	_, err = uc.Execute(context.Background(), []string{"10"}, entity.User{Name: "  "})
	assert.True(t, usecase.IsValidation(err))

	api.AssertNotCalled(t, "Assign")
}

func TestBulkAssignSuccessUpdatesEveryLead(t *testing.T) {
	api := new(MockLeadsAPI)
	s := seededStore(
		entity.Lead{ID: "10", Name: "a", Status: entity.StatusNew},
		entity.Lead{ID: "11", Name: "b", Status: entity.StatusNew},
		entity.Lead{ID: "12", Name: "untouched", Status: entity.StatusNew},
	)
	uc := usecase.NewBulkAssign(api, s)

	api.On("Assign", mock.Anything, []string{"10", "11"}, "u1", "Jane").Return(nil)

	before := time.Now().UTC().Truncate(time.Second)
	updated, err := uc.Execute(context.Background(), []string{"10", "11"}, jane)

	assert.NoError(t, err)
	assert.Len(t, updated, 2)

	for _, id := range []string{"10", "11"} {
		lead, _ := s.Get(id)
		assert.Equal(t, "u1", lead.AssignedToID)
		assert.Equal(t, "Jane", lead.AssignedToName)
		assert.False(t, lead.UpdatedAt.Before(before))
	}

	other, _ := s.Get("12")
	assert.Empty(t, other.AssignedToName)
}

func TestBulkAssignFailureChangesNothingLocally(t *testing.T) {
	api := new(MockLeadsAPI)
	s := seededStore(
		entity.Lead{ID: "10", Name: "a", Status: entity.StatusNew},
		entity.Lead{ID: "11", Name: "b", Status: entity.StatusNew},
	)
	uc := usecase.NewBulkAssign(api, s)

	api.On("Assign", mock.Anything, []string{"10", "11"}, "u1", "Jane").
		Return(&usecase.RemoteError{Status: 502, Body: "bad gateway"})

	_, err := uc.Execute(context.Background(), []string{"10", "11"}, jane)

	assert.True(t, usecase.IsRemote(err))
	for _, id := range []string{"10", "11"} {
		lead, _ := s.Get(id)
		assert.Empty(t, lead.AssignedToID)
		assert.Empty(t, lead.AssignedToName)
	}
}

func TestBulkAssignSkipsIdsNotInStore(t *testing.T) {
	api := new(MockLeadsAPI)
	s := seededStore(entity.Lead{ID: "10", Name: "a", Status: entity.StatusNew})
	uc := usecase.NewBulkAssign(api, s)

	api.On("Assign", mock.Anything, []string{"10", "99"}, "u1", "Jane").Return(nil)

	updated, err := uc.Execute(context.Background(), []string{"10", "99"}, jane)

	assert.NoError(t, err)
	assert.Len(t, updated, 1)
	assert.Equal(t, "10", updated[0].ID)
}
