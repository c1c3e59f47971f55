package usecase_test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/pipetrack/pipetrack/internal/entity"
	"github.com/pipetrack/pipetrack/internal/mapper"
)

// MockLeadsAPI
type MockLeadsAPI struct {
	mock.Mock
}

func (m *MockLeadsAPI) FetchAll(ctx context.Context) ([]mapper.RawRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]mapper.RawRecord), args.Error(1)
}

func (m *MockLeadsAPI) Update(ctx context.Context, id string, payload mapper.RawRecord) (mapper.RawRecord, error) {
	args := m.Called(ctx, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(mapper.RawRecord), args.Error(1)
}

func (m *MockLeadsAPI) Assign(ctx context.Context, leadIDs []string, bdaID, bdaName string) error {
	args := m.Called(ctx, leadIDs, bdaID, bdaName)
	return args.Error(0)
}

func (m *MockLeadsAPI) Upload(ctx context.Context, filename string, file io.Reader) ([]mapper.RawRecord, error) {
	args := m.Called(ctx, filename, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]mapper.RawRecord), args.Error(1)
}

func (m *MockLeadsAPI) FetchUsers(ctx context.Context) ([]entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}
