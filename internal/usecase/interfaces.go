package usecase

import (
	"context"
	"io"

	"github.com/pipetrack/pipetrack/internal/entity"
	"github.com/pipetrack/pipetrack/internal/mapper"
)

// LeadsAPI is the remote collaborator that owns the authoritative lead
// data. Implementations must return *RemoteError for non-success responses
// so callers can report status and body.
type LeadsAPI interface {
	FetchAll(ctx context.Context) ([]mapper.RawRecord, error)

	// Update submits the outbound payload for one lead. The returned
	// record may be nil when the remote replies without a body.
	Update(ctx context.Context, id string, payload mapper.RawRecord) (mapper.RawRecord, error)

	Assign(ctx context.Context, leadIDs []string, bdaID, bdaName string) error

	// Upload submits a CSV file; the remote parses it and returns the
	// ingested rows as raw records.
	Upload(ctx context.Context, filename string, file io.Reader) ([]mapper.RawRecord, error)

	FetchUsers(ctx context.Context) ([]entity.User, error)
}

// SessionRepository holds the one serialized current-user record.
type SessionRepository interface {
	Load(ctx context.Context) (*entity.User, error)
	Save(ctx context.Context, user *entity.User) error
	Clear(ctx context.Context) error
}
