package queue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pipetrack/pipetrack/internal/entity"
)

func TestFollowUpPayloadMarshalling(t *testing.T) {
	payload := FollowUpPayload{
		MessageID: "msg-1",
		LeadID:    "42",
		LeadName:  "Acme",
		Date:      "2024-06-09",
		Bucket:    entity.BucketOverdue,
		BdaName:   "Jane",
		BdaEmail:  "jane@example.com",
	}

	body, err := json.Marshal(payload)
	assert.NoError(t, err)

	var received FollowUpPayload
	assert.NoError(t, json.Unmarshal(body, &received))
	assert.Equal(t, payload, received)
	assert.Equal(t, entity.BucketOverdue, received.Bucket)
}
