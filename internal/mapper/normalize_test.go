package mapper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pipetrack/pipetrack/internal/entity"
)

var testNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

func TestNormalizeExampleRecord(t *testing.T) {
	raw := RawRecord{
		"id":        float64(7), // JSON numbers decode as float64
		"name":      "Acme",
		"contactNo": "+91999",
		"followUp":  "2024-01-01",
		"status":    nil,
		"intrests":  "website,crm,bogus",
	}

	lead, err := NormalizeAt(raw, testNow)
	assert.NoError(t, err)

	assert.Equal(t, "7", lead.ID)
	assert.Equal(t, "Acme", lead.Name)
	assert.Equal(t, "+91999", lead.Phone)
	assert.Equal(t, "2024-01-01", lead.FollowUpDate)
	assert.Equal(t, entity.StatusNew, lead.Status)
	assert.Equal(t, []string{"website", "crm"}, lead.Interests)
}

func TestNormalizeMissingIDIsTheOnlyHardFailure(t *testing.T) {
	_, err := NormalizeAt(RawRecord{"name": "No ID Corp"}, testNow)
	assert.ErrorIs(t, err, ErrMissingID)

	leads, skipped := NormalizeAll([]RawRecord{
		{"id": "1", "name": "Keep"},
		{"name": "Drop"},
		{"id": "2", "name": "Keep Too"},
	})
	assert.Len(t, leads, 2)
	assert.Equal(t, 1, skipped)
}

func TestNormalizeUnknownStatusDefaultsToNew(t *testing.T) {
	for _, raw := range []interface{}{nil, "", "garbage", "NEW"} {
		lead, err := NormalizeAt(RawRecord{"id": "1", "status": raw}, testNow)
		assert.NoError(t, err)
		assert.Equal(t, entity.StatusNew, lead.Status)
		assert.True(t, entity.ValidStatus(lead.Status))
	}

	lead, err := NormalizeAt(RawRecord{"id": "1", "status": "CallBackLater"}, testNow)
	assert.NoError(t, err)
	assert.Equal(t, entity.StatusCallBackLater, lead.Status)
}

func TestParseInterestsDropsUnknownTokens(t *testing.T) {
	assert.Equal(t, []string{"website", "crm"}, ParseInterests("website, crm, bogus"))
	assert.Equal(t, []string{"seo"}, ParseInterests("SEO, seo"))
	assert.Equal(t, []string{}, ParseInterests(""))
	assert.Equal(t, []string{}, ParseInterests("  ,  ,"))
}

func TestParseActionTakenRoundTrip(t *testing.T) {
	flags := ParseActionTaken("WhatsApp sent, quotation shared")
	assert.True(t, flags.WhatsappSent)
	assert.False(t, flags.EmailSent)
	assert.True(t, flags.QuotationSent)
	assert.False(t, flags.SampleWorkSent)

	assert.Equal(t, entity.ActionFlags{}, ParseActionTaken(""))

	// Every label survives the substring test on the way back in.
	full := entity.ActionFlags{WhatsappSent: true, EmailSent: true, QuotationSent: true, SampleWorkSent: true}
	assert.Equal(t, full, ParseActionTaken(ActionTakenText(full)))
}

func TestParseFollowUpDateInvalidMeansAbsent(t *testing.T) {
	assert.Equal(t, "2024-01-01", ParseFollowUpDate("2024-01-01"))
	assert.Equal(t, "2024-01-01", ParseFollowUpDate("2024-01-01T09:30:00Z"))
	assert.Equal(t, "", ParseFollowUpDate("not-a-date"))
	assert.Equal(t, "", ParseFollowUpDate(""))
}

func TestNormalizeTimestampDefaults(t *testing.T) {
	lead, err := NormalizeAt(RawRecord{"id": "1", "createdAt": "junk"}, testNow)
	assert.NoError(t, err)
	assert.Equal(t, testNow, lead.CreatedAt)
	assert.Equal(t, testNow, lead.UpdatedAt)

	lead, err = NormalizeAt(RawRecord{"id": "1", "createdAt": "2023-01-05T08:00:00Z"}, testNow)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2023, 1, 5, 8, 0, 0, 0, time.UTC), lead.CreatedAt)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	raw := RawRecord{
		"id":          "42",
		"name":        "Acme",
		"contactNo":   "+91999",
		"email":       "info@acme.test",
		"status":      "qualified",
		"followUp":    "2024-07-01",
		"intrests":    "website,crm",
		"actionTaken": "WhatsApp Sent, Email Sent",
		"temperature": "hot",
		"createdAt":   "2024-01-01T00:00:00Z",
		"updatedAt":   "2024-02-01T00:00:00Z",
	}

	once, err := NormalizeAt(raw, testNow)
	assert.NoError(t, err)

	// Round-trip through the outbound mapping and normalize again: a
	// canonical lead must be a fixed point.
	twice, err := NormalizeAt(Outbound(once), testNow.Add(time.Hour))
	assert.NoError(t, err)
	assert.Equal(t, once, twice)
}
