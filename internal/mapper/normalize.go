package mapper

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/pipetrack/pipetrack/internal/entity"
)

// RawRecord is one upstream lead record of unconstrained shape, exactly as
// decoded from the remote API. It only becomes a Lead through Normalize.
type RawRecord map[string]interface{}

// ErrMissingID is the one hard failure of normalization: a record without a
// usable id cannot enter the store.
var ErrMissingID = errors.New("raw record has no usable id")

// lookup resolves a canonical field against the record, trying the upstream
// name first and then every known alias.
func (r RawRecord) lookup(canonical string) (interface{}, bool) {
	spec, ok := fieldsByCanonical[canonical]
	if !ok {
		return nil, false
	}
	if v, ok := r[spec.Upstream]; ok && v != nil {
		return v, true
	}
	if v, ok := r[spec.Canonical]; ok && v != nil {
		return v, true
	}
	for _, alias := range spec.Aliases {
		if v, ok := r[alias]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func (r RawRecord) stringField(canonical string) string {
	v, ok := r.lookup(canonical)
	if !ok {
		return ""
	}
	return coerceString(v)
}

// coerceString renders upstream scalars as text. JSON numbers arrive as
// float64; integral ids like 7 must come out as "7", not "7.000000".
func coerceString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// Normalize converts one raw upstream record into the canonical Lead. It
// never fails for a malformed field — every field degrades to its default —
// only for a record with no usable id.
func Normalize(raw RawRecord) (entity.Lead, error) {
	return NormalizeAt(raw, time.Now())
}

// NormalizeAt is Normalize with an explicit clock, used for the timestamp
// defaults.
func NormalizeAt(raw RawRecord, now time.Time) (entity.Lead, error) {
	id := raw.stringField(FieldID)
	if id == "" {
		return entity.Lead{}, ErrMissingID
	}

	now = now.UTC().Truncate(time.Second)

	status := entity.Status(strings.TrimSpace(raw.stringField(FieldStatus)))
	if !entity.ValidStatus(status) {
		status = entity.StatusNew
	}

	temperature := entity.Temperature(strings.ToLower(raw.stringField(FieldTemperature)))
	if !entity.ValidTemperature(temperature) {
		temperature = ""
	}

	lead := entity.Lead{
		ID:             id,
		Name:           raw.stringField(FieldName),
		Phone:          raw.stringField(FieldPhone),
		Email:          raw.stringField(FieldEmail),
		Industry:       raw.stringField(FieldIndustry),
		CompanyName:    raw.stringField(FieldCompanyName),
		City:           raw.stringField(FieldCity),
		State:          raw.stringField(FieldState),
		Status:         status,
		AssignedToID:   raw.stringField(FieldAssignedToID),
		AssignedToName: raw.stringField(FieldAssignedToName),
		FollowUpDate:   ParseFollowUpDate(raw.stringField(FieldFollowUpDate)),
		Temperature:    temperature,
		Interests:      ParseInterests(raw.stringField(FieldInterests)),
		Remarks:        raw.stringField(FieldRemarks),
		ActionFlags:    ParseActionTaken(raw.stringField(FieldActionTaken)),
		CreatedAt:      ParseTimestamp(raw.stringField(FieldCreatedAt), now).UTC().Truncate(time.Second),
		UpdatedAt:      ParseTimestamp(raw.stringField(FieldUpdatedAt), now).UTC().Truncate(time.Second),
	}
	return lead, nil
}

// NormalizeAll runs every record through Normalize, counting instead of
// failing on records without an id.
func NormalizeAll(raws []RawRecord) (leads []entity.Lead, skipped int) {
	now := time.Now()
	leads = make([]entity.Lead, 0, len(raws))
	for _, raw := range raws {
		lead, err := NormalizeAt(raw, now)
		if err != nil {
			skipped++
			continue
		}
		leads = append(leads, lead)
	}
	return leads, skipped
}
