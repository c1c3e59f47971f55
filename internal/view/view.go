// Package view derives read-only projections of the canonical store:
// conjunctive filters, a generic field sort, and the fixed two-level
// pipeline sort. Every function is pure over its inputs.
package view

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pipetrack/pipetrack/internal/entity"
	"github.com/pipetrack/pipetrack/internal/followup"
	"github.com/pipetrack/pipetrack/internal/mapper"
)

const (
	AssigneeAll        = "all"
	AssigneeUnassigned = "unassigned"

	BucketAll = "all"
)

// Query is one view request. Zero values mean "no filter"; the filters that
// are set apply conjunctively.
type Query struct {
	Search   string        // substring over name, email, phone
	Status   entity.Status // exact match
	Assignee string        // all / unassigned / a specific id or name
	Bucket   string        // all / today / overdue
	Today    time.Time     // evaluation day for the bucket filter
}

// Apply filters the snapshot. Input order is preserved.
func Apply(leads []entity.Lead, q Query) []entity.Lead {
	today := q.Today
	if today.IsZero() {
		today = time.Now()
	}

	out := []entity.Lead{}
	for _, lead := range leads {
		if !matchSearch(lead, q.Search) {
			continue
		}
		if q.Status != "" && lead.Status != q.Status {
			continue
		}
		if !matchAssignee(lead, q.Assignee) {
			continue
		}
		if !matchBucket(lead, q.Bucket, today) {
			continue
		}
		out = append(out, lead)
	}
	return out
}

func matchSearch(lead entity.Lead, search string) bool {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(lead.Name), search) ||
		strings.Contains(strings.ToLower(lead.Email), search) ||
		strings.Contains(strings.ToLower(lead.Phone), search)
}

func matchAssignee(lead entity.Lead, assignee string) bool {
	switch assignee {
	case "", AssigneeAll:
		return true
	case AssigneeUnassigned:
		return !lead.Assigned()
	default:
		return lead.AssignedToID == assignee || lead.AssignedToName == assignee
	}
}

// matchBucket reuses the follow-up engine's classification; the bucket is
// never stored on the lead.
func matchBucket(lead entity.Lead, bucket string, today time.Time) bool {
	if bucket == "" || bucket == BucketAll {
		return true
	}
	day, ok := lead.FollowUpDay()
	if !ok {
		return false
	}
	return string(followup.Classify(day, today)) == bucket
}

// SortBy orders leads by one canonical field. String fields compare
// locale-aware, interests are joined first, and date fields compare by
// parsed timestamp with an absent or unparsable date pinned to epoch zero.
// The sort never panics on malformed data.
func SortBy(leads []entity.Lead, field, direction string) []entity.Lead {
	out := make([]entity.Lead, len(leads))
	copy(out, leads)

	desc := strings.EqualFold(direction, "desc")

	switch field {
	case mapper.FieldCreatedAt, mapper.FieldUpdatedAt, mapper.FieldFollowUpDate:
		sort.SliceStable(out, func(i, j int) bool {
			a, b := dateValue(out[i], field), dateValue(out[j], field)
			if desc {
				return b.Before(a)
			}
			return a.Before(b)
		})
	default:
		coll := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(out, func(i, j int) bool {
			c := coll.CompareString(textValue(out[i], field), textValue(out[j], field))
			if desc {
				return c > 0
			}
			return c < 0
		})
	}
	return out
}

func dateValue(lead entity.Lead, field string) time.Time {
	switch field {
	case mapper.FieldCreatedAt:
		return lead.CreatedAt
	case mapper.FieldUpdatedAt:
		return lead.UpdatedAt
	default:
		if day, ok := lead.FollowUpDay(); ok {
			return day
		}
		return time.Unix(0, 0)
	}
}

func textValue(lead entity.Lead, field string) string {
	switch field {
	case mapper.FieldName:
		return lead.Name
	case mapper.FieldPhone:
		return lead.Phone
	case mapper.FieldEmail:
		return lead.Email
	case mapper.FieldIndustry:
		return lead.Industry
	case mapper.FieldCompanyName:
		return lead.CompanyName
	case mapper.FieldCity:
		return lead.City
	case mapper.FieldState:
		return lead.State
	case mapper.FieldStatus:
		return string(lead.Status)
	case mapper.FieldAssignedToID:
		return lead.AssignedToID
	case mapper.FieldAssignedToName:
		return lead.AssignedToName
	case mapper.FieldTemperature:
		return string(lead.Temperature)
	case mapper.FieldInterests:
		return mapper.JoinInterests(lead.Interests)
	case mapper.FieldRemarks:
		return lead.Remarks
	case mapper.FieldActionTaken:
		return mapper.ActionTakenText(lead.ActionFlags)
	default:
		return lead.ID
	}
}

// SortPipeline applies the two-level board ordering: status priority first,
// UpdatedAt ascending within a status. Stable — leads with identical keys
// keep their input order.
func SortPipeline(leads []entity.Lead) []entity.Lead {
	out := make([]entity.Lead, len(leads))
	copy(out, leads)

	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := entity.StatusRank(out[i].Status), entity.StatusRank(out[j].Status)
		if ri != rj {
			return ri < rj
		}
		return out[i].UpdatedAt.Before(out[j].UpdatedAt)
	})
	return out
}
