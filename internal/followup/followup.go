// Package followup classifies scheduled follow-up dates into temporal
// buckets and derives the notification/calendar events the alert and
// calendar surfaces consume. Everything here is pure: both surfaces call
// with the same inputs and get the same buckets, and nothing is cached
// across a day boundary.
package followup

import (
	"time"

	"github.com/pipetrack/pipetrack/internal/entity"
)

// Classify buckets a follow-up day against the evaluation day. Comparison
// is by calendar day, not instant.
func Classify(followUp, today time.Time) entity.Bucket {
	fy, fm, fd := followUp.Date()
	ty, tm, td := today.Date()
	f := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	t := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)

	switch {
	case f.Before(t):
		return entity.BucketOverdue
	case f.After(t):
		return entity.BucketUpcoming
	default:
		return entity.BucketToday
	}
}

// Events derives one FollowUpEvent per lead that has a valid follow-up
// date. Leads without one (or with an unparsable one) produce nothing.
func Events(leads []entity.Lead, today time.Time) []entity.FollowUpEvent {
	events := []entity.FollowUpEvent{}
	for _, lead := range leads {
		day, ok := lead.FollowUpDay()
		if !ok {
			continue
		}
		title := lead.Name
		if title == "" {
			title = lead.CompanyName
		}
		events = append(events, entity.FollowUpEvent{
			LeadID: lead.ID,
			Title:  title,
			Date:   lead.FollowUpDate,
			Bucket: Classify(day, today),
		})
	}
	return events
}

// Notifications keeps only the buckets the alert surface shows: overdue and
// today.
func Notifications(leads []entity.Lead, today time.Time) []entity.FollowUpEvent {
	out := []entity.FollowUpEvent{}
	for _, ev := range Events(leads, today) {
		if ev.Bucket == entity.BucketOverdue || ev.Bucket == entity.BucketToday {
			out = append(out, ev)
		}
	}
	return out
}

// Calendar returns every event, any bucket, for the calendar surface.
func Calendar(leads []entity.Lead, today time.Time) []entity.FollowUpEvent {
	return Events(leads, today)
}
