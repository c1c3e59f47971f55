package mapper

import (
	"strings"
	"time"

	"github.com/pipetrack/pipetrack/internal/entity"
)

// ParseInterests splits a comma-delimited upstream string into the set of
// recognized interest tokens. Unknown tokens are dropped silently;
// duplicates keep their first occurrence.
func ParseInterests(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	out := []string{}
	seen := map[string]bool{}
	for _, part := range strings.Split(raw, ",") {
		token := strings.ToLower(strings.TrimSpace(part))
		if token == "" || seen[token] || !entity.ValidInterest(token) {
			continue
		}
		seen[token] = true
		out = append(out, token)
	}
	return out
}

func JoinInterests(interests []string) string {
	return strings.Join(interests, ",")
}

// ParseActionTaken derives the four action flags from the upstream
// free-text form by case-insensitive substring test. Empty text means no
// action recorded.
func ParseActionTaken(text string) entity.ActionFlags {
	lower := strings.ToLower(text)
	return entity.ActionFlags{
		WhatsappSent:   strings.Contains(lower, "whatsapp"),
		EmailSent:      strings.Contains(lower, "email"),
		QuotationSent:  strings.Contains(lower, "quotation"),
		SampleWorkSent: strings.Contains(lower, "sample"),
	}
}

// ActionTakenText rebuilds the export-only text form. Each label round-trips
// through ParseActionTaken.
func ActionTakenText(flags entity.ActionFlags) string {
	parts := []string{}
	if flags.WhatsappSent {
		parts = append(parts, "WhatsApp Sent")
	}
	if flags.EmailSent {
		parts = append(parts, "Email Sent")
	}
	if flags.QuotationSent {
		parts = append(parts, "Quotation Sent")
	}
	if flags.SampleWorkSent {
		parts = append(parts, "Sample Work Sent")
	}
	return strings.Join(parts, ", ")
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"02/01/2006",
}

// ParseFollowUpDate normalizes an upstream follow-up value to YYYY-MM-DD.
// An empty or unparsable value returns "" — absence, never an error.
func ParseFollowUpDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

// ParseTimestamp parses an upstream timestamp, falling back to now when the
// value is missing or malformed.
func ParseTimestamp(raw string, now time.Time) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return now
}
