package entity

// Bucket classifies a follow-up date relative to the evaluation day.
type Bucket string

const (
	BucketOverdue  Bucket = "overdue"
	BucketToday    Bucket = "today"
	BucketUpcoming Bucket = "upcoming"
)

// FollowUpEvent is a derived notification/calendar record. It is recomputed
// on demand from the lead and the current day, never stored.
type FollowUpEvent struct {
	LeadID string `json:"lead_id"`
	Title  string `json:"title"`
	Date   string `json:"date"` // YYYY-MM-DD
	Bucket Bucket `json:"bucket"`
}
