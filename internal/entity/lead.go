package entity

import (
	"time"
)

// Status values form a closed set. The first seven are the core pipeline
// stages; the rest are outreach outcomes recorded by the calling team and
// kept verbatim, including their upstream casing.
type Status string

const (
	StatusNew           Status = "new"
	StatusContacted     Status = "contacted"
	StatusQualified     Status = "qualified"
	StatusProposal      Status = "proposal"
	StatusNegotiation   Status = "negotiation"
	StatusClosedWon     Status = "closed_won"
	StatusClosedLost    Status = "closed_lost"
	StatusWarm          Status = "warm"
	StatusWrongNumber   Status = "WrongNumber"
	StatusNotAnswered   Status = "NotAnswered"
	StatusCallBackLater Status = "CallBackLater"
	StatusInterested    Status = "Interested"
	StatusNotInterested Status = "NotInterested"
	StatusSwitchedOff   Status = "SwitchedOff"
)

// StatusOrder is the fixed total order used by the pipeline sort.
var StatusOrder = []Status{
	StatusNew, StatusContacted, StatusQualified, StatusProposal,
	StatusNegotiation, StatusClosedWon, StatusClosedLost,
	StatusWarm, StatusWrongNumber, StatusNotAnswered,
	StatusCallBackLater, StatusInterested, StatusNotInterested,
	StatusSwitchedOff,
}

var statusRank = func() map[Status]int {
	m := make(map[Status]int, len(StatusOrder))
	for i, s := range StatusOrder {
		m[s] = i
	}
	return m
}()

// ValidStatus reports whether s is a member of the closed status set.
func ValidStatus(s Status) bool {
	_, ok := statusRank[s]
	return ok
}

// StatusRank returns the sort priority of s. Unknown statuses sort last.
func StatusRank(s Status) int {
	if r, ok := statusRank[s]; ok {
		return r
	}
	return len(StatusOrder)
}

type Temperature string

const (
	TemperatureHot  Temperature = "hot"
	TemperatureWarm Temperature = "warm"
	TemperatureCold Temperature = "cold"
)

func ValidTemperature(t Temperature) bool {
	return t == TemperatureHot || t == TemperatureWarm || t == TemperatureCold
}

// Interests form a closed set; tokens outside it are dropped at ingestion.
var InterestSet = []string{"website", "app", "crm", "seo", "marketing", "ecommerce"}

func ValidInterest(token string) bool {
	for _, v := range InterestSet {
		if v == token {
			return true
		}
	}
	return false
}

// ActionFlags record which outreach actions already happened. They are
// derived from the upstream action-taken text once at ingestion and are the
// local source of truth; the concatenated text form is export-only.
type ActionFlags struct {
	WhatsappSent   bool `json:"whatsapp_sent"`
	EmailSent      bool `json:"email_sent"`
	QuotationSent  bool `json:"quotation_sent"`
	SampleWorkSent bool `json:"sample_work_sent"`
}

// Lead is the canonical in-memory lead, independent of any upstream record
// shape. An empty FollowUpDate means no follow-up is scheduled.
type Lead struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Phone          string      `json:"phone"`
	Email          string      `json:"email"`
	Industry       string      `json:"industry"`
	CompanyName    string      `json:"company_name"`
	City           string      `json:"city"`
	State          string      `json:"state,omitempty"`
	Status         Status      `json:"status"`
	AssignedToID   string      `json:"assigned_to_id,omitempty"`
	AssignedToName string      `json:"assigned_to_name,omitempty"`
	FollowUpDate   string      `json:"follow_up_date,omitempty"` // YYYY-MM-DD
	Temperature    Temperature `json:"temperature,omitempty"`
	Interests      []string    `json:"interests"`
	Remarks        string      `json:"remarks,omitempty"`
	ActionFlags    ActionFlags `json:"action_flags"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// Assigned reports whether the lead has an owner. The upstream keeps id and
// name as two weakly-linked fields, so either one counts.
func (l *Lead) Assigned() bool {
	return l.AssignedToID != "" || l.AssignedToName != ""
}

func (l *Lead) HasInterest(token string) bool {
	for _, v := range l.Interests {
		if v == token {
			return true
		}
	}
	return false
}

// FollowUpDay parses the scheduled follow-up date. ok is false when no
// follow-up is set; an unparsable value counts as not set.
func (l *Lead) FollowUpDay() (time.Time, bool) {
	if l.FollowUpDate == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", l.FollowUpDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
