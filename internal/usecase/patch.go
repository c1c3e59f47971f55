package usecase

import (
	"github.com/pipetrack/pipetrack/internal/entity"
	"github.com/pipetrack/pipetrack/internal/mapper"
)

// LeadPatch is a partial set of canonical-field changes. Nil means "leave
// unchanged"; merging a patch over the current lead never touches fields
// the caller did not set.
type LeadPatch struct {
	Name           *string             `json:"name,omitempty"`
	Phone          *string             `json:"phone,omitempty"`
	Email          *string             `json:"email,omitempty"`
	Industry       *string             `json:"industry,omitempty"`
	CompanyName    *string             `json:"company_name,omitempty"`
	City           *string             `json:"city,omitempty"`
	State          *string             `json:"state,omitempty"`
	Status         *entity.Status      `json:"status,omitempty"`
	AssignedToID   *string             `json:"assigned_to_id,omitempty"`
	AssignedToName *string             `json:"assigned_to_name,omitempty"`
	FollowUpDate   *string             `json:"follow_up_date,omitempty"`
	Temperature    *entity.Temperature `json:"temperature,omitempty"`
	Interests      *[]string           `json:"interests,omitempty"`
	Remarks        *string             `json:"remarks,omitempty"`
	ActionFlags    *entity.ActionFlags `json:"action_flags,omitempty"`
}

// Validate rejects values outside the closed sets before any remote call.
func (p *LeadPatch) Validate() error {
	if p.Status != nil && !entity.ValidStatus(*p.Status) {
		return &ValidationError{Field: "status", Message: "unknown status value"}
	}
	if p.Temperature != nil && *p.Temperature != "" && !entity.ValidTemperature(*p.Temperature) {
		return &ValidationError{Field: "temperature", Message: "must be hot, warm or cold"}
	}
	if p.FollowUpDate != nil && *p.FollowUpDate != "" {
		if mapper.ParseFollowUpDate(*p.FollowUpDate) == "" {
			return &ValidationError{Field: "follow_up_date", Message: "must be a valid date (YYYY-MM-DD)"}
		}
	}
	return nil
}

// Apply merges the patch over the current lead. Interests pass through the
// same token filter as ingestion so unknown tokens never enter the store.
func (p *LeadPatch) Apply(current entity.Lead) entity.Lead {
	merged := current

	if p.Name != nil {
		merged.Name = *p.Name
	}
	if p.Phone != nil {
		merged.Phone = *p.Phone
	}
	if p.Email != nil {
		merged.Email = *p.Email
	}
	if p.Industry != nil {
		merged.Industry = *p.Industry
	}
	if p.CompanyName != nil {
		merged.CompanyName = *p.CompanyName
	}
	if p.City != nil {
		merged.City = *p.City
	}
	if p.State != nil {
		merged.State = *p.State
	}
	if p.Status != nil {
		merged.Status = *p.Status
	}
	if p.AssignedToID != nil {
		merged.AssignedToID = *p.AssignedToID
	}
	if p.AssignedToName != nil {
		merged.AssignedToName = *p.AssignedToName
	}
	if p.FollowUpDate != nil {
		merged.FollowUpDate = mapper.ParseFollowUpDate(*p.FollowUpDate)
	}
	if p.Temperature != nil {
		merged.Temperature = *p.Temperature
	}
	if p.Interests != nil {
		merged.Interests = mapper.ParseInterests(mapper.JoinInterests(*p.Interests))
	}
	if p.Remarks != nil {
		merged.Remarks = *p.Remarks
	}
	if p.ActionFlags != nil {
		merged.ActionFlags = *p.ActionFlags
	}
	return merged
}
