package mapper

import (
	"time"

	"github.com/pipetrack/pipetrack/internal/entity"
)

// Outbound builds the upstream-shaped payload for a canonical Lead, the
// inverse of Normalize. Field names come from the table, never hand-written
// at call sites. Round-tripping the result through Normalize yields the
// same Lead.
func Outbound(lead entity.Lead) RawRecord {
	payload := RawRecord{
		UpstreamName(FieldID):             lead.ID,
		UpstreamName(FieldName):           lead.Name,
		UpstreamName(FieldPhone):          lead.Phone,
		UpstreamName(FieldEmail):          lead.Email,
		UpstreamName(FieldIndustry):       lead.Industry,
		UpstreamName(FieldCompanyName):    lead.CompanyName,
		UpstreamName(FieldCity):           lead.City,
		UpstreamName(FieldState):          lead.State,
		UpstreamName(FieldStatus):         string(lead.Status),
		UpstreamName(FieldAssignedToID):   lead.AssignedToID,
		UpstreamName(FieldAssignedToName): lead.AssignedToName,
		UpstreamName(FieldFollowUpDate):   lead.FollowUpDate,
		UpstreamName(FieldTemperature):    string(lead.Temperature),
		UpstreamName(FieldInterests):      JoinInterests(lead.Interests),
		UpstreamName(FieldRemarks):        lead.Remarks,
		UpstreamName(FieldActionTaken):    ActionTakenText(lead.ActionFlags),
		UpstreamName(FieldCreatedAt):      lead.CreatedAt.UTC().Format(time.RFC3339),
		UpstreamName(FieldUpdatedAt):      lead.UpdatedAt.UTC().Format(time.RFC3339),
	}
	return payload
}
