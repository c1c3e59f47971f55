package mapper

// The field table is the single point of truth for translating between
// upstream record shapes and the canonical Lead. Upstream is the name the
// remote API expects on outbound payloads; Aliases are every spelling the
// normalizer accepts on the way in (the upstream has drifted over time:
// followUp vs followUpDate, intrests vs interests, assignedTo vs
// assignedBdaName). No other code may hard-code one of these names.
type FieldSpec struct {
	Canonical string
	Upstream  string
	Aliases   []string
}

const (
	FieldID             = "id"
	FieldName           = "name"
	FieldPhone          = "phone"
	FieldEmail          = "email"
	FieldIndustry       = "industry"
	FieldCompanyName    = "companyName"
	FieldCity           = "city"
	FieldState          = "state"
	FieldStatus         = "status"
	FieldAssignedToID   = "assignedToId"
	FieldAssignedToName = "assignedToName"
	FieldFollowUpDate   = "followUpDate"
	FieldTemperature    = "temperature"
	FieldInterests      = "interests"
	FieldRemarks        = "remarks"
	FieldActionTaken    = "actionTaken"
	FieldCreatedAt      = "createdAt"
	FieldUpdatedAt      = "updatedAt"
)

var Fields = []FieldSpec{
	{FieldID, "id", []string{"_id", "leadId"}},
	{FieldName, "name", []string{"leadName"}},
	{FieldPhone, "contactNo", []string{"phone", "contact_no", "mobile"}},
	{FieldEmail, "email", []string{"emailId"}},
	{FieldIndustry, "industry", nil},
	{FieldCompanyName, "companyName", []string{"company", "company_name"}},
	{FieldCity, "city", nil},
	{FieldState, "state", nil},
	{FieldStatus, "status", nil},
	{FieldAssignedToID, "assignedBdaId", []string{"assignedToId", "assigned_to_id", "bdaId"}},
	{FieldAssignedToName, "assignedBdaName", []string{"assignedTo", "assignedToName", "bdaName"}},
	{FieldFollowUpDate, "followUp", []string{"followUpDate", "follow_up", "followup_date"}},
	{FieldTemperature, "temperature", []string{"temp"}},
	{FieldInterests, "intrests", []string{"interests"}},
	{FieldRemarks, "remarks", []string{"remark", "notes"}},
	{FieldActionTaken, "actionTaken", []string{"action_taken", "actionTakenText"}},
	{FieldCreatedAt, "createdAt", []string{"created_at", "createdOn"}},
	{FieldUpdatedAt, "updatedAt", []string{"updated_at", "modifiedAt"}},
}

var fieldsByCanonical = func() map[string]FieldSpec {
	m := make(map[string]FieldSpec, len(Fields))
	for _, f := range Fields {
		m[f.Canonical] = f
	}
	return m
}()

// UpstreamName translates a canonical field name to the name the remote API
// expects. Unknown fields map to themselves so a payload never drops data.
func UpstreamName(canonical string) string {
	if f, ok := fieldsByCanonical[canonical]; ok {
		return f.Upstream
	}
	return canonical
}
