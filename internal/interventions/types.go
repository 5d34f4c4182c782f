package interventions

// Intervention types.
const (
	TypeAttendance = "attendance"
	TypeAcademic   = "academic"
	TypePersonal   = "personal"
	TypeCareer     = "career"
	TypeBehavioral = "behavioral"
)

// Urgency levels.
const (
	UrgencyImmediate  = "immediate"
	UrgencySoon       = "soon"
	UrgencyMonitoring = "monitoring"
)

// MaxSuggestions bounds what one generation call returns.
const MaxSuggestions = 4

// Suggestion is a counselor-facing intervention for one student. Like
// recommendations these are rebuilt fresh on every call, never persisted.
type Suggestion struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Approach        string `json:"approach"`
	Urgency         string `json:"urgency"`
	ExpectedOutcome string `json:"expectedOutcome"`
	FollowUp        string `json:"followUp"`
}

// ValidType reports whether t is a known intervention type.
func ValidType(t string) bool {
	switch t {
	case TypeAttendance, TypeAcademic, TypePersonal, TypeCareer, TypeBehavioral:
		return true
	default:
		return false
	}
}

// ValidUrgency reports whether u is a known urgency level.
func ValidUrgency(u string) bool {
	switch u {
	case UrgencyImmediate, UrgencySoon, UrgencyMonitoring:
		return true
	default:
		return false
	}
}
