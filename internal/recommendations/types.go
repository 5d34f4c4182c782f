package recommendations

// Recommendation types.
const (
	TypeStudyTip              = "study_tip"
	TypeScheduleOptimization  = "schedule_optimization"
	TypeAttendanceImprovement = "attendance_improvement"
	TypeTaskPrioritization    = "task_prioritization"
)

// Priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// MaxRecommendations bounds what a generation call returns to the caller.
// The rule engine may internally fire more rules than this; the orchestrator
// truncates before returning.
const MaxRecommendations = 4

// maxRuleItems bounds the rule engine's own output before truncation by the
// orchestrator.
const maxRuleItems = 6

// Recommendation is one actionable suggestion produced by a generation call.
// Instances are ephemeral: they are rebuilt from live signals on every call
// and never persisted, only the fact of a user interacting with one is.
type Recommendation struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Priority        string `json:"priority"`
	Actionable      bool   `json:"actionable"`
	EstimatedImpact string `json:"estimatedImpact"`
	Category        string `json:"category"`
}

// ValidType reports whether t is a known recommendation type.
func ValidType(t string) bool {
	switch t {
	case TypeStudyTip, TypeScheduleOptimization, TypeAttendanceImprovement, TypeTaskPrioritization:
		return true
	default:
		return false
	}
}

// ValidPriority reports whether p is a known priority.
func ValidPriority(p string) bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}
