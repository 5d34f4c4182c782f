package interventions

import (
	"fmt"
	"strings"

	"campus-backend/internal/attendance"
	"campus-backend/internal/profiles"
	"campus-backend/internal/tasks"
)

// Evaluate maps a student's aggregated summaries to intervention suggestions.
// Pure and deterministic. The final rule is unconditional, so the result is
// never empty: every student at least gets a monitoring check-in.
func Evaluate(profile profiles.Profile, att attendance.Summary, taskSum tasks.Summary) []Suggestion {
	name := strings.TrimSpace(profile.FullName)
	if name == "" {
		name = "This student"
	}

	var items []Suggestion

	if att.AttendanceRate < 75 {
		items = append(items, Suggestion{
			ID:              "attendance-intervention",
			Type:            TypeAttendance,
			Title:           "Attendance Recovery Plan",
			Description:     fmt.Sprintf("%s has an attendance rate of %.1f%% over the recent window, below the expected threshold.", name, att.AttendanceRate),
			Approach:        "Schedule a one-on-one meeting to identify barriers to attendance and agree on a recovery plan with weekly check-ins.",
			Urgency:         UrgencyImmediate,
			ExpectedOutcome: "Attendance rate back above 75% within four weeks",
			FollowUp:        "Review attendance records weekly until the rate stabilizes.",
		})
	}

	if taskSum.CompletionRate < 70 {
		items = append(items, Suggestion{
			ID:              "task-management-intervention",
			Type:            TypeAcademic,
			Title:           "Task Management Support",
			Description:     fmt.Sprintf("Task completion rate is %.1f%%, which suggests difficulty keeping up with coursework.", taskSum.CompletionRate),
			Approach:        "Introduce a weekly planning routine and break large assignments into smaller milestones together.",
			Urgency:         UrgencySoon,
			ExpectedOutcome: "Completion rate above 70% within a month",
			FollowUp:        "Check completed-vs-assigned counts at the next session.",
		})
	}

	items = append(items, Suggestion{
		ID:              "general-support",
		Type:            TypePersonal,
		Title:           "Regular Wellbeing Check-In",
		Description:     fmt.Sprintf("Keep an open channel with %s regardless of current indicators.", name),
		Approach:        "Brief informal conversation about workload, stress, and anything outside academics affecting performance.",
		Urgency:         UrgencyMonitoring,
		ExpectedOutcome: "Early visibility into issues before they show up in the numbers",
		FollowUp:        "Repeat monthly or sooner if other indicators change.",
	})

	return items
}
