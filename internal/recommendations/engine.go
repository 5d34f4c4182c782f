package recommendations

import (
	"fmt"
	"strings"
	"time"
)

// Evaluate maps a feature set to zero or more recommendations using fixed
// thresholds. Rules fire independently and their results are concatenated in
// the order below; the function is pure given (features, now). An empty
// result is legitimate here, the orchestrator decides what to substitute.
func Evaluate(features FeatureSet, now time.Time) []Recommendation {
	items := make([]Recommendation, 0, maxRuleItems)

	if features.AttendanceRate < 80 {
		items = append(items, Recommendation{
			ID:              "rule-attendance",
			Type:            TypeAttendanceImprovement,
			Title:           "Improve Class Attendance",
			Description:     fmt.Sprintf("Your attendance rate is %d%%. Regular attendance is strongly linked to better grades. Set a reminder 30 minutes before each class.", features.AttendanceRate),
			Priority:        PriorityHigh,
			Actionable:      true,
			EstimatedImpact: "Could improve grades by 15-20%",
			Category:        "Attendance",
		})
	}

	if overdue := features.OverdueTaskCount(now); overdue > 0 {
		items = append(items, Recommendation{
			ID:              "rule-overdue-tasks",
			Type:            TypeTaskPrioritization,
			Title:           "Address Overdue Tasks",
			Description:     fmt.Sprintf("You have %d overdue task(s). Tackle the oldest ones first in short focused sessions to clear the backlog.", overdue),
			Priority:        PriorityHigh,
			Actionable:      true,
			EstimatedImpact: "Reduces stress and prevents grade penalties",
			Category:        "Task Management",
		})
	}

	if len(features.BusiestWeekdays) > 0 {
		items = append(items, Recommendation{
			ID:              "rule-schedule-density",
			Type:            TypeScheduleOptimization,
			Title:           "Balance Your Heaviest Days",
			Description:     fmt.Sprintf("Your heaviest day(s): %s. Prepare materials the evening before and schedule breaks between back-to-back classes.", strings.Join(features.BusiestWeekdays, ", ")),
			Priority:        PriorityMedium,
			Actionable:      true,
			EstimatedImpact: "Better energy management on busy days",
			Category:        "Schedule",
		})
	}

	// Always-on study habit tip. Framing depends on how much of the task
	// list is actually getting done.
	if features.CompletionRatio() < 0.7 {
		items = append(items, Recommendation{
			ID:              "rule-study-habit",
			Type:            TypeStudyTip,
			Title:           "Build a Completion Routine",
			Description:     "Less than 70% of your tasks reach completion. Try timeboxing: assign each task a fixed slot in your day and stop when the slot ends.",
			Priority:        PriorityMedium,
			Actionable:      true,
			EstimatedImpact: "Higher task completion within a week",
			Category:        "Study Habits",
		})
	} else {
		items = append(items, Recommendation{
			ID:              "rule-study-habit",
			Type:            TypeStudyTip,
			Title:           "Keep Your Momentum",
			Description:     "Your task completion is on track. Use spaced repetition for upcoming exams: review material at increasing intervals instead of cramming.",
			Priority:        PriorityMedium,
			Actionable:      true,
			EstimatedImpact: "Better long-term retention",
			Category:        "Study Habits",
		})
	}

	if len(features.PerformanceMetrics) > 0 {
		items = append(items, performanceTip(features.PerformanceMetrics))
	}

	if len(items) > maxRuleItems {
		items = items[:maxRuleItems]
	}
	return items
}

// performanceTip derives one study tip from grading metrics when a grading
// subsystem supplied them.
func performanceTip(metrics map[string]float64) Recommendation {
	description := "Review your recent performance data and focus revision on your weakest subject first."
	if avg, ok := metrics["averageScore"]; ok && avg < 70 {
		description = fmt.Sprintf("Your average score is %.0f%%. Schedule two extra review sessions per week for the subjects pulling the average down.", avg)
	}
	return Recommendation{
		ID:              "rule-performance",
		Type:            TypeStudyTip,
		Title:           "Target Your Weak Spots",
		Description:     description,
		Priority:        PriorityMedium,
		Actionable:      true,
		EstimatedImpact: "Focused revision beats broad re-reading",
		Category:        "Performance",
	}
}
