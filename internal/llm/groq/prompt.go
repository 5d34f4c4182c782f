package groq

import (
	"encoding/json"
	"fmt"
	"strings"

	"campus-backend/internal/interventions"
	"campus-backend/internal/recommendations"
)

// promptSliceLimit bounds how much raw data is embedded in a prompt.
const promptSliceLimit = 5

func buildRecommendationPrompt(features recommendations.FeatureSet, recommendationType string, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "As an educational AI assistant, generate %d personalized learning recommendations for a student with the following data:\n\n", count)
	fmt.Fprintf(&b, "Attendance Rate: %d%%\n", features.AttendanceRate)
	fmt.Fprintf(&b, "Recent Attendance: %s\n", mustJSON(head(features.RecentAttendance, promptSliceLimit)))
	fmt.Fprintf(&b, "Pending Tasks: %s\n", mustJSON(head(pendingTasks(features.Tasks), promptSliceLimit)))
	fmt.Fprintf(&b, "Schedule: %s\n", mustJSON(head(features.Schedule, promptSliceLimit)))
	if len(features.PerformanceMetrics) > 0 {
		fmt.Fprintf(&b, "Performance Metrics: %s\n", mustJSON(features.PerformanceMetrics))
	}
	b.WriteString("\n")
	if recommendationType != "" && recommendationType != "diverse" {
		fmt.Fprintf(&b, "Focus specifically on %s recommendations.\n", recommendationType)
	} else {
		b.WriteString("Provide a diverse set of recommendations.\n")
	}
	b.WriteString(`
Format each recommendation as a JSON object with these fields:
- id: A unique identifier for the recommendation
- type: The category (study_tip, attendance_improvement, task_prioritization, schedule_optimization)
- title: A concise, actionable title
- description: A helpful, personalized explanation (2-3 sentences)
- priority: The importance level (high, medium, low)
- actionable: Whether this can be immediately acted upon (true/false)
- estimated_impact: Expected benefit if implemented
- category: General classification

Return ONLY the JSON array without additional text.
`)
	return b.String()
}

func buildInterventionPrompt(input interventions.GenerateInput, count int) string {
	studentInfo := map[string]string{
		"id":       input.Profile.ID,
		"fullName": input.Profile.FullName,
		"role":     input.Profile.Role,
	}
	var b strings.Builder
	fmt.Fprintf(&b, "As an educational AI advisor for counselors, generate %d personalized intervention suggestions for a student with these attributes:\n\n", count)
	fmt.Fprintf(&b, "Student Info: %s\n", mustJSON(studentInfo))
	fmt.Fprintf(&b, "Attendance Data: %s\n", mustJSON(input.Attendance))
	fmt.Fprintf(&b, "Task Completion: %s\n", mustJSON(input.Tasks))
	if concern := strings.TrimSpace(input.SpecificConcern); concern != "" {
		fmt.Fprintf(&b, "Specific Concern: %s\n", concern)
	}
	b.WriteString(`
Format each intervention suggestion as a JSON object with these fields:
- id: A unique identifier
- type: The category (attendance, academic, personal, career, behavioral)
- title: A concise title for the intervention
- approach: The recommended counseling approach
- description: A detailed explanation of the intervention (3-5 sentences)
- urgency: How quickly this should be addressed (immediate, soon, monitoring)
- expected_outcome: The anticipated result of successful intervention
- follow_up: Suggested follow-up actions and timeframe

Return ONLY the JSON array without additional text.
`)
	return b.String()
}

func pendingTasks(items []recommendations.TaskFeature) []recommendations.TaskFeature {
	var out []recommendations.TaskFeature
	for _, t := range items {
		if t.Status != "completed" {
			out = append(out, t)
		}
	}
	return out
}

func head[T any](items []T, limit int) []T {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}

func mustJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(data)
}
