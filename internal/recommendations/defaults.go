package recommendations

// DefaultRecommendations is the static floor of the waterfall, returned when
// neither the model tier nor the rule tier produced anything, or when the
// student could not be resolved at all. Always non-empty.
func DefaultRecommendations() []Recommendation {
	return []Recommendation{
		{
			ID:              "default-attendance",
			Type:            TypeAttendanceImprovement,
			Title:           "Maintain Consistent Attendance",
			Description:     "Regular class attendance is one of the strongest predictors of academic success. Aim to attend every scheduled session.",
			Priority:        PriorityHigh,
			Actionable:      true,
			EstimatedImpact: "Foundation for all academic progress",
			Category:        "Attendance",
		},
		{
			ID:              "default-organization",
			Type:            TypeTaskPrioritization,
			Title:           "Organize Your Week",
			Description:     "Spend ten minutes every Sunday listing the week's tasks and deadlines, then order them by due date and importance.",
			Priority:        PriorityMedium,
			Actionable:      true,
			EstimatedImpact: "Fewer missed deadlines",
			Category:        "Organization",
		},
		{
			ID:              "default-study",
			Type:            TypeStudyTip,
			Title:           "Study in Short Focused Blocks",
			Description:     "Work in 25-minute focused blocks with 5-minute breaks. Short, regular sessions retain more than long irregular ones.",
			Priority:        PriorityMedium,
			Actionable:      true,
			EstimatedImpact: "More effective study time",
			Category:        "Study Habits",
		},
	}
}
