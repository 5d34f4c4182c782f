package tasks

import "time"

const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusOverdue    = "overdue"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type Task struct {
	ID          string     `json:"id"`
	StudentID   string     `json:"studentId"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Summary aggregates a student's task list.
type Summary struct {
	TotalTasks     int     `json:"totalTasks"`
	CompletedCount int     `json:"completedCount"`
	PendingCount   int     `json:"pendingCount"`
	OverdueCount   int     `json:"overdueCount"`
	CompletionRate float64 `json:"completionRate"`
}

// ValidStatus reports whether s is a known task status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusOverdue:
		return true
	default:
		return false
	}
}

// ValidPriority reports whether p is a known priority.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// IsOverdue reports whether the task is past due and not completed as of now.
func (t Task) IsOverdue(now time.Time) bool {
	if t.Status == StatusCompleted {
		return false
	}
	return t.DueDate != nil && t.DueDate.Before(now)
}

// Summarize reduces tasks to counts and a completion rate. An empty list
// yields a 100% rate: absence of data is not poor performance.
func Summarize(items []Task, now time.Time) Summary {
	sum := Summary{TotalTasks: len(items)}
	for _, t := range items {
		switch t.Status {
		case StatusCompleted:
			sum.CompletedCount++
		case StatusPending:
			sum.PendingCount++
		}
		if t.IsOverdue(now) {
			sum.OverdueCount++
		}
	}
	if sum.TotalTasks == 0 {
		sum.CompletionRate = 100
		return sum
	}
	sum.CompletionRate = float64(sum.CompletedCount) / float64(sum.TotalTasks) * 100
	return sum
}
