package recommendations

import "time"

// Window sizes for feature aggregation.
const (
	attendanceWindow  = 30
	recentEventsLimit = 10
	taskWindow        = 50
)

// busiestDayThreshold is the weekly class count at or above which a weekday
// counts as overloaded.
const busiestDayThreshold = 4

// AttendanceEvent is one recent attendance data point, most recent first.
type AttendanceEvent struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// TaskFeature is the slice of a task the engine cares about.
type TaskFeature struct {
	Status   string     `json:"status"`
	Priority string     `json:"priority"`
	DueDate  *time.Time `json:"dueDate,omitempty"`
}

// ScheduleSlot is one (weekday, class) pair from the student's weekly schedule.
type ScheduleSlot struct {
	Weekday   string `json:"weekday"`
	ClassName string `json:"className"`
}

// FeatureSet is the derived, per-request summary of one student's signals.
// It is recomputed on every generation call and never cached.
type FeatureSet struct {
	StudentID          string             `json:"studentId"`
	AttendanceRate     int                `json:"attendanceRate"`
	RecentAttendance   []AttendanceEvent  `json:"recentAttendance"`
	Tasks              []TaskFeature      `json:"tasks"`
	Schedule           []ScheduleSlot     `json:"schedule"`
	BusiestWeekdays    []string           `json:"busiestWeekdays"`
	PerformanceMetrics map[string]float64 `json:"performanceMetrics,omitempty"`
}

// OverdueTaskCount counts tasks past due and not completed as of now.
func (f FeatureSet) OverdueTaskCount(now time.Time) int {
	count := 0
	for _, t := range f.Tasks {
		if t.Status == "completed" {
			continue
		}
		if t.DueDate != nil && t.DueDate.Before(now) {
			count++
		}
	}
	return count
}

// CompletionRatio returns completed/total over the task window, or 1 when the
// student has no tasks at all.
func (f FeatureSet) CompletionRatio() float64 {
	if len(f.Tasks) == 0 {
		return 1
	}
	completed := 0
	for _, t := range f.Tasks {
		if t.Status == "completed" {
			completed++
		}
	}
	return float64(completed) / float64(len(f.Tasks))
}

var weekdayOrder = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// BusiestWeekdays returns every weekday whose class count meets the density
// threshold, in calendar order. Ties are all included.
func BusiestWeekdays(schedule []ScheduleSlot) []string {
	counts := make(map[string]int, len(schedule))
	for _, slot := range schedule {
		counts[slot.Weekday]++
	}
	var out []string
	for _, day := range weekdayOrder {
		if counts[day] >= busiestDayThreshold {
			out = append(out, day)
		}
	}
	return out
}
