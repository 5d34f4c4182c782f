package recommendations

import (
	"context"
	"errors"
	"math"

	"campus-backend/internal/attendance"
	"campus-backend/internal/profiles"
	"campus-backend/internal/schedule"
	"campus-backend/internal/shared/telemetry"
	"campus-backend/internal/tasks"
)

// ErrStudentNotFound means the student id resolves to no profile at all.
var ErrStudentNotFound = errStudentNotFound{}

type errStudentNotFound struct{}

func (errStudentNotFound) Error() string { return "student not found" }

// Aggregator reduces a student's raw records to a FeatureSet. Store handles
// are injected, it never reaches into ambient request state.
type Aggregator struct {
	Profiles   profiles.Repo
	Attendance attendance.Repo
	Tasks      tasks.Repo
	Schedule   schedule.Repo
}

func NewAggregator(p profiles.Repo, a attendance.Repo, t tasks.Repo, s schedule.Repo) *Aggregator {
	return &Aggregator{Profiles: p, Attendance: a, Tasks: t, Schedule: s}
}

// Aggregate builds the feature set for one student. It fails only when the
// student has no profile; partial data (a failed task or schedule read)
// degrades to empty sequences so one broken signal does not block the rest.
func (a *Aggregator) Aggregate(ctx context.Context, studentID string) (FeatureSet, error) {
	if _, err := a.Profiles.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, profiles.ErrNotFound) {
			return FeatureSet{}, ErrStudentNotFound
		}
		telemetry.Error("features.profile_read_failed", map[string]any{"student_id": studentID, "error": err.Error()})
		return FeatureSet{}, ErrStudentNotFound
	}

	features := FeatureSet{StudentID: studentID}

	records, err := a.Attendance.ListByStudent(ctx, studentID, attendanceWindow)
	if err != nil {
		telemetry.Error("features.attendance_read_failed", map[string]any{"student_id": studentID, "error": err.Error()})
		records = nil
	}
	features.AttendanceRate = attendanceRate(records)
	features.RecentAttendance = recentEvents(records)

	taskRows, err := a.Tasks.ListByStudent(ctx, studentID, taskWindow)
	if err != nil {
		telemetry.Error("features.tasks_read_failed", map[string]any{"student_id": studentID, "error": err.Error()})
		taskRows = nil
	}
	for _, t := range taskRows {
		features.Tasks = append(features.Tasks, TaskFeature{
			Status:   t.Status,
			Priority: t.Priority,
			DueDate:  t.DueDate,
		})
	}

	slots, err := a.Schedule.ListByStudent(ctx, studentID)
	if err != nil {
		telemetry.Error("features.schedule_read_failed", map[string]any{"student_id": studentID, "error": err.Error()})
		slots = nil
	}
	for _, s := range slots {
		features.Schedule = append(features.Schedule, ScheduleSlot{Weekday: s.Weekday, ClassName: s.ClassName})
	}
	features.BusiestWeekdays = BusiestWeekdays(features.Schedule)

	return features, nil
}

// attendanceRate is round(100 * presentOrLate / total), with an empty window
// reading as 100. Absence of data is never poor attendance.
func attendanceRate(records []attendance.Record) int {
	if len(records) == 0 {
		return 100
	}
	presentOrLate := 0
	for _, r := range records {
		if r.Status == attendance.StatusPresent || r.Status == attendance.StatusLate {
			presentOrLate++
		}
	}
	return int(math.Round(100 * float64(presentOrLate) / float64(len(records))))
}

func recentEvents(records []attendance.Record) []AttendanceEvent {
	limit := len(records)
	if limit > recentEventsLimit {
		limit = recentEventsLimit
	}
	var out []AttendanceEvent
	for _, r := range records[:limit] {
		out = append(out, AttendanceEvent{Status: r.Status, Timestamp: r.CheckInTime})
	}
	return out
}
