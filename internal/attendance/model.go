package attendance

import "time"

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
	StatusExcused = "excused"
)

// Record is one attendance event for a student in a class session.
type Record struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"studentId"`
	SessionID   string    `json:"sessionId"`
	Status      string    `json:"status"`
	CheckInTime time.Time `json:"checkInTime"`
}

// Summary aggregates a student's recent attendance window.
type Summary struct {
	TotalSessions  int     `json:"totalSessions"`
	PresentCount   int     `json:"presentCount"`
	AbsentCount    int     `json:"absentCount"`
	LateCount      int     `json:"lateCount"`
	ExcusedCount   int     `json:"excusedCount"`
	AttendanceRate float64 `json:"attendanceRate"`
}

// ValidStatus reports whether s is a known attendance status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusExcused:
		return true
	default:
		return false
	}
}

// Summarize reduces records to per-status counts and a rate. An empty window
// yields a 100% rate: absence of data is not poor attendance.
func Summarize(records []Record) Summary {
	sum := Summary{TotalSessions: len(records)}
	for _, r := range records {
		switch r.Status {
		case StatusPresent:
			sum.PresentCount++
		case StatusAbsent:
			sum.AbsentCount++
		case StatusLate:
			sum.LateCount++
		case StatusExcused:
			sum.ExcusedCount++
		}
	}
	if sum.TotalSessions == 0 {
		sum.AttendanceRate = 100
		return sum
	}
	sum.AttendanceRate = float64(sum.PresentCount+sum.LateCount) / float64(sum.TotalSessions) * 100
	return sum
}
