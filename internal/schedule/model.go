package schedule

// Entry is one weekly schedule slot for a student.
type Entry struct {
	ID        string `json:"id"`
	StudentID string `json:"studentId"`
	ClassID   string `json:"classId"`
	ClassName string `json:"className"`
	Weekday   string `json:"weekday"`
}
