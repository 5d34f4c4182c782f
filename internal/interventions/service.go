package interventions

import (
	"context"
	"errors"
	"time"

	"campus-backend/internal/attendance"
	"campus-backend/internal/profiles"
	"campus-backend/internal/shared/metrics"
	"campus-backend/internal/shared/telemetry"
	"campus-backend/internal/tasks"
)

// attendanceWindow bounds the recent records used for the counselor view.
const attendanceWindow = 20

// ErrStudentNotFound means the requested student has no profile.
var ErrStudentNotFound = errStudentNotFound{}

type errStudentNotFound struct{}

func (errStudentNotFound) Error() string { return "student not found" }

// Tier identifies which stage produced the suggestions.
type Tier string

const (
	TierLLM   Tier = "llm"
	TierRules Tier = "rules"
)

// Generator is the model-backed suggestion capability. Any error falls back
// to the rule engine.
type Generator interface {
	GenerateInterventions(ctx context.Context, input GenerateInput, count int) ([]Suggestion, error)
}

// GenerateInput is everything the model tier needs about one student.
type GenerateInput struct {
	Profile         profiles.Profile
	Attendance      attendance.Summary
	Tasks           tasks.Summary
	SpecificConcern string
}

// StudentSummary echoes the aggregated numbers back to the counselor so the
// suggestions can be read in context.
type StudentSummary struct {
	StudentID      string  `json:"studentId"`
	FullName       string  `json:"fullName"`
	AttendanceRate float64 `json:"attendanceRate"`
	CompletionRate float64 `json:"completionRate"`
}

// Result is one intervention generation outcome.
type Result struct {
	Suggestions []Suggestion   `json:"suggestions"`
	Tier        Tier           `json:"tier"`
	Student     StudentSummary `json:"student"`
}

// Service aggregates a student's summaries and produces interventions,
// model-first with a deterministic fallback.
type Service struct {
	Profiles   profiles.Repo
	Attendance attendance.Repo
	Tasks      tasks.Repo
	Generator  Generator
}

func NewService(p profiles.Repo, a attendance.Repo, t tasks.Repo, generator Generator) *Service {
	return &Service{Profiles: p, Attendance: a, Tasks: t, Generator: generator}
}

// Suggest builds intervention suggestions for one student. Unlike the
// student-facing path, an unknown student is an error here: counselors ask
// about a specific person and deserve a clear 404 over generic advice.
func (s *Service) Suggest(ctx context.Context, studentID, specificConcern string) (Result, error) {
	profile, err := s.Profiles.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, profiles.ErrNotFound) {
			return Result{}, ErrStudentNotFound
		}
		return Result{}, err
	}

	records, err := s.Attendance.ListByStudent(ctx, studentID, attendanceWindow)
	if err != nil {
		telemetry.Error("interventions.attendance_read_failed", map[string]any{"student_id": studentID, "error": err.Error()})
		records = nil
	}
	attSummary := attendance.Summarize(records)

	taskRows, err := s.Tasks.ListByStudent(ctx, studentID, 0)
	if err != nil {
		telemetry.Error("interventions.tasks_read_failed", map[string]any{"student_id": studentID, "error": err.Error()})
		taskRows = nil
	}
	taskSummary := tasks.Summarize(taskRows, time.Now().UTC())

	input := GenerateInput{
		Profile:         profile,
		Attendance:      attSummary,
		Tasks:           taskSummary,
		SpecificConcern: specificConcern,
	}

	suggestions, tier := s.generate(ctx, input)
	metrics.IncInterventionTier(string(tier))
	telemetry.Info("interventions.generated", map[string]any{
		"student_id": studentID,
		"tier":       string(tier),
		"count":      len(suggestions),
	})

	return Result{
		Suggestions: suggestions,
		Tier:        tier,
		Student: StudentSummary{
			StudentID:      profile.ID,
			FullName:       profile.FullName,
			AttendanceRate: attSummary.AttendanceRate,
			CompletionRate: taskSummary.CompletionRate,
		},
	}, nil
}

func (s *Service) generate(ctx context.Context, input GenerateInput) ([]Suggestion, Tier) {
	if s.Generator != nil {
		start := time.Now()
		items, err := s.Generator.GenerateInterventions(ctx, input, MaxSuggestions)
		metrics.ObserveLLMDurationMs(float64(time.Since(start).Milliseconds()))
		switch {
		case err != nil:
			telemetry.Info("interventions.llm_tier_skipped", map[string]any{"student_id": input.Profile.ID, "reason": err.Error()})
		case len(items) == 0:
			telemetry.Info("interventions.llm_tier_empty", map[string]any{"student_id": input.Profile.ID})
		default:
			if len(items) > MaxSuggestions {
				items = items[:MaxSuggestions]
			}
			return items, TierLLM
		}
	}
	items := Evaluate(input.Profile, input.Attendance, input.Tasks)
	if len(items) > MaxSuggestions {
		items = items[:MaxSuggestions]
	}
	return items, TierRules
}
