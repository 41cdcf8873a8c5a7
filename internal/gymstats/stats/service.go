package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/liftlog/internal/gymstats/exercises"
	"github.com/2beens/liftlog/internal/gymstats/sessions"
	"github.com/2beens/liftlog/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=stats_test

type endedSessions interface {
	Ended(ctx context.Context, userID int, from, to *time.Time) ([]sessions.Session, error)
}

type exerciseHistory interface {
	ExerciseHistory(ctx context.Context, userID, exerciseID int) ([]sessions.ProgressEntry, error)
}

type exerciseGetter interface {
	Get(ctx context.Context, id, userID int) (*exercises.Exercise, error)
}

type ExerciseProgress struct {
	Exercise     *exercises.Exercise       `json:"exercise"`
	ProgressData []sessions.ProgressRecord `json:"progressData"`
	sessions.Best
	TotalVolume   int `json:"totalVolume"`
	TotalSessions int `json:"totalSessions"`
}

type Service struct {
	engine    *Engine
	sessions  endedSessions
	history   exerciseHistory
	exercises exerciseGetter
}

func NewService(
	engine *Engine,
	sessions endedSessions,
	history exerciseHistory,
	exercises exerciseGetter,
) *Service {
	return &Service{
		engine:    engine,
		sessions:  sessions,
		history:   history,
		exercises: exercises,
	}
}

func (s *Service) Dashboard(ctx context.Context, userID int) (_ *Dashboard, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.stats.dashboard")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	ended, err := s.sessions.Ended(ctx, userID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("list ended sessions: %w", err)
	}
	span.SetAttributes(attribute.Int("sessions.count", len(ended)))

	dashboard := s.engine.Dashboard(ended)
	return &dashboard, nil
}

// ExerciseProgress reports progress over ended sessions only. Totals cover the
// whole history, the progress data is truncated to limit.
func (s *Service) ExerciseProgress(ctx context.Context, userID, exerciseID, limit int) (_ *ExerciseProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.stats.exercise_progress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercise, err := s.exercises.Get(ctx, exerciseID, userID)
	if err != nil {
		return nil, err
	}

	history, err := s.history.ExerciseHistory(ctx, userID, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("exercise history: %w", err)
	}
	ended := sessions.OnlyEnded(history)

	all := sessions.ExerciseProgress(ended, 0)
	progress := all
	if limit > 0 && len(progress) > limit {
		progress = progress[:limit]
	}

	return &ExerciseProgress{
		Exercise:      exercise,
		ProgressData:  progress,
		Best:          sessions.BestMetrics(progress),
		TotalVolume:   sessions.HistoryVolume(ended),
		TotalSessions: sessions.DistinctSessions(all),
	}, nil
}

func (s *Service) MonthlySummary(ctx context.Context, userID, year, month int) (_ *MonthlySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.stats.monthly_summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	ended, err := s.endedInMonth(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}
	return s.engine.MonthlySummary(ended, year, month)
}

func (s *Service) Calendar(ctx context.Context, userID, year, month int) (_ map[string]int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.stats.calendar")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	ended, err := s.endedInMonth(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}
	return s.engine.CalendarData(ended, year, month)
}

func (s *Service) endedInMonth(ctx context.Context, userID, year, month int) ([]sessions.Session, error) {
	if err := validMonth(month); err != nil {
		return nil, err
	}
	from, to := s.engine.MonthRange(year, month)
	ended, err := s.sessions.Ended(ctx, userID, &from, &to)
	if err != nil {
		return nil, fmt.Errorf("list ended sessions: %w", err)
	}
	return ended, nil
}
