package sessions

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/liftlog/internal/gymstats/equipment"
	"github.com/2beens/liftlog/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=sessions_test

// SessionTx writes session changes inside the transaction holding the session lock.
type SessionTx interface {
	InsertSet(ctx context.Context, set *Set) error
	UpdateSet(ctx context.Context, set Set) error
	DeleteSet(ctx context.Context, sessionID, setID int) error
	InsertExercise(ctx context.Context, ex *SessionExercise) error
	DeleteExercise(ctx context.Context, sessionID, exerciseID int) error
	UpdateSession(ctx context.Context, session Session) error
}

// LockedFunc mutates a locked session and persists the result through tx.
type LockedFunc func(ctx context.Context, session *Session, tx SessionTx) error

type sessionsRepo interface {
	Create(ctx context.Context, session Session) (*Session, error)
	Get(ctx context.Context, id, userID int) (*Session, error)
	List(ctx context.Context, userID, limit, offset int) (_ []Session, total int, err error)
	Delete(ctx context.Context, id, userID int) error
	SessionIDForSet(ctx context.Context, setID, userID int) (int, error)
	ExerciseHistory(ctx context.Context, userID, exerciseID int) ([]ProgressEntry, error)
	ListEnded(ctx context.Context, userID int, from, to *time.Time) ([]Session, error)
	Locked(ctx context.Context, id, userID int, fn LockedFunc) error
}

type equipmentLookup interface {
	EquipmentConfig(ctx context.Context, userID, exerciseID int) (equipment.Config, error)
}

type Service struct {
	repo      sessionsRepo
	equipment equipmentLookup
	now       func() time.Time
}

func NewService(repo sessionsRepo, equipment equipmentLookup) *Service {
	return &Service{
		repo:      repo,
		equipment: equipment,
		now:       time.Now,
	}
}

// WithClock replaces the time source, used in tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

type StartParams struct {
	WorkoutID *int   `json:"workoutId,omitempty"`
	Notes     string `json:"notes"`
}

func (s *Service) Start(ctx context.Context, userID int, params StartParams) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.start")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	created, err := s.repo.Create(ctx, Session{
		UserID:    userID,
		WorkoutID: params.WorkoutID,
		Notes:     params.Notes,
		StartTime: s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return created, nil
}

func (s *Service) Get(ctx context.Context, id, userID int) (*Session, error) {
	return s.repo.Get(ctx, id, userID)
}

func (s *Service) List(ctx context.Context, userID, limit, offset int) ([]Session, int, error) {
	return s.repo.List(ctx, userID, limit, offset)
}

func (s *Service) Delete(ctx context.Context, id, userID int) error {
	return s.repo.Delete(ctx, id, userID)
}

func (s *Service) UpdateNotes(ctx context.Context, id, userID int, notes string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.update_notes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var updated Session
	err = s.repo.Locked(ctx, id, userID, func(ctx context.Context, session *Session, tx SessionTx) error {
		if err := session.SetNotes(notes); err != nil {
			return err
		}
		updated = *session
		return tx.UpdateSession(ctx, *session)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// End closes the session, computing its total volume once.
func (s *Service) End(ctx context.Context, id, userID int) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.end")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", id))

	var ended Session
	err = s.repo.Locked(ctx, id, userID, func(ctx context.Context, session *Session, tx SessionTx) error {
		if session.Ended() {
			return ErrAlreadyEnded
		}

		configs := make(map[int]equipment.Config)
		for _, set := range session.Sets {
			if _, ok := configs[set.ExerciseID]; ok {
				continue
			}
			cfg, err := s.equipment.EquipmentConfig(ctx, userID, set.ExerciseID)
			if err != nil {
				return fmt.Errorf("equipment config [%d]: %w", set.ExerciseID, err)
			}
			configs[set.ExerciseID] = cfg
		}

		if err := session.End(s.now(), func(exerciseID int) (equipment.Config, error) {
			return configs[exerciseID], nil
		}); err != nil {
			return err
		}

		ended = *session
		return tx.UpdateSession(ctx, *session)
	})
	if err != nil {
		return nil, err
	}

	log.Debugf("session %d ended, total volume: %d", ended.ID, *ended.TotalVolume)
	return &ended, nil
}

func (s *Service) AddExercise(ctx context.Context, sessionID, userID, exerciseID, number int, observations string) (_ *SessionExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.add_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	// also checks the exercise belongs to the user
	cfg, err := s.equipment.EquipmentConfig(ctx, userID, exerciseID)
	if err != nil {
		return nil, err
	}

	var added SessionExercise
	err = s.repo.Locked(ctx, sessionID, userID, func(ctx context.Context, session *Session, tx SessionTx) error {
		ex, err := session.AddExercise(exerciseID, number, observations)
		if err != nil {
			return err
		}
		ex.Equipment = cfg
		if err := tx.InsertExercise(ctx, ex); err != nil {
			return fmt.Errorf("insert session exercise: %w", err)
		}
		added = *ex
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &added, nil
}

func (s *Service) RemoveExercise(ctx context.Context, sessionID, userID, exerciseID int) error {
	return s.repo.Locked(ctx, sessionID, userID, func(ctx context.Context, session *Session, tx SessionTx) error {
		if err := session.RemoveExercise(exerciseID); err != nil {
			return err
		}
		return tx.DeleteExercise(ctx, sessionID, exerciseID)
	})
}

// AddSet logs a set. The set limit and duplicate checks run under the session lock.
func (s *Service) AddSet(ctx context.Context, sessionID, userID, exerciseID int, data SetData) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.add_set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("session.id", sessionID),
		attribute.Int("exercise.id", exerciseID),
		attribute.Int("set.number", data.SetNumber),
	)

	if _, err := s.equipment.EquipmentConfig(ctx, userID, exerciseID); err != nil {
		return nil, err
	}

	var added Set
	err = s.repo.Locked(ctx, sessionID, userID, func(ctx context.Context, session *Session, tx SessionTx) error {
		set, err := session.AddSet(exerciseID, data)
		if err != nil {
			return err
		}
		if err := tx.InsertSet(ctx, set); err != nil {
			return fmt.Errorf("insert set: %w", err)
		}
		added = *set
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &added, nil
}

func (s *Service) UpdateSet(ctx context.Context, setID, userID int, patch SetPatch) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.update_set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	sessionID, err := s.repo.SessionIDForSet(ctx, setID, userID)
	if err != nil {
		return nil, err
	}

	var updated Set
	err = s.repo.Locked(ctx, sessionID, userID, func(ctx context.Context, session *Session, tx SessionTx) error {
		set, err := session.UpdateSet(setID, patch)
		if err != nil {
			return err
		}
		if err := tx.UpdateSet(ctx, *set); err != nil {
			return fmt.Errorf("update set: %w", err)
		}
		updated = *set
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *Service) DeleteSet(ctx context.Context, setID, userID int) error {
	sessionID, err := s.repo.SessionIDForSet(ctx, setID, userID)
	if err != nil {
		return err
	}

	return s.repo.Locked(ctx, sessionID, userID, func(ctx context.Context, session *Session, tx SessionTx) error {
		if err := session.RemoveSet(setID); err != nil {
			return err
		}
		return tx.DeleteSet(ctx, sessionID, setID)
	})
}

// Progress returns the working/back-off history of one exercise and its bests.
func (s *Service) Progress(ctx context.Context, userID, exerciseID, limit int) (_ []ProgressRecord, _ Best, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.progress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	history, err := s.repo.ExerciseHistory(ctx, userID, exerciseID)
	if err != nil {
		return nil, Best{}, fmt.Errorf("exercise history: %w", err)
	}

	records := ExerciseProgress(history, limit)
	return records, BestMetrics(records), nil
}

// Ended returns the user's ended sessions started within [from, to).
func (s *Service) Ended(ctx context.Context, userID int, from, to *time.Time) ([]Session, error) {
	return s.repo.ListEnded(ctx, userID, from, to)
}
