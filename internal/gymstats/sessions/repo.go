package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/liftlog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Create(ctx context.Context, session Session) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	// the workout, when given, must belong to the same user
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workout_sessions (user_id, workout_id, notes, start_time)
			SELECT $1, $2, $3, $4
			WHERE $2::int IS NULL OR EXISTS (SELECT 1 FROM workouts WHERE id = $2 AND user_id = $1)
		RETURNING id;`,
		session.UserID, session.WorkoutID, session.Notes, session.StartTime,
	).Scan(&session.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("insert session: %w", err)
	}

	span.SetAttributes(attribute.Int("session.id", session.ID))
	return loadSession(ctx, r.db, session.ID, session.UserID, false)
}

// Get returns the session with its exercises and sets.
func (r *Repo) Get(ctx context.Context, id, userID int) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", id))

	return loadSession(ctx, r.db, id, userID, false)
}

func (r *Repo) List(ctx context.Context, userID, limit, offset int) (_ []Session, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("limit", limit), attribute.Int("offset", offset))

	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM workout_sessions WHERE user_id = $1`,
		userID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sessions: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		sessionSelect+`
			WHERE ws.user_id = $1
			ORDER BY ws.start_time DESC
			LIMIT $2 OFFSET $3;`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("query sessions: %w", err)
	}

	sessions, err := rows2sessions(rows)
	if err != nil {
		return nil, 0, err
	}
	return sessions, total, nil
}

// ListEnded returns ended sessions started within [from, to), with their exercises.
// Nil bounds are open.
func (r *Repo) ListEnded(ctx context.Context, userID int, from, to *time.Time) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.list_ended")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		sessionSelect+`
			WHERE ws.user_id = $1
				AND ws.end_time IS NOT NULL
				AND ($2::timestamptz IS NULL OR ws.start_time >= $2)
				AND ($3::timestamptz IS NULL OR ws.start_time < $3)
			ORDER BY ws.start_time DESC;`,
		userID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query ended sessions: %w", err)
	}

	sessions, err := rows2sessions(rows)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return sessions, nil
	}

	ids := make([]int, 0, len(sessions))
	byID := make(map[int]*Session, len(sessions))
	for i := range sessions {
		ids = append(ids, sessions[i].ID)
		byID[sessions[i].ID] = &sessions[i]
	}

	exRows, err := r.db.Query(ctx, sessionExercisesSelect+`
		WHERE se.session_id = ANY($1)
		ORDER BY se.session_id, se.number, se.id;`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("query session exercises: %w", err)
	}
	exercises, err := rows2sessionExercises(exRows)
	if err != nil {
		return nil, err
	}
	for _, ex := range exercises {
		if s, ok := byID[ex.SessionID]; ok {
			s.Exercises = append(s.Exercises, ex)
		}
	}

	span.SetAttributes(attribute.Int("sessions.count", len(sessions)))
	return sessions, nil
}

func (r *Repo) Delete(ctx context.Context, id, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout_sessions WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// SessionIDForSet resolves the owning session of a set, scoped to the user.
func (r *Repo) SessionIDForSet(ctx context.Context, setID, userID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.session_for_set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("set.id", setID))

	var sessionID int
	err = r.db.QueryRow(
		ctx,
		`SELECT ss.session_id
		FROM session_sets ss
		JOIN workout_sessions ws ON ws.id = ss.session_id
		WHERE ss.id = $1 AND ws.user_id = $2`,
		setID, userID,
	).Scan(&sessionID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrSetNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("query set session: %w", err)
	}
	return sessionID, nil
}

// ExerciseHistory returns every logged set of the exercise, newest session first.
func (r *Repo) ExerciseHistory(ctx context.Context, userID, exerciseID int) (_ []ProgressEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.exercise_history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	rows, err := r.db.Query(
		ctx,
		`SELECT
			ss.id, ss.session_id, ss.set_number, ss.series_type, ss.weight, ss.reps,
			ws.start_time, ws.end_time IS NOT NULL,
			e.bar_weight, e.has_pulley, e.is_unilateral
		FROM session_sets ss
		JOIN workout_sessions ws ON ws.id = ss.session_id
		JOIN exercises e ON e.id = ss.exercise_id
		WHERE ws.user_id = $1 AND ss.exercise_id = $2
		ORDER BY ws.start_time DESC, ss.set_number;`,
		userID, exerciseID,
	)
	if err != nil {
		return nil, fmt.Errorf("query exercise history: %w", err)
	}
	defer rows.Close()

	var history []ProgressEntry
	for rows.Next() {
		var entry ProgressEntry
		if err := rows.Scan(
			&entry.SetID,
			&entry.SessionID,
			&entry.SetNumber,
			&entry.SeriesType,
			&entry.Weight,
			&entry.Reps,
			&entry.Date,
			&entry.SessionEnded,
			&entry.Equipment.BarWeight,
			&entry.Equipment.HasPulley,
			&entry.Equipment.IsUnilateral,
		); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		history = append(history, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}

// Locked loads the session with a row lock and runs fn inside the same
// transaction. Concurrent writers to one session queue up on the lock.
// The transaction commits only when fn returns nil.
func (r *Repo) Locked(ctx context.Context, id, userID int, fn LockedFunc) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.locked")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", id))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		// no-op after a successful commit
		_ = tx.Rollback(ctx)
	}()

	session, err := loadSession(ctx, tx, id, userID, true)
	if err != nil {
		return err
	}

	if err := fn(ctx, session, &pgxSessionTx{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

const sessionSelect = `
	SELECT
		ws.id, ws.user_id, ws.workout_id, COALESCE(w.name, ''), ws.notes,
		ws.start_time, ws.end_time, ws.total_volume
	FROM workout_sessions ws
	LEFT JOIN workouts w ON w.id = ws.workout_id`

const sessionExercisesSelect = `
	SELECT
		se.id, se.session_id, se.exercise_id, se.number, se.observations,
		e.name, e.muscle_group, e.bar_weight, e.has_pulley, e.is_unilateral
	FROM session_exercises se
	JOIN exercises e ON e.id = se.exercise_id`

func loadSession(ctx context.Context, q querier, id, userID int, forUpdate bool) (*Session, error) {
	query := sessionSelect + ` WHERE ws.id = $1 AND ws.user_id = $2`
	if forUpdate {
		query += ` FOR UPDATE OF ws`
	}

	rows, err := q.Query(ctx, query, id, userID)
	if err != nil {
		return nil, fmt.Errorf("query session: %w", err)
	}
	sessions, err := rows2sessions(rows)
	if err != nil {
		return nil, err
	}
	if len(sessions) != 1 {
		return nil, ErrSessionNotFound
	}
	session := &sessions[0]

	exRows, err := q.Query(ctx, sessionExercisesSelect+`
		WHERE se.session_id = $1
		ORDER BY se.number, se.id;`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("query session exercises: %w", err)
	}
	if session.Exercises, err = rows2sessionExercises(exRows); err != nil {
		return nil, err
	}

	setRows, err := q.Query(ctx, `
		SELECT id, session_id, exercise_id, set_number, series_type, weight, reps, done, created_at
		FROM session_sets
		WHERE session_id = $1
		ORDER BY exercise_id, set_number;`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("query session sets: %w", err)
	}
	defer setRows.Close()

	for setRows.Next() {
		var set Set
		if err := setRows.Scan(
			&set.ID,
			&set.SessionID,
			&set.ExerciseID,
			&set.SetNumber,
			&set.SeriesType,
			&set.Weight,
			&set.Reps,
			&set.Done,
			&set.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan set: %w", err)
		}
		session.Sets = append(session.Sets, set)
	}
	if err := setRows.Err(); err != nil {
		return nil, err
	}

	return session, nil
}

func rows2sessions(rows pgx.Rows) ([]Session, error) {
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var s Session
		if err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.WorkoutID,
			&s.WorkoutName,
			&s.Notes,
			&s.StartTime,
			&s.EndTime,
			&s.TotalVolume,
		); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

func rows2sessionExercises(rows pgx.Rows) ([]SessionExercise, error) {
	defer rows.Close()

	var exercises []SessionExercise
	for rows.Next() {
		var ex SessionExercise
		if err := rows.Scan(
			&ex.ID,
			&ex.SessionID,
			&ex.ExerciseID,
			&ex.Number,
			&ex.Observations,
			&ex.Name,
			&ex.MuscleGroup,
			&ex.Equipment.BarWeight,
			&ex.Equipment.HasPulley,
			&ex.Equipment.IsUnilateral,
		); err != nil {
			return nil, fmt.Errorf("scan session exercise: %w", err)
		}
		exercises = append(exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return exercises, nil
}

// pgxSessionTx persists session mutations inside the lock transaction.
type pgxSessionTx struct {
	tx pgx.Tx
}

func (t *pgxSessionTx) InsertSet(ctx context.Context, set *Set) error {
	return t.tx.QueryRow(
		ctx,
		`INSERT INTO session_sets
			(session_id, exercise_id, set_number, series_type, weight, reps, done)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at;`,
		set.SessionID, set.ExerciseID, set.SetNumber, int(set.SeriesType), set.Weight, set.Reps, set.Done,
	).Scan(&set.ID, &set.CreatedAt)
}

func (t *pgxSessionTx) UpdateSet(ctx context.Context, set Set) error {
	tag, err := t.tx.Exec(
		ctx,
		`UPDATE session_sets
		SET series_type = $1, weight = $2, reps = $3, done = $4, updated_at = now()
		WHERE id = $5 AND session_id = $6;`,
		int(set.SeriesType), set.Weight, set.Reps, set.Done, set.ID, set.SessionID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSetNotFound
	}
	return nil
}

func (t *pgxSessionTx) DeleteSet(ctx context.Context, sessionID, setID int) error {
	tag, err := t.tx.Exec(
		ctx,
		`DELETE FROM session_sets WHERE id = $1 AND session_id = $2`,
		setID, sessionID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSetNotFound
	}
	return nil
}

func (t *pgxSessionTx) InsertExercise(ctx context.Context, ex *SessionExercise) error {
	return t.tx.QueryRow(
		ctx,
		`INSERT INTO session_exercises (session_id, exercise_id, number, observations)
			VALUES ($1, $2, $3, $4)
		RETURNING id;`,
		ex.SessionID, ex.ExerciseID, ex.Number, ex.Observations,
	).Scan(&ex.ID)
}

func (t *pgxSessionTx) DeleteExercise(ctx context.Context, sessionID, exerciseID int) error {
	if _, err := t.tx.Exec(
		ctx,
		`DELETE FROM session_sets WHERE session_id = $1 AND exercise_id = $2`,
		sessionID, exerciseID,
	); err != nil {
		return fmt.Errorf("delete exercise sets: %w", err)
	}

	tag, err := t.tx.Exec(
		ctx,
		`DELETE FROM session_exercises WHERE session_id = $1 AND exercise_id = $2`,
		sessionID, exerciseID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionExerciseNotFound
	}
	return nil
}

func (t *pgxSessionTx) UpdateSession(ctx context.Context, session Session) error {
	tag, err := t.tx.Exec(
		ctx,
		`UPDATE workout_sessions
		SET notes = $1, end_time = $2, total_volume = $3, updated_at = now()
		WHERE id = $4 AND user_id = $5;`,
		session.Notes, session.EndTime, session.TotalVolume, session.ID, session.UserID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}
