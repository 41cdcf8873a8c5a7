package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

const routineColumns = `id, user_id, name, description, COALESCE(image_url, ''), created_at, updated_at`

const routineWorkoutsSelect = `
	SELECT rw.id, rw.routine_id, rw.workout_id, rw.number, w.name, w.description
	FROM routine_workouts rw
	JOIN workouts w ON w.id = rw.workout_id`

func (r *Repo) AddRoutine(ctx context.Context, userID int, details Details) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	routine, err := scanRoutine(r.db.QueryRow(
		ctx,
		`INSERT INTO routines (user_id, name, description, image_url)
			VALUES ($1, $2, $3, NULLIF($4, ''))
		RETURNING `+routineColumns,
		userID, details.Name, details.Description, details.ImageURL,
	))
	if err != nil {
		return nil, fmt.Errorf("insert routine: %w", err)
	}
	routine.Workouts = []RoutineWorkout{}

	span.SetAttributes(attribute.Int("routine.id", routine.ID))
	return routine, nil
}

func (r *Repo) GetRoutine(ctx context.Context, id, userID int) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("routine.id", id))

	return loadRoutine(ctx, r.db, id, userID)
}

func (r *Repo) ListRoutines(ctx context.Context, userID int) (_ []Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+routineColumns+` FROM routines WHERE user_id = $1 ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list routines [query]: %w", err)
	}
	routines, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Routine, error) {
		routine, err := scanRoutine(row)
		if err != nil {
			return Routine{}, err
		}
		routine.Workouts = []RoutineWorkout{}
		return *routine, nil
	})
	if err != nil {
		return nil, fmt.Errorf("list routines [collect]: %w", err)
	}
	if len(routines) == 0 {
		return []Routine{}, nil
	}

	byID := make(map[int]int, len(routines))
	for i := range routines {
		byID[routines[i].ID] = i
	}

	rwRows, err := r.db.Query(ctx, routineWorkoutsSelect+`
		JOIN routines r ON r.id = rw.routine_id
		WHERE r.user_id = $1
		ORDER BY rw.routine_id, rw.number, rw.id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list routine workouts [query]: %w", err)
	}
	defer rwRows.Close()

	for rwRows.Next() {
		routineID, rw, err := scanRoutineWorkout(rwRows)
		if err != nil {
			return nil, fmt.Errorf("list routine workouts [rows scan]: %w", err)
		}
		if i, ok := byID[routineID]; ok {
			routines[i].Workouts = append(routines[i].Workouts, rw)
		}
	}
	if err := rwRows.Err(); err != nil {
		return nil, fmt.Errorf("list routine workouts [rows error]: %w", err)
	}

	return routines, nil
}

func (r *Repo) UpdateRoutine(ctx context.Context, id, userID int, patch Patch) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("routine.id", id))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	current, err := scanRoutine(tx.QueryRow(
		ctx,
		`SELECT `+routineColumns+` FROM routines WHERE id = $1 AND user_id = $2 FOR UPDATE`,
		id, userID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRoutineNotFound
		}
		return nil, fmt.Errorf("get routine: %w", err)
	}

	details, err := patch.Apply(current.Details)
	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec(
		ctx,
		`UPDATE routines
			SET name = $1, description = $2, image_url = NULLIF($3, ''), updated_at = NOW()
			WHERE id = $4 AND user_id = $5`,
		details.Name, details.Description, details.ImageURL, id, userID,
	); err != nil {
		return nil, fmt.Errorf("update routine: %w", err)
	}

	routine, err := loadRoutine(ctx, tx, id, userID)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return routine, nil
}

func (r *Repo) DeleteRoutine(ctx context.Context, id, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("routine.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM routines WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete routine: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRoutineNotFound
	}
	return nil
}

// AddRoutineWorkout places one of the user's workouts into the routine.
// A routine holds at most MaxWorkoutsPerRoutine workouts.
func (r *Repo) AddRoutineWorkout(ctx context.Context, routineID, userID int, item WorkoutItem) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.add_workout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("routine.id", routineID),
		attribute.Int("workout.id", item.WorkoutID),
	)

	return r.editRoutineWorkouts(ctx, routineID, userID, func(tx pgx.Tx, order []int) ([]int, error) {
		var owned bool
		if err := tx.QueryRow(
			ctx,
			`SELECT EXISTS (SELECT 1 FROM workouts WHERE id = $1 AND user_id = $2)`,
			item.WorkoutID, userID,
		).Scan(&owned); err != nil {
			return nil, fmt.Errorf("check workout: %w", err)
		}
		if !owned {
			return nil, ErrWorkoutNotFound
		}

		for _, id := range order {
			if id == item.WorkoutID {
				return nil, ErrWorkoutAlreadyInRoutine
			}
		}
		if len(order) >= MaxWorkoutsPerRoutine {
			return nil, ErrRoutineFull
		}

		if _, err := tx.Exec(
			ctx,
			`INSERT INTO routine_workouts (routine_id, workout_id, number) VALUES ($1, $2, 0)`,
			routineID, item.WorkoutID,
		); err != nil {
			if pkg.IsUniqueViolationError(err) {
				return nil, ErrWorkoutAlreadyInRoutine
			}
			return nil, fmt.Errorf("insert routine workout: %w", err)
		}

		return placeAt(order, item.WorkoutID, item.Number), nil
	})
}

func (r *Repo) RemoveRoutineWorkout(ctx context.Context, routineID, userID, workoutID int) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.remove_workout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("routine.id", routineID),
		attribute.Int("workout.id", workoutID),
	)

	return r.editRoutineWorkouts(ctx, routineID, userID, func(tx pgx.Tx, order []int) ([]int, error) {
		newOrder, err := removeFrom(order, workoutID)
		if err != nil {
			return nil, err
		}
		if err := routineWorkouts.delete(ctx, tx, routineID, workoutID); err != nil {
			return nil, err
		}
		return newOrder, nil
	})
}

func (r *Repo) MoveRoutineWorkout(ctx context.Context, routineID, userID, workoutID, number int) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.move_workout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("routine.id", routineID),
		attribute.Int("workout.id", workoutID),
		attribute.Int("number", number),
	)

	return r.editRoutineWorkouts(ctx, routineID, userID, func(_ pgx.Tx, order []int) ([]int, error) {
		return moveTo(order, workoutID, number)
	})
}

func (r *Repo) editRoutineWorkouts(ctx context.Context, routineID, userID int, edit editFunc) (*Routine, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	found, err := routineWorkouts.lockParent(ctx, tx, routineID, userID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrRoutineNotFound
	}

	order, err := routineWorkouts.order(ctx, tx, routineID)
	if err != nil {
		return nil, err
	}
	newOrder, err := edit(tx, order)
	if err != nil {
		if errors.Is(err, errNotListed) {
			return nil, ErrWorkoutNotInRoutine
		}
		return nil, err
	}
	if err := routineWorkouts.renumber(ctx, tx, routineID, newOrder); err != nil {
		return nil, err
	}

	routine, err := loadRoutine(ctx, tx, routineID, userID)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return routine, nil
}

func loadRoutine(ctx context.Context, q querier, id, userID int) (*Routine, error) {
	routine, err := scanRoutine(q.QueryRow(
		ctx,
		`SELECT `+routineColumns+` FROM routines WHERE id = $1 AND user_id = $2`,
		id, userID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRoutineNotFound
		}
		return nil, fmt.Errorf("get routine: %w", err)
	}

	rows, err := q.Query(ctx, routineWorkoutsSelect+`
		WHERE rw.routine_id = $1
		ORDER BY rw.number, rw.id`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("routine workouts [query]: %w", err)
	}
	defer rows.Close()

	routine.Workouts = []RoutineWorkout{}
	for rows.Next() {
		_, rw, err := scanRoutineWorkout(rows)
		if err != nil {
			return nil, fmt.Errorf("routine workouts [rows scan]: %w", err)
		}
		routine.Workouts = append(routine.Workouts, rw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("routine workouts [rows error]: %w", err)
	}

	return routine, nil
}

func scanRoutine(row pgx.Row) (*Routine, error) {
	var rt Routine
	if err := row.Scan(
		&rt.ID,
		&rt.UserID,
		&rt.Name,
		&rt.Description,
		&rt.ImageURL,
		&rt.CreatedAt,
		&rt.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &rt, nil
}

func scanRoutineWorkout(row pgx.Row) (routineID int, rw RoutineWorkout, err error) {
	err = row.Scan(&rw.ID, &routineID, &rw.WorkoutID, &rw.Number, &rw.Name, &rw.Description)
	return routineID, rw, err
}
