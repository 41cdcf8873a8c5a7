package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/liftlog/internal/gymstats/exercises"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const workoutColumns = `id, user_id, name, description, COALESCE(image_url, ''), created_at, updated_at`

const workoutExercisesSelect = `
	SELECT
		we.id, we.workout_id, we.exercise_id, we.number, we.sets,
		e.name, e.muscle_group, e.bar_weight, e.has_pulley, e.is_unilateral
	FROM workout_exercises we
	JOIN exercises e ON e.id = we.exercise_id`

// Repo stores workouts and routines. Every query is scoped to the user,
// foreign rows look the same as missing ones.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddWorkout(ctx context.Context, userID int, details Details) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	workout, err := scanWorkout(r.db.QueryRow(
		ctx,
		`INSERT INTO workouts (user_id, name, description, image_url)
			VALUES ($1, $2, $3, NULLIF($4, ''))
		RETURNING `+workoutColumns,
		userID, details.Name, details.Description, details.ImageURL,
	))
	if err != nil {
		return nil, fmt.Errorf("insert workout: %w", err)
	}
	workout.Exercises = []WorkoutExercise{}

	span.SetAttributes(attribute.Int("workout.id", workout.ID))
	return workout, nil
}

// GetWorkout returns the workout with its exercises in order.
func (r *Repo) GetWorkout(ctx context.Context, id, userID int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", id))

	return loadWorkout(ctx, r.db, id, userID)
}

// ListWorkouts returns the user's workouts, newest first, with their exercises.
func (r *Repo) ListWorkouts(ctx context.Context, userID int) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+workoutColumns+` FROM workouts WHERE user_id = $1 ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list workouts [query]: %w", err)
	}
	defer rows.Close()

	workouts := []Workout{}
	byID := make(map[int]int)
	for rows.Next() {
		workout, err := scanWorkout(rows)
		if err != nil {
			return nil, fmt.Errorf("list workouts [rows scan]: %w", err)
		}
		workout.Exercises = []WorkoutExercise{}
		byID[workout.ID] = len(workouts)
		workouts = append(workouts, *workout)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list workouts [rows error]: %w", err)
	}
	if len(workouts) == 0 {
		return workouts, nil
	}

	exRows, err := r.db.Query(ctx, workoutExercisesSelect+`
		JOIN workouts w ON w.id = we.workout_id
		WHERE w.user_id = $1
		ORDER BY we.workout_id, we.number, we.id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list workout exercises [query]: %w", err)
	}
	defer exRows.Close()

	for exRows.Next() {
		workoutID, we, err := scanWorkoutExercise(exRows)
		if err != nil {
			return nil, fmt.Errorf("list workout exercises [rows scan]: %w", err)
		}
		if i, ok := byID[workoutID]; ok {
			workouts[i].Exercises = append(workouts[i].Exercises, we)
		}
	}
	if err := exRows.Err(); err != nil {
		return nil, fmt.Errorf("list workout exercises [rows error]: %w", err)
	}

	return workouts, nil
}

func (r *Repo) UpdateWorkout(ctx context.Context, id, userID int, patch Patch) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", id))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	current, err := scanWorkout(tx.QueryRow(
		ctx,
		`SELECT `+workoutColumns+` FROM workouts WHERE id = $1 AND user_id = $2 FOR UPDATE`,
		id, userID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("get workout: %w", err)
	}

	details, err := patch.Apply(current.Details)
	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec(
		ctx,
		`UPDATE workouts
			SET name = $1, description = $2, image_url = NULLIF($3, ''), updated_at = NOW()
			WHERE id = $4 AND user_id = $5`,
		details.Name, details.Description, details.ImageURL, id, userID,
	); err != nil {
		return nil, fmt.Errorf("update workout: %w", err)
	}

	workout, err := loadWorkout(ctx, tx, id, userID)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return workout, nil
}

// DeleteWorkout removes the workout. Routines drop it, sessions started from it keep their data.
func (r *Repo) DeleteWorkout(ctx context.Context, id, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM workouts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

// AddWorkoutExercise places one of the user's exercises into the workout at item.Number.
func (r *Repo) AddWorkoutExercise(ctx context.Context, workoutID, userID int, item ExerciseItem) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("workout.id", workoutID),
		attribute.Int("exercise.id", item.ExerciseID),
	)

	return r.editWorkoutExercises(ctx, workoutID, userID, func(tx pgx.Tx, order []int) ([]int, error) {
		var owned bool
		if err := tx.QueryRow(
			ctx,
			`SELECT EXISTS (SELECT 1 FROM exercises WHERE id = $1 AND user_id = $2)`,
			item.ExerciseID, userID,
		).Scan(&owned); err != nil {
			return nil, fmt.Errorf("check exercise: %w", err)
		}
		if !owned {
			return nil, exercises.ErrExerciseNotFound
		}

		for _, id := range order {
			if id == item.ExerciseID {
				return nil, ErrExerciseAlreadyInWorkout
			}
		}

		if _, err := tx.Exec(
			ctx,
			`INSERT INTO workout_exercises (workout_id, exercise_id, sets, number) VALUES ($1, $2, $3, 0)`,
			workoutID, item.ExerciseID, item.Sets,
		); err != nil {
			if pkg.IsUniqueViolationError(err) {
				return nil, ErrExerciseAlreadyInWorkout
			}
			return nil, fmt.Errorf("insert workout exercise: %w", err)
		}

		return placeAt(order, item.ExerciseID, item.Number), nil
	})
}

func (r *Repo) RemoveWorkoutExercise(ctx context.Context, workoutID, userID, exerciseID int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.remove_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("workout.id", workoutID),
		attribute.Int("exercise.id", exerciseID),
	)

	return r.editWorkoutExercises(ctx, workoutID, userID, func(tx pgx.Tx, order []int) ([]int, error) {
		newOrder, err := removeFrom(order, exerciseID)
		if err != nil {
			return nil, err
		}
		if err := workoutExercises.delete(ctx, tx, workoutID, exerciseID); err != nil {
			return nil, err
		}
		return newOrder, nil
	})
}

// MoveWorkoutExercise gives the exercise the new number, shifting the others.
func (r *Repo) MoveWorkoutExercise(ctx context.Context, workoutID, userID, exerciseID, number int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.move_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("workout.id", workoutID),
		attribute.Int("exercise.id", exerciseID),
		attribute.Int("number", number),
	)

	return r.editWorkoutExercises(ctx, workoutID, userID, func(_ pgx.Tx, order []int) ([]int, error) {
		return moveTo(order, exerciseID, number)
	})
}

type editFunc func(tx pgx.Tx, order []int) ([]int, error)

// editWorkoutExercises runs edit with the workout locked and stores the order it returns.
func (r *Repo) editWorkoutExercises(ctx context.Context, workoutID, userID int, edit editFunc) (*Workout, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	found, err := workoutExercises.lockParent(ctx, tx, workoutID, userID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrWorkoutNotFound
	}

	order, err := workoutExercises.order(ctx, tx, workoutID)
	if err != nil {
		return nil, err
	}
	newOrder, err := edit(tx, order)
	if err != nil {
		if errors.Is(err, errNotListed) {
			return nil, ErrExerciseNotInWorkout
		}
		return nil, err
	}
	if err := workoutExercises.renumber(ctx, tx, workoutID, newOrder); err != nil {
		return nil, err
	}

	workout, err := loadWorkout(ctx, tx, workoutID, userID)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return workout, nil
}

func loadWorkout(ctx context.Context, q querier, id, userID int) (*Workout, error) {
	workout, err := scanWorkout(q.QueryRow(
		ctx,
		`SELECT `+workoutColumns+` FROM workouts WHERE id = $1 AND user_id = $2`,
		id, userID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("get workout: %w", err)
	}

	rows, err := q.Query(ctx, workoutExercisesSelect+`
		WHERE we.workout_id = $1
		ORDER BY we.number, we.id`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("workout exercises [query]: %w", err)
	}
	defer rows.Close()

	workout.Exercises = []WorkoutExercise{}
	for rows.Next() {
		_, we, err := scanWorkoutExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("workout exercises [rows scan]: %w", err)
		}
		workout.Exercises = append(workout.Exercises, we)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("workout exercises [rows error]: %w", err)
	}

	return workout, nil
}

func scanWorkout(row pgx.Row) (*Workout, error) {
	var w Workout
	if err := row.Scan(
		&w.ID,
		&w.UserID,
		&w.Name,
		&w.Description,
		&w.ImageURL,
		&w.CreatedAt,
		&w.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &w, nil
}

func scanWorkoutExercise(row pgx.Row) (workoutID int, we WorkoutExercise, err error) {
	err = row.Scan(
		&we.ID,
		&workoutID,
		&we.ExerciseID,
		&we.Number,
		&we.Sets,
		&we.Name,
		&we.MuscleGroup,
		&we.Equipment.BarWeight,
		&we.Equipment.HasPulley,
		&we.Equipment.IsUnilateral,
	)
	return workoutID, we, err
}
