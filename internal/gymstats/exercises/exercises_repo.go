package exercises

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/liftlog/internal/gymstats/equipment"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const exerciseColumns = `
	id, user_id, name, description, muscle_group, COALESCE(image_url, ''),
	bar_weight, has_pulley, is_unilateral, created_at, updated_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, userID int, params ExerciseParams) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	row := r.db.QueryRow(
		ctx,
		`INSERT INTO exercises
				(user_id, name, description, muscle_group, image_url, bar_weight, has_pulley, is_unilateral)
				VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8)
			RETURNING `+exerciseColumns,
		userID,
		params.Name,
		params.Description,
		params.MuscleGroup,
		params.ImageURL,
		params.Equipment.BarWeight,
		params.Equipment.HasPulley,
		params.Equipment.IsUnilateral,
	)
	exercise, err := scanExercise(row)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrExerciseNameTaken
		}
		return nil, fmt.Errorf("insert exercise: %w", err)
	}

	span.SetAttributes(attribute.Int("exercise.id", exercise.ID))
	return exercise, nil
}

func (r *Repo) Get(ctx context.Context, id, userID int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", id))

	return r.get(ctx, r.db, id, userID, false)
}

func (r *Repo) get(ctx context.Context, q pgxQuerier, id, userID int, forUpdate bool) (*Exercise, error) {
	query := `SELECT ` + exerciseColumns + ` FROM exercises WHERE id = $1 AND user_id = $2`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	exercise, err := scanExercise(q.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, fmt.Errorf("get exercise: %w", err)
	}
	return exercise, nil
}

// List returns the user's exercises ordered by name, optionally for one muscle group.
func (r *Repo) List(ctx context.Context, userID int, muscleGroup string) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	if muscleGroup != "" {
		span.SetAttributes(attribute.String("params.muscleGroup", muscleGroup))
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT `+exerciseColumns+`
			FROM exercises
			WHERE user_id = $1 AND ($2::text = '' OR muscle_group = $2)
			ORDER BY name, id`,
		userID,
		strings.ToLower(muscleGroup),
	)
	if err != nil {
		return nil, fmt.Errorf("list exercises [query]: %w", err)
	}
	defer rows.Close()

	var exercises []Exercise
	for rows.Next() {
		exercise, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("list exercises [rows scan]: %w", err)
		}
		exercises = append(exercises, *exercise)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list exercises [rows error]: %w", err)
	}

	return exercises, nil
}

// Update applies the patch to the locked row, so concurrent equipment
// changes cannot combine into an invalid config.
func (r *Repo) Update(ctx context.Context, id, userID int, patch ExercisePatch) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", id))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			span.RecordError(err)
		}
	}()

	current, err := r.get(ctx, tx, id, userID, true)
	if err != nil {
		return nil, err
	}

	updated, changed, err := patch.Apply(*current)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.StringSlice("exercise.changed", changed))

	row := tx.QueryRow(
		ctx,
		`UPDATE exercises
			SET name = $1, description = $2, muscle_group = $3, image_url = NULLIF($4, ''),
				bar_weight = $5, has_pulley = $6, is_unilateral = $7, updated_at = NOW()
			WHERE id = $8 AND user_id = $9
			RETURNING `+exerciseColumns,
		updated.Name,
		updated.Description,
		updated.MuscleGroup,
		updated.ImageURL,
		updated.Equipment.BarWeight,
		updated.Equipment.HasPulley,
		updated.Equipment.IsUnilateral,
		id,
		userID,
	)
	exercise, err := scanExercise(row)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrExerciseNameTaken
		}
		return nil, fmt.Errorf("update exercise: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return exercise, nil
}

func (r *Repo) Delete(ctx context.Context, id, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM exercises WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return ErrExerciseInUse
		}
		return fmt.Errorf("delete exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

// MuscleGroups lists the distinct muscle groups the user has exercises for.
func (r *Repo) MuscleGroups(ctx context.Context, userID int) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.muscle_groups")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT DISTINCT muscle_group FROM exercises WHERE user_id = $1 ORDER BY muscle_group`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("muscle groups [query]: %w", err)
	}

	groups, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("muscle groups [collect]: %w", err)
	}
	return groups, nil
}

func (r *Repo) EquipmentConfig(ctx context.Context, userID, exerciseID int) (_ equipment.Config, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.equipment_config")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	var cfg equipment.Config
	err = r.db.QueryRow(
		ctx,
		`SELECT bar_weight, has_pulley, is_unilateral FROM exercises WHERE id = $1 AND user_id = $2`,
		exerciseID,
		userID,
	).Scan(&cfg.BarWeight, &cfg.HasPulley, &cfg.IsUnilateral)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return equipment.Config{}, ErrExerciseNotFound
		}
		return equipment.Config{}, fmt.Errorf("equipment config: %w", err)
	}
	return cfg, nil
}

type pgxQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func scanExercise(row pgx.Row) (*Exercise, error) {
	var ex Exercise
	if err := row.Scan(
		&ex.ID,
		&ex.UserID,
		&ex.Name,
		&ex.Description,
		&ex.MuscleGroup,
		&ex.ImageURL,
		&ex.Equipment.BarWeight,
		&ex.Equipment.HasPulley,
		&ex.Equipment.IsUnilateral,
		&ex.CreatedAt,
		&ex.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &ex, nil
}
