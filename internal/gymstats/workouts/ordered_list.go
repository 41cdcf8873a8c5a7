package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// orderedList describes a numbered child table, e.g. the exercises of a workout.
// Table and column names are constants, never request input.
type orderedList struct {
	parents   string
	items     string
	parentCol string
	itemCol   string
}

var (
	workoutExercises = orderedList{
		parents:   "workouts",
		items:     "workout_exercises",
		parentCol: "workout_id",
		itemCol:   "exercise_id",
	}
	routineWorkouts = orderedList{
		parents:   "routines",
		items:     "routine_workouts",
		parentCol: "routine_id",
		itemCol:   "workout_id",
	}
)

// lockParent locks the user's parent row for the rest of the transaction.
func (l orderedList) lockParent(ctx context.Context, tx pgx.Tx, id, userID int) (bool, error) {
	var locked int
	err := tx.QueryRow(
		ctx,
		fmt.Sprintf(`SELECT id FROM %s WHERE id = $1 AND user_id = $2 FOR UPDATE`, l.parents),
		id, userID,
	).Scan(&locked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("lock %s: %w", l.parents, err)
	}
	return true, nil
}

func (l orderedList) order(ctx context.Context, q querier, parentID int) ([]int, error) {
	rows, err := q.Query(
		ctx,
		fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY number, id`, l.itemCol, l.items, l.parentCol),
		parentID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s order [query]: %w", l.items, err)
	}
	order, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, fmt.Errorf("%s order [collect]: %w", l.items, err)
	}
	return order, nil
}

// renumber stores the positions of order as 1..n.
func (l orderedList) renumber(ctx context.Context, tx pgx.Tx, parentID int, order []int) error {
	if len(order) == 0 {
		return nil
	}
	query := fmt.Sprintf(`UPDATE %s SET number = $1 WHERE %s = $2 AND %s = $3`, l.items, l.parentCol, l.itemCol)
	batch := &pgx.Batch{}
	for i, id := range order {
		batch.Queue(query, i+1, parentID, id)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("renumber %s: %w", l.items, err)
	}
	return nil
}

func (l orderedList) delete(ctx context.Context, tx pgx.Tx, parentID, itemID int) error {
	_, err := tx.Exec(
		ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`, l.items, l.parentCol, l.itemCol),
		parentID, itemID,
	)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", l.items, err)
	}
	return nil
}
