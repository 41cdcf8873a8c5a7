package workouts

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/liftlog/internal/gymstats"
	"github.com/2beens/liftlog/internal/gymstats/equipment"
	"github.com/2beens/liftlog/internal/gymstats/sessions"
)

const (
	MaxWorkoutsPerRoutine = 6
	MaxNameLength         = 100
	// DefaultSets is planned when an exercise is added without a set count.
	DefaultSets = 3
)

var (
	ErrWorkoutNotFound          = gymstats.NewNotFoundError("workout not found")
	ErrRoutineNotFound          = gymstats.NewNotFoundError("routine not found")
	ErrExerciseNotInWorkout     = gymstats.NewNotFoundError("exercise not found in workout")
	ErrWorkoutNotInRoutine      = gymstats.NewNotFoundError("workout not found in routine")
	ErrExerciseAlreadyInWorkout = gymstats.NewStateError("exercise is already part of the workout")
	ErrWorkoutAlreadyInRoutine  = gymstats.NewStateError("workout is already part of the routine")
	ErrRoutineFull              = gymstats.NewValidationError(fmt.Sprintf("maximum of %d workouts allowed per routine", MaxWorkoutsPerRoutine))
	ErrNameRequired             = gymstats.NewValidationError("name is required")
	ErrNameTooLong              = gymstats.NewValidationError(fmt.Sprintf("name must not exceed %d characters", MaxNameLength))
	ErrEmptyPatch               = gymstats.NewValidationError("no fields to update")
	ErrExerciseRequired         = gymstats.NewValidationError("exerciseId is required")
	ErrWorkoutRequired          = gymstats.NewValidationError("workoutId is required")
	ErrInvalidSets              = gymstats.NewValidationError(fmt.Sprintf("sets must be between 1 and %d", sessions.MaxSetsPerExercise))
	ErrInvalidPosition          = gymstats.NewValidationError("invalid position number")
)

// Details are the user editable fields shared by workouts and routines.
type Details struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

func (d *Details) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)
	d.ImageURL = strings.TrimSpace(d.ImageURL)
}

func (d Details) Validate() error {
	if d.Name == "" {
		return ErrNameRequired
	}
	if len([]rune(d.Name)) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

// Workout is a template of ordered exercises a session can be started from.
type Workout struct {
	ID     int `json:"id"`
	UserID int `json:"userId"`
	Details
	Exercises []WorkoutExercise `json:"exercises"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

type WorkoutExercise struct {
	ID          int              `json:"id"`
	ExerciseID  int              `json:"exerciseId"`
	Number      int              `json:"number"`
	Sets        int              `json:"sets"`
	Name        string           `json:"name"`
	MuscleGroup string           `json:"muscleGroup"`
	Equipment   equipment.Config `json:"equipment"`
}

// Routine groups workouts, e.g. a weekly split.
type Routine struct {
	ID     int `json:"id"`
	UserID int `json:"userId"`
	Details
	Workouts  []RoutineWorkout `json:"workouts"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

type RoutineWorkout struct {
	ID          int    `json:"id"`
	WorkoutID   int    `json:"workoutId"`
	Number      int    `json:"number"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ExerciseItem adds an exercise to a workout. Number 0 appends.
type ExerciseItem struct {
	ExerciseID int `json:"exerciseId"`
	Sets       int `json:"sets"`
	Number     int `json:"number"`
}

func (i *ExerciseItem) Normalize() {
	if i.Sets == 0 {
		i.Sets = DefaultSets
	}
}

func (i ExerciseItem) Validate() error {
	var errs []error
	if i.ExerciseID <= 0 {
		errs = append(errs, ErrExerciseRequired)
	}
	if i.Sets < 1 || i.Sets > sessions.MaxSetsPerExercise {
		errs = append(errs, ErrInvalidSets)
	}
	if i.Number < 0 {
		errs = append(errs, ErrInvalidPosition)
	}
	return errors.Join(errs...)
}

// WorkoutItem adds a workout to a routine. Number 0 appends.
type WorkoutItem struct {
	WorkoutID int `json:"workoutId"`
	Number    int `json:"number"`
}

func (i WorkoutItem) Validate() error {
	var errs []error
	if i.WorkoutID <= 0 {
		errs = append(errs, ErrWorkoutRequired)
	}
	if i.Number < 0 {
		errs = append(errs, ErrInvalidPosition)
	}
	return errors.Join(errs...)
}

// Patch is a partial update of Details. Nil fields are kept.
type Patch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.ImageURL == nil
}

func (p Patch) Apply(d Details) (Details, error) {
	if p.IsEmpty() {
		return Details{}, ErrEmptyPatch
	}
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.ImageURL != nil {
		d.ImageURL = *p.ImageURL
	}
	d.Normalize()
	if err := d.Validate(); err != nil {
		return Details{}, err
	}
	return d, nil
}
