package exercises

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/2beens/liftlog/internal/gymstats"
	"github.com/2beens/liftlog/internal/gymstats/equipment"
)

var (
	ErrExerciseNotFound   = gymstats.NewNotFoundError("exercise not found")
	ErrExerciseNameTaken  = gymstats.NewStateError("an exercise with this name already exists")
	ErrExerciseInUse      = gymstats.NewStateError("exercise is used by workouts or sessions")
	ErrNameRequired       = gymstats.NewValidationError("exercise name is required")
	ErrInvalidMuscleGroup = gymstats.NewValidationError("invalid muscle group")
	ErrEmptyPatch         = gymstats.NewValidationError("no fields to update")
)

var MuscleGroup = struct {
	Biceps    string
	Triceps   string
	Back      string
	Legs      string
	Glutes    string
	Chest     string
	Shoulders string
	Core      string
	Other     string
}{
	Biceps:    "biceps",
	Triceps:   "triceps",
	Back:      "back",
	Legs:      "legs",
	Glutes:    "glutes",
	Chest:     "chest",
	Shoulders: "shoulders",
	Core:      "core",
	Other:     "other",
}

var MuscleGroups = []string{
	MuscleGroup.Biceps,
	MuscleGroup.Triceps,
	MuscleGroup.Back,
	MuscleGroup.Legs,
	MuscleGroup.Glutes,
	MuscleGroup.Chest,
	MuscleGroup.Shoulders,
	MuscleGroup.Core,
	MuscleGroup.Other,
}

type Exercise struct {
	ID          int              `json:"id"`
	UserID      int              `json:"userId"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	MuscleGroup string           `json:"muscleGroup"`
	ImageURL    string           `json:"imageUrl,omitempty"`
	Equipment   equipment.Config `json:"equipment"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// ExerciseParams holds what a user provides to create an exercise.
type ExerciseParams struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	MuscleGroup string           `json:"muscleGroup"`
	ImageURL    string           `json:"imageUrl"`
	Equipment   equipment.Config `json:"equipment"`
}

// Normalize trims the name and lowercases the muscle group.
func (p *ExerciseParams) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.MuscleGroup = strings.ToLower(strings.TrimSpace(p.MuscleGroup))
}

func (p ExerciseParams) Validate() error {
	var errs []error
	if p.Name == "" {
		errs = append(errs, ErrNameRequired)
	}
	if !slices.Contains(MuscleGroups, p.MuscleGroup) {
		errs = append(errs, ErrInvalidMuscleGroup)
	}
	if err := equipment.Validate(p.Equipment); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ExercisePatch is a partial update. Nil fields are kept.
type ExercisePatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	MuscleGroup *string `json:"muscleGroup,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	equipment.Patch
}

func (p ExercisePatch) IsEmpty() bool {
	return p.Name == nil &&
		p.Description == nil &&
		p.MuscleGroup == nil &&
		p.ImageURL == nil &&
		p.Patch.IsEmpty()
}

type fieldSetter func(p ExercisePatch, ex *Exercise) bool

// setters apply one patch field each; a setter reports whether the field was present
var setters = map[string]fieldSetter{
	"name": func(p ExercisePatch, ex *Exercise) bool {
		if p.Name == nil {
			return false
		}
		ex.Name = strings.TrimSpace(*p.Name)
		return true
	},
	"description": func(p ExercisePatch, ex *Exercise) bool {
		if p.Description == nil {
			return false
		}
		ex.Description = *p.Description
		return true
	},
	"muscleGroup": func(p ExercisePatch, ex *Exercise) bool {
		if p.MuscleGroup == nil {
			return false
		}
		ex.MuscleGroup = strings.ToLower(strings.TrimSpace(*p.MuscleGroup))
		return true
	},
	"imageUrl": func(p ExercisePatch, ex *Exercise) bool {
		if p.ImageURL == nil {
			return false
		}
		ex.ImageURL = *p.ImageURL
		return true
	},
}

// Apply returns ex with the patch applied and the names of the changed fields.
// The result is validated as a whole.
func (p ExercisePatch) Apply(ex Exercise) (Exercise, []string, error) {
	if p.IsEmpty() {
		return Exercise{}, nil, ErrEmptyPatch
	}

	var changed []string
	for field, set := range setters {
		if set(p, &ex) {
			changed = append(changed, field)
		}
	}
	slices.Sort(changed)

	if !p.Patch.IsEmpty() {
		cfg, err := p.Patch.Apply(ex.Equipment)
		if err != nil {
			return Exercise{}, nil, err
		}
		ex.Equipment = cfg
		changed = append(changed, "equipment")
	}

	params := ExerciseParams{
		Name:        ex.Name,
		Description: ex.Description,
		MuscleGroup: ex.MuscleGroup,
		ImageURL:    ex.ImageURL,
		Equipment:   ex.Equipment,
	}
	if err := params.Validate(); err != nil {
		return Exercise{}, nil, err
	}

	return ex, changed, nil
}
