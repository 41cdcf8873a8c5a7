package sessions

import (
	"fmt"
	"math"
	"time"

	"github.com/2beens/liftlog/internal/gymstats"
	"github.com/2beens/liftlog/internal/gymstats/equipment"
)

// MaxSetsPerExercise caps set numbers within one exercise of one session.
const MaxSetsPerExercise = 8

var (
	ErrSetLimitExceeded   = gymstats.NewValidationError(fmt.Sprintf("set number must not exceed %d", MaxSetsPerExercise))
	ErrInvalidSeriesType  = gymstats.NewValidationError("series type must be 0, 1, 2 or 3")
	ErrNonPositiveValue   = gymstats.NewValidationError("set number, weight and reps must be greater than zero")
	ErrDuplicateSetNumber = gymstats.NewValidationError("set number already logged for this exercise")
	ErrEmptyPatch         = gymstats.NewValidationError("no fields to update")

	ErrAlreadyEnded            = gymstats.NewStateError("session already ended")
	ErrSessionClosed           = gymstats.NewStateError("session is closed")
	ErrSessionNotFound         = gymstats.NewNotFoundError("session not found")
	ErrSetNotFound             = gymstats.NewNotFoundError("set not found")
	ErrSessionExerciseNotFound = gymstats.NewNotFoundError("exercise not part of the session")
	ErrExerciseAlreadyAdded    = gymstats.NewStateError("exercise already part of the session")
	ErrWorkoutNotFound         = gymstats.NewNotFoundError("workout not found")
)

// IsValidation reports whether err is caused by bad request data.
func IsValidation(err error) bool {
	return gymstats.IsValidation(err)
}

// IsState reports whether err is a precondition failure (ended session, missing set).
func IsState(err error) bool {
	return gymstats.IsState(err)
}

type SeriesType int

const (
	SeriesWarmUp SeriesType = iota
	SeriesPreparatory
	SeriesWorking
	SeriesBackOff
)

func (st SeriesType) Valid() bool {
	return st >= SeriesWarmUp && st <= SeriesBackOff
}

// CountsTowardVolume is true for working and back-off sets only.
func (st SeriesType) CountsTowardVolume() bool {
	return st == SeriesWorking || st == SeriesBackOff
}

func (st SeriesType) String() string {
	switch st {
	case SeriesWarmUp:
		return "warm-up"
	case SeriesPreparatory:
		return "preparatory"
	case SeriesWorking:
		return "working"
	case SeriesBackOff:
		return "back-off"
	default:
		return fmt.Sprintf("unknown(%d)", int(st))
	}
}

type Set struct {
	ID         int        `json:"id"`
	SessionID  int        `json:"sessionId"`
	ExerciseID int        `json:"exerciseId"`
	SetNumber  int        `json:"setNumber"`
	SeriesType SeriesType `json:"seriesType"`
	Weight     int        `json:"weight"`
	Reps       int        `json:"reps"`
	Done       bool       `json:"done"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// SetData is what a client sends to log a set.
type SetData struct {
	SetNumber  int        `json:"setNumber"`
	SeriesType SeriesType `json:"seriesType"`
	Weight     int        `json:"weight"`
	Reps       int        `json:"reps"`
	Done       bool       `json:"done"`
}

// SetPatch changes a logged set. Nil fields stay untouched.
type SetPatch struct {
	Weight     *int        `json:"weight,omitempty"`
	Reps       *int        `json:"reps,omitempty"`
	SeriesType *SeriesType `json:"seriesType,omitempty"`
	Done       *bool       `json:"done,omitempty"`
}

func (p SetPatch) IsEmpty() bool {
	return p.Weight == nil && p.Reps == nil && p.SeriesType == nil && p.Done == nil
}

// SessionExercise is an exercise slot within a session.
type SessionExercise struct {
	ID           int              `json:"id"`
	SessionID    int              `json:"sessionId"`
	ExerciseID   int              `json:"exerciseId"`
	Number       int              `json:"number"`
	Observations string           `json:"observations,omitempty"`
	Name         string           `json:"name"`
	MuscleGroup  string           `json:"muscleGroup"`
	Equipment    equipment.Config `json:"equipment"`
}

type Session struct {
	ID          int               `json:"id"`
	UserID      int               `json:"userId"`
	WorkoutID   *int              `json:"workoutId,omitempty"`
	WorkoutName string            `json:"workoutName,omitempty"`
	Notes       string            `json:"notes"`
	StartTime   time.Time         `json:"startTime"`
	EndTime     *time.Time        `json:"endTime,omitempty"`
	TotalVolume *int              `json:"totalVolume,omitempty"`
	Exercises   []SessionExercise `json:"exercises,omitempty"`
	Sets        []Set             `json:"sets,omitempty"`
}

func (s *Session) Ended() bool {
	return s.EndTime != nil
}

// Duration is zero while the session is active.
func (s *Session) Duration() time.Duration {
	if s.EndTime == nil {
		return 0
	}
	return s.EndTime.Sub(s.StartTime)
}

// EquipmentLookup resolves the equipment of an exercise.
type EquipmentLookup func(exerciseID int) (equipment.Config, error)

func validateSetValues(seriesType SeriesType, weight, reps int) error {
	if !seriesType.Valid() {
		return ErrInvalidSeriesType
	}
	if weight <= 0 || reps <= 0 {
		return ErrNonPositiveValue
	}
	return nil
}

// AddSet validates and appends a set. The returned set has no ID yet.
func (s *Session) AddSet(exerciseID int, data SetData) (*Set, error) {
	if s.Ended() {
		return nil, ErrSessionClosed
	}
	if data.SetNumber > MaxSetsPerExercise {
		return nil, ErrSetLimitExceeded
	}
	if data.SetNumber < 1 {
		return nil, ErrNonPositiveValue
	}
	if err := validateSetValues(data.SeriesType, data.Weight, data.Reps); err != nil {
		return nil, err
	}
	for _, existing := range s.Sets {
		if existing.ExerciseID == exerciseID && existing.SetNumber == data.SetNumber {
			return nil, ErrDuplicateSetNumber
		}
	}

	s.Sets = append(s.Sets, Set{
		SessionID:  s.ID,
		ExerciseID: exerciseID,
		SetNumber:  data.SetNumber,
		SeriesType: data.SeriesType,
		Weight:     data.Weight,
		Reps:       data.Reps,
		Done:       data.Done,
	})
	return &s.Sets[len(s.Sets)-1], nil
}

// UpdateSet applies the patch to the set with the given ID.
func (s *Session) UpdateSet(setID int, patch SetPatch) (*Set, error) {
	if s.Ended() {
		return nil, ErrSessionClosed
	}
	if patch.IsEmpty() {
		return nil, ErrEmptyPatch
	}

	idx := s.setIndex(setID)
	if idx < 0 {
		return nil, ErrSetNotFound
	}

	updated := s.Sets[idx]
	if patch.Weight != nil {
		updated.Weight = *patch.Weight
	}
	if patch.Reps != nil {
		updated.Reps = *patch.Reps
	}
	if patch.SeriesType != nil {
		updated.SeriesType = *patch.SeriesType
	}
	if patch.Done != nil {
		updated.Done = *patch.Done
	}
	if err := validateSetValues(updated.SeriesType, updated.Weight, updated.Reps); err != nil {
		return nil, err
	}

	s.Sets[idx] = updated
	return &s.Sets[idx], nil
}

func (s *Session) RemoveSet(setID int) error {
	if s.Ended() {
		return ErrSessionClosed
	}
	idx := s.setIndex(setID)
	if idx < 0 {
		return ErrSetNotFound
	}
	s.Sets = append(s.Sets[:idx], s.Sets[idx+1:]...)
	return nil
}

func (s *Session) setIndex(setID int) int {
	for i := range s.Sets {
		if s.Sets[i].ID == setID {
			return i
		}
	}
	return -1
}

// AddExercise appends an exercise slot, numbered after the last one
// when number is not positive.
func (s *Session) AddExercise(exerciseID, number int, observations string) (*SessionExercise, error) {
	if s.Ended() {
		return nil, ErrSessionClosed
	}
	for _, ex := range s.Exercises {
		if ex.ExerciseID == exerciseID {
			return nil, ErrExerciseAlreadyAdded
		}
	}
	if number <= 0 {
		for _, ex := range s.Exercises {
			number = max(number, ex.Number)
		}
		number++
	}

	s.Exercises = append(s.Exercises, SessionExercise{
		SessionID:    s.ID,
		ExerciseID:   exerciseID,
		Number:       number,
		Observations: observations,
	})
	return &s.Exercises[len(s.Exercises)-1], nil
}

// RemoveExercise drops the exercise slot and every set logged for it.
func (s *Session) RemoveExercise(exerciseID int) error {
	if s.Ended() {
		return ErrSessionClosed
	}

	found := false
	exercises := s.Exercises[:0]
	for _, ex := range s.Exercises {
		if ex.ExerciseID == exerciseID {
			found = true
			continue
		}
		exercises = append(exercises, ex)
	}
	if !found {
		return ErrSessionExerciseNotFound
	}
	s.Exercises = exercises

	sets := s.Sets[:0]
	for _, set := range s.Sets {
		if set.ExerciseID != exerciseID {
			sets = append(sets, set)
		}
	}
	s.Sets = sets
	return nil
}

func (s *Session) SetNotes(notes string) error {
	if s.Ended() {
		return ErrSessionClosed
	}
	s.Notes = notes
	return nil
}

// Volume sums round(actual weight × reps) over working and back-off sets.
func (s *Session) Volume(lookup EquipmentLookup) (int, error) {
	total := 0
	for _, set := range s.Sets {
		if !set.SeriesType.CountsTowardVolume() {
			continue
		}
		cfg, err := lookup(set.ExerciseID)
		if err != nil {
			return 0, fmt.Errorf("equipment of exercise %d: %w", set.ExerciseID, err)
		}
		actual, err := equipment.ActualWeight(float64(set.Weight), cfg)
		if err != nil {
			return 0, fmt.Errorf("actual weight of set %d: %w", set.ID, err)
		}
		total += int(math.Round(actual * float64(set.Reps)))
	}
	return total, nil
}

// End freezes the session: total volume is computed once and the end time set.
// On failure the session is left untouched.
func (s *Session) End(now time.Time, lookup EquipmentLookup) error {
	if s.Ended() {
		return ErrAlreadyEnded
	}

	volume, err := s.Volume(lookup)
	if err != nil {
		return err
	}

	end := now
	s.EndTime = &end
	s.TotalVolume = &volume
	return nil
}
