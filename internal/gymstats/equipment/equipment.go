package equipment

import (
	"errors"
	"fmt"

	"github.com/2beens/liftlog/internal/gymstats"
)

var (
	ErrInvalidBarWeight     = gymstats.NewValidationError("bar weight must be 6, 8, 10, 12 or 20 kg")
	ErrConflictingEquipment = gymstats.NewValidationError("exercise cannot have both pulley and bar weight")
	ErrInvalidInput         = gymstats.NewValidationError("weight must be greater than zero")
)

// AllowedBarWeights holds the bar masses (kg) the gym offers.
var AllowedBarWeights = []int{6, 8, 10, 12, 20}

// Config describes the load-bearing setup of an exercise.
// A nil BarWeight means no bar is used.
type Config struct {
	BarWeight    *int `json:"barWeight"`
	HasPulley    bool `json:"hasPulley"`
	IsUnilateral bool `json:"isUnilateral"`
}

func (c Config) HasBar() bool {
	return c.BarWeight != nil
}

func (c Config) String() string {
	bar := "none"
	if c.BarWeight != nil {
		bar = fmt.Sprintf("%dkg", *c.BarWeight)
	}
	return fmt.Sprintf("bar=%s pulley=%t unilateral=%t", bar, c.HasPulley, c.IsUnilateral)
}

// Validate reports every rule the config breaks, joined.
func Validate(cfg Config) error {
	var errs []error
	if cfg.BarWeight != nil && !isAllowedBarWeight(*cfg.BarWeight) {
		errs = append(errs, ErrInvalidBarWeight)
	}
	if cfg.BarWeight != nil && cfg.HasPulley {
		errs = append(errs, ErrConflictingEquipment)
	}
	return errors.Join(errs...)
}

func isAllowedBarWeight(w int) bool {
	for _, allowed := range AllowedBarWeights {
		if w == allowed {
			return true
		}
	}
	return false
}

// Patch is a partial equipment update. Bar weight is tri-state:
// ClearBarWeight removes the bar, BarWeight sets it, neither keeps it.
type Patch struct {
	BarWeight      *int  `json:"barWeight,omitempty"`
	ClearBarWeight bool  `json:"clearBarWeight,omitempty"`
	HasPulley      *bool `json:"hasPulley,omitempty"`
	IsUnilateral   *bool `json:"isUnilateral,omitempty"`
}

func (p Patch) IsEmpty() bool {
	return p.BarWeight == nil && !p.ClearBarWeight && p.HasPulley == nil && p.IsUnilateral == nil
}

// Apply merges the patch into cfg and validates the result.
func (p Patch) Apply(cfg Config) (Config, error) {
	if p.BarWeight != nil && p.ClearBarWeight {
		return cfg, gymstats.NewValidationError("bar weight cannot be set and cleared at once")
	}

	merged := cfg
	switch {
	case p.ClearBarWeight:
		merged.BarWeight = nil
	case p.BarWeight != nil:
		bw := *p.BarWeight
		merged.BarWeight = &bw
	}
	if p.HasPulley != nil {
		merged.HasPulley = *p.HasPulley
	}
	if p.IsUnilateral != nil {
		merged.IsUnilateral = *p.IsUnilateral
	}

	if err := Validate(merged); err != nil {
		return cfg, err
	}
	return merged, nil
}
