package equipment

import "fmt"

// ActualWeight turns the number a user enters into the load actually moved.
// With a bar the entry is plates per side: entered*2 + bar. With a pulley
// the stack value is halved. Otherwise the entry is already the total.
func ActualWeight(entered float64, cfg Config) (float64, error) {
	if err := Validate(cfg); err != nil {
		return 0, err
	}
	if entered <= 0 {
		return 0, ErrInvalidInput
	}

	switch {
	case cfg.BarWeight != nil:
		return entered*2 + float64(*cfg.BarWeight), nil
	case cfg.HasPulley:
		return entered / 2, nil
	default:
		return entered, nil
	}
}

// EnteredFromActual is the inverse of ActualWeight.
func EnteredFromActual(actual float64, cfg Config) (float64, error) {
	if err := Validate(cfg); err != nil {
		return 0, err
	}
	if actual <= 0 {
		return 0, ErrInvalidInput
	}

	switch {
	case cfg.BarWeight != nil:
		return (actual - float64(*cfg.BarWeight)) / 2, nil
	case cfg.HasPulley:
		return actual * 2, nil
	default:
		return actual, nil
	}
}

// BilateralEquivalent doubles single-side dumbbell style loads. Bar and
// pulley formulas already account for both sides.
func BilateralEquivalent(actual float64, cfg Config) float64 {
	if cfg.IsUnilateral && cfg.BarWeight == nil && !cfg.HasPulley {
		return actual * 2
	}
	return actual
}

// DescribeFormula lists, in order, how the entered weight is interpreted.
func DescribeFormula(cfg Config) []string {
	var notes []string
	if cfg.BarWeight != nil {
		notes = append(notes,
			fmt.Sprintf("Bar weight: %dkg", *cfg.BarWeight),
			"Formula: (input × 2) + bar weight",
		)
	}
	if cfg.HasPulley {
		notes = append(notes, "Has pulley: input ÷ 2")
	}
	if cfg.IsUnilateral {
		notes = append(notes, "Unilateral: weight per side")
	} else {
		notes = append(notes, "Bilateral: total weight")
	}
	return notes
}
