package workouts

import (
	"errors"
	"slices"
)

// Ordered lists are kept as item ids; an id's position + 1 is its number.

var errNotListed = errors.New("item not listed")

// placeAt inserts id at the 1-based number. Zero or past the end appends.
func placeAt(order []int, id, number int) []int {
	out := slices.Clone(order)
	if number <= 0 || number > len(out) {
		return append(out, id)
	}
	return slices.Insert(out, number-1, id)
}

// moveTo moves a listed id to the 1-based number, shifting the rest.
func moveTo(order []int, id, number int) ([]int, error) {
	i := slices.Index(order, id)
	if i < 0 {
		return nil, errNotListed
	}
	if number < 1 || number > len(order) {
		return nil, ErrInvalidPosition
	}
	out := slices.Delete(slices.Clone(order), i, i+1)
	return slices.Insert(out, number-1, id), nil
}

func removeFrom(order []int, id int) ([]int, error) {
	i := slices.Index(order, id)
	if i < 0 {
		return nil, errNotListed
	}
	return slices.Delete(slices.Clone(order), i, i+1), nil
}
