package service

import "errors"

var (
	// ErrInvalidTransition is returned when a status change is not permitted
	// from the entity's current state.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrUnknownStatus is returned when a status payload names a value outside
	// the known set.
	ErrUnknownStatus = errors.New("unknown status")

	// ErrUnknownMealSlot is returned when a meal summary names a slot outside
	// the five known slots.
	ErrUnknownMealSlot = errors.New("unknown meal slot")
)
