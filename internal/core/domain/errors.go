package domain

import "errors"

var (
	ErrNotFound           = errors.New("record not found")
	ErrValidation         = errors.New("invalid or missing required field")
	ErrDuplicateWristband = errors.New("wristband already in use by an active visitor")
	ErrCapacityExceeded   = errors.New("zone capacity exceeded")
	ErrInvalidCapacity    = errors.New("capacity below current occupancy")
	ErrInvalidTransition  = errors.New("illegal booking status transition")

	// ErrBelowZero indicates a caller-discipline bug: occupancy was released
	// more times than it was acquired.
	ErrBelowZero = errors.New("zone occupancy below zero")

	// ErrPersistence wraps storage failures that happen after the in-memory
	// mutation already committed. The mutation stands; durability did not.
	ErrPersistence = errors.New("persistence failure")
)
