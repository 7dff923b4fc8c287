package engine

import "errors"

var (
	// ErrDepthExceedsDiameter is returned when the axial depth of cut is
	// larger than the tool diameter, which puts the chip thickness
	// formula outside its domain.
	ErrDepthExceedsDiameter = errors.New("depth of cut exceeds tool diameter")

	// ErrEntryNotFound is returned by aggregator update/delete when no
	// entry has the given id.
	ErrEntryNotFound = errors.New("comparison entry not found")

	// ErrNotEnoughEntries is returned by the savings view when fewer
	// than two entries are present.
	ErrNotEnoughEntries = errors.New("savings comparison requires at least two entries")
)
