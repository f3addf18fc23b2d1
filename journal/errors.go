package journal

import "errors"

var (
	// ErrValidation is returned when user input is malformed. Nothing is mutated.
	ErrValidation = errors.New("validation error")

	// ErrFormat is returned when an import document has the wrong shape.
	ErrFormat = errors.New("invalid file format")

	// ErrParse is returned when an import document is not well-formed JSON.
	ErrParse = errors.New("parse error")

	// ErrCorrupt marks a stored collection that could not be decoded.
	// Store.Open treats it as an empty collection.
	ErrCorrupt = errors.New("stored value corrupt")

	// ErrNoPending is returned when resolving a confirmation with none staged.
	ErrNoPending = errors.New("no pending confirmation")

	// ErrTradeNotFound is returned when looking up an unknown trade id.
	ErrTradeNotFound = errors.New("trade not found")
)
