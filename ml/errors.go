package ml

import "github.com/pkg/errors"

var (
	// ErrShapeMismatch is returned when features and targets disagree on
	// row count.
	ErrShapeMismatch = errors.New("ml: features and targets row counts differ")

	// ErrNotClassification is returned when a class-based operation is
	// requested on a continuous target.
	ErrNotClassification = errors.New("ml: target is not categorical")

	// ErrNotFitted is returned when scoring is requested against a model
	// that exposes no prediction entry point.
	ErrNotFitted = errors.New("ml: model has no prediction entry point")
)
