package bamboo

import "github.com/pkg/errors"

var (
	// ErrUnsupportedType is returned by Wrap for values that are neither
	// a gota dataframe nor an already wrapped container.
	ErrUnsupportedType = errors.New("bamboo: unsupported container type")

	// ErrColumnNotFound is returned when a named column is absent.
	ErrColumnNotFound = errors.New("bamboo: column not found")

	// ErrPredicate is returned when a caller-supplied group predicate fails.
	ErrPredicate = errors.New("bamboo: predicate failed")

	// ErrKeyFunction is returned when a caller-supplied sort key function fails.
	ErrKeyFunction = errors.New("bamboo: key function failed")

	// ErrMapFunction is returned when a caller-supplied map function fails.
	ErrMapFunction = errors.New("bamboo: map function failed")

	// ErrInconsistentShape is returned when MapGroups results differ in
	// width across groups.
	ErrInconsistentShape = errors.New("bamboo: inconsistent map output shape across groups")
)
