package bamboo

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/pkg/errors"
)

// Wrap turns a supported container into its wrapped form. A
// dataframe.DataFrame becomes a *Frame; values that are already wrapped
// (*Frame, *GroupBy) pass through unchanged, so Wrap is idempotent.
// Any other type fails with ErrUnsupportedType.
//
// The wrapped value holds a reference to the container; no data is
// copied or mutated.
func Wrap(v any) (any, error) {
	switch x := v.(type) {
	case *Frame:
		return x, nil
	case *GroupBy:
		return x, nil
	case dataframe.DataFrame:
		return NewFrame(x), nil
	case *dataframe.DataFrame:
		return NewFrame(*x), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedType, "got %T", v)
	}
}
