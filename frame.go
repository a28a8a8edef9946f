package bamboo

import (
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
)

// Frame is the wrapped form of a gota dataframe. It holds a reference to
// the underlying DataFrame and re-wraps the result of every operation,
// so chains of arbitrary length stay on the wrapped type.
//
// Frames are treated as immutable: every operation returns a new Frame
// and leaves the receiver untouched.
type Frame struct {
	df dataframe.DataFrame
}

// NewFrame wraps a gota dataframe. The typed counterpart of Wrap.
func NewFrame(df dataframe.DataFrame) *Frame {
	return &Frame{df: df}
}

// ReadCSV reads CSV data into a wrapped Frame. Parsing is delegated to
// gota; a parse failure is reported through Err on the returned Frame.
func ReadCSV(r io.Reader, options ...dataframe.LoadOption) *Frame {
	return NewFrame(dataframe.ReadCSV(r, options...))
}

// DataFrame returns the underlying gota dataframe.
func (f *Frame) DataFrame() dataframe.DataFrame { return f.df }

// Err returns the error state of the underlying dataframe, if any.
func (f *Frame) Err() error { return f.df.Error() }

// Nrow returns the number of rows.
func (f *Frame) Nrow() int { return f.df.Nrow() }

// Ncol returns the number of columns.
func (f *Frame) Ncol() int { return f.df.Ncol() }

// Names returns the column names.
func (f *Frame) Names() []string { return f.df.Names() }

// Types returns the column types.
func (f *Frame) Types() []series.Type { return f.df.Types() }

// Records returns the rows as strings, including the header row.
func (f *Frame) Records() [][]string { return f.df.Records() }

// HasColumn reports whether a column with the given name exists.
func (f *Frame) HasColumn(name string) bool {
	for _, n := range f.df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// Col returns the named column as a gota series.
// Fails with ErrColumnNotFound if the column is absent.
func (f *Frame) Col(name string) (series.Series, error) {
	if !f.HasColumn(name) {
		return series.Series{}, errors.Wrapf(ErrColumnNotFound, "column %q", name)
	}
	return f.df.Col(name), nil
}

// Select keeps only the given columns.
func (f *Frame) Select(cols ...string) *Frame {
	return NewFrame(f.df.Select(cols))
}

// Drop removes the given columns.
func (f *Frame) Drop(cols ...string) *Frame {
	return NewFrame(f.df.Drop(cols))
}

// Filter keeps the rows matching the given gota filters.
func (f *Frame) Filter(filters ...dataframe.F) *Frame {
	return NewFrame(f.df.Filter(filters...))
}

// Mutate adds or replaces a column.
func (f *Frame) Mutate(s series.Series) *Frame {
	return NewFrame(f.df.Mutate(s))
}

// Arrange sorts rows by the given gota order specs.
func (f *Frame) Arrange(order ...dataframe.Order) *Frame {
	return NewFrame(f.df.Arrange(order...))
}

// Subset keeps the rows at the given positions, in the given order.
func (f *Frame) Subset(rows []int) *Frame {
	return NewFrame(f.df.Subset(rows))
}

// Head returns the first n rows, or all rows if fewer.
func (f *Frame) Head(n int) *Frame {
	if n < 0 {
		n = 0
	}
	if n > f.Nrow() {
		n = f.Nrow()
	}
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}
	return f.Subset(rows)
}

// Rename renames column old to new.
func (f *Frame) Rename(newName, oldName string) *Frame {
	return NewFrame(f.df.Rename(newName, oldName))
}

func (f *Frame) String() string { return f.df.String() }
