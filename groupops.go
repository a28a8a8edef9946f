package bamboo

import (
	"fmt"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"

	"github.com/kgocks/bamboo/plotting"
)

// Predicate decides whether a group is retained. It receives the
// group's row subset and returns true to keep the group.
type Predicate func(sub *Frame) (bool, error)

// KeyFunc maps a group's row subset to an orderable value.
type KeyFunc func(sub *Frame) (float64, error)

// MapFunc maps a group's row subset to a fixed-width row of values.
// Every group must produce the same width.
type MapFunc func(sub *Frame) ([]float64, error)

// FilterGroups retains only the groups for which pred returns true,
// preserving their relative order. Retaining zero groups is valid.
// An error from pred aborts the whole operation with ErrPredicate;
// no partial result is returned.
func (g *GroupBy) FilterGroups(pred Predicate) (*GroupBy, error) {
	var kept []group
	for _, gr := range g.groups {
		ok, err := pred(g.src.Subset(gr.rows))
		if err != nil {
			return nil, errors.Wrapf(ErrPredicate, "group %q: %v", gr.key, err)
		}
		if ok {
			kept = append(kept, gr)
		}
	}
	return g.derive(kept), nil
}

// SortedGroups reorders the groups by ascending key value, keeping the
// original order on ties. Group membership is unchanged. An error from
// key aborts the whole operation with ErrKeyFunction.
func (g *GroupBy) SortedGroups(key KeyFunc) (*GroupBy, error) {
	vals := make([]float64, len(g.groups))
	for i, gr := range g.groups {
		v, err := key(g.src.Subset(gr.rows))
		if err != nil {
			return nil, errors.Wrapf(ErrKeyFunction, "group %q: %v", gr.key, err)
		}
		vals[i] = v
	}
	ordered := append([]group(nil), g.groups...)
	order := make([]int, len(ordered))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return vals[order[a]] < vals[order[b]] })
	out := make([]group, len(ordered))
	for i, oi := range order {
		out[i] = ordered[oi]
	}
	return g.derive(out), nil
}

// MapGroups applies fn to every group's row subset and collects one row
// of output per group into a wrapped Frame, alongside the group key
// columns. With a single output value per group the column is labeled
// name (or "value" when name is empty); wider outputs get name_0..name_k.
// With zero groups the result is an empty frame with the key columns and
// the single name column. Differing widths across groups abort with
// ErrInconsistentShape; an error from fn aborts with ErrMapFunction.
func (g *GroupBy) MapGroups(fn MapFunc, name string) (*Frame, error) {
	if name == "" {
		name = "value"
	}
	width := -1
	outs := make([][]float64, len(g.groups))
	for i, gr := range g.groups {
		row, err := fn(g.src.Subset(gr.rows))
		if err != nil {
			return nil, errors.Wrapf(ErrMapFunction, "group %q: %v", gr.key, err)
		}
		if width == -1 {
			width = len(row)
		} else if len(row) != width {
			return nil, errors.Wrapf(ErrInconsistentShape,
				"group %q produced %d values, previous groups produced %d", gr.key, len(row), width)
		}
		outs[i] = row
	}
	if width < 0 {
		// No groups to apply fn to; the output schema is still owed.
		width = 1
	}
	cols := make([]series.Series, 0, len(g.cols)+width)
	for ci, c := range g.cols {
		vals := make([]string, len(g.groups))
		for i, gr := range g.groups {
			vals[i] = gr.vals[ci]
		}
		cols = append(cols, series.New(vals, series.String, c))
	}
	for w := 0; w < width; w++ {
		vals := make([]float64, len(g.groups))
		for i := range g.groups {
			vals[i] = outs[i][w]
		}
		label := name
		if width > 1 {
			label = fmt.Sprintf("%s_%d", name, w)
		}
		cols = append(cols, series.New(vals, series.Float, label))
	}
	return NewFrame(dataframe.New(cols...)), nil
}

// Mean aggregates the given columns to their per-group means, delegating
// the mean computation to the gota series. The result is a wrapped Frame
// with the group key columns followed by one <col>_mean column each,
// empty when there are no groups.
func (g *GroupBy) Mean(cols ...string) (*Frame, error) {
	if len(g.groups) == 0 {
		se := make([]series.Series, 0, len(g.cols)+len(cols))
		for _, c := range g.cols {
			se = append(se, series.New([]string{}, series.String, c))
		}
		for _, c := range cols {
			se = append(se, series.New([]float64{}, series.Float, c+"_mean"))
		}
		out := NewFrame(dataframe.New(se...))
		return out, out.Err()
	}
	out, err := g.MapGroups(func(sub *Frame) ([]float64, error) {
		row := make([]float64, len(cols))
		for i, c := range cols {
			s, err := sub.Col(c)
			if err != nil {
				return nil, err
			}
			row[i] = s.Mean()
		}
		return row, nil
	}, "mean")
	if err != nil {
		return nil, err
	}
	if len(cols) == 1 {
		out = out.Rename(cols[0]+"_mean", "mean")
	} else {
		for i, c := range cols {
			out = out.Rename(c+"_mean", fmt.Sprintf("mean_%d", i))
		}
	}
	if out.Err() != nil {
		return nil, out.Err()
	}
	return out, nil
}

// Counts returns a wrapped Frame with the group key columns and an "n"
// column holding each group's row count.
func (g *GroupBy) Counts() (*Frame, error) {
	out, err := g.MapGroups(func(sub *Frame) ([]float64, error) {
		return []float64{float64(sub.Nrow())}, nil
	}, "n")
	if err != nil {
		return nil, err
	}
	if out.Err() != nil {
		return nil, out.Err()
	}
	return out, nil
}

// Head truncates every group to its first n rows (in source order).
// Groups with fewer rows are kept whole.
func (g *GroupBy) Head(n int) *GroupBy {
	out := make([]group, len(g.groups))
	for i, gr := range g.groups {
		rows := gr.rows
		if len(rows) > n {
			rows = rows[:n]
		}
		out[i] = group{key: gr.key, vals: gr.vals, rows: rows}
	}
	return g.derive(out)
}

// TakeGroups keeps only the groups with the given keys, in the order the
// keys are listed. Unknown keys are errors.
func (g *GroupBy) TakeGroups(keys ...string) (*GroupBy, error) {
	var kept []group
	for _, key := range keys {
		found := false
		for _, gr := range g.groups {
			if gr.key == key {
				kept = append(kept, gr)
				found = true
				break
			}
		}
		if !found {
			return nil, errors.Errorf("bamboo: no group with key %q", key)
		}
	}
	return g.derive(kept), nil
}

// Hist draws one histogram of the given column per group onto p, with a
// legend entry per group key and a distinct color per group. The receiver
// is returned unchanged so the chain can continue; drawing is the only
// effect. Fails with ErrColumnNotFound for a bad column.
func (g *GroupBy) Hist(p *plot.Plot, col string, opts plotting.HistOptions) (*GroupBy, error) {
	for i, gr := range g.groups {
		sub := g.src.Subset(gr.rows)
		s, err := sub.Col(col)
		if err != nil {
			return nil, err
		}
		c := plotting.GroupColor(i, opts.Alpha)
		if err := plotting.Hist(p, gr.key, s.Float(), c, opts); err != nil {
			return nil, err
		}
	}
	return g, nil
}
