package bamboo

import (
	"strings"

	"github.com/pkg/errors"
)

// keySep joins multi-column group key values for display and lookup.
const keySep = "_"

// group is one partition of the source frame: the joined key, the raw
// key values (one per grouping column), and the source row positions.
type group struct {
	key  string
	vals []string
	rows []int
}

// GroupBy is the wrapped form of a grouped frame. It partitions the rows
// of a source Frame by one or more key columns, keeping groups in the
// order their keys first appear in the source. Row data stays in the
// source; each group holds only row positions, and subsetting is
// delegated to the underlying dataframe.
type GroupBy struct {
	src    *Frame
	cols   []string
	groups []group
}

// GroupBy partitions the frame's rows by the given columns.
// Fails with ErrColumnNotFound if any column is absent.
func (f *Frame) GroupBy(cols ...string) (*GroupBy, error) {
	if len(cols) == 0 {
		return nil, errors.New("bamboo: GroupBy requires at least one column")
	}
	recs := make([][]string, len(cols))
	for i, c := range cols {
		s, err := f.Col(c)
		if err != nil {
			return nil, err
		}
		recs[i] = s.Records()
	}
	gb := &GroupBy{src: f, cols: cols}
	byKey := map[string]int{}
	vals := make([]string, len(cols))
	for r := 0; r < f.Nrow(); r++ {
		for i := range cols {
			vals[i] = recs[i][r]
		}
		key := strings.Join(vals, keySep)
		gi, ok := byKey[key]
		if !ok {
			gi = len(gb.groups)
			byKey[key] = gi
			gb.groups = append(gb.groups, group{key: key, vals: append([]string(nil), vals...)})
		}
		gb.groups[gi].rows = append(gb.groups[gi].rows, r)
	}
	return gb, nil
}

// Len returns the number of groups.
func (g *GroupBy) Len() int { return len(g.groups) }

// Cols returns the grouping column names.
func (g *GroupBy) Cols() []string { return append([]string(nil), g.cols...) }

// Keys returns the group keys in group order.
func (g *GroupBy) Keys() []string {
	keys := make([]string, len(g.groups))
	for i, gr := range g.groups {
		keys[i] = gr.key
	}
	return keys
}

// Group returns the row subset of the group with the given key, as a
// wrapped Frame. Fails with ErrColumnNotFound-style lookup semantics:
// an unknown key is an error.
func (g *GroupBy) Group(key string) (*Frame, error) {
	for _, gr := range g.groups {
		if gr.key == key {
			return g.src.Subset(gr.rows), nil
		}
	}
	return nil, errors.Errorf("bamboo: no group with key %q", key)
}

// Each calls fn for every group in order with the group key and its row
// subset. A non-nil error from fn stops the iteration and is returned.
func (g *GroupBy) Each(fn func(key string, sub *Frame) error) error {
	for _, gr := range g.groups {
		if err := fn(gr.key, g.src.Subset(gr.rows)); err != nil {
			return err
		}
	}
	return nil
}

// Ungroup flattens the groups back into a single wrapped Frame, with
// rows ordered by group, then by source order within each group.
func (g *GroupBy) Ungroup() *Frame {
	var rows []int
	for _, gr := range g.groups {
		rows = append(rows, gr.rows...)
	}
	return g.src.Subset(rows)
}

// derive returns a GroupBy over the same source and key columns with a
// different set of groups, preserving the invariant that results of
// group operations are wrapped again.
func (g *GroupBy) derive(groups []group) *GroupBy {
	return &GroupBy{src: g.src, cols: g.cols, groups: groups}
}
