package bamboo

import (
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFrame() *Frame {
	return NewFrame(dataframe.LoadRecords([][]string{
		{"id", "feature1", "feature2", "class"},
		{"1", "10", "100", "0"},
		{"2", "10", "200", "0"},
		{"3", "20", "150", "1"},
		{"4", "25", "250", "1"},
		{"5", "-15", "0", "2"},
		{"6", "-25", "20", "2"},
	}))
}

func TestWrapDataFrame(t *testing.T) {
	df := sampleFrame().DataFrame()
	v, err := Wrap(df)
	require.NoError(t, err)
	f, ok := v.(*Frame)
	require.True(t, ok)
	assert.Equal(t, 6, f.Nrow())
}

func TestWrapIdempotent(t *testing.T) {
	f := sampleFrame()
	v, err := Wrap(f)
	require.NoError(t, err)
	assert.Same(t, f, v)

	g, err := f.GroupBy("class")
	require.NoError(t, err)
	v, err = Wrap(g)
	require.NoError(t, err)
	assert.Same(t, g, v)
}

func TestWrapUnsupportedType(t *testing.T) {
	_, err := Wrap(42)
	require.ErrorIs(t, err, ErrUnsupportedType)
	_, err = Wrap("not a frame")
	require.ErrorIs(t, err, ErrUnsupportedType)
}

// Every intermediate value of a chain must support every subsequent
// catalog operation without re-wrapping.
func TestChainClosure(t *testing.T) {
	g, err := sampleFrame().GroupBy("class")
	require.NoError(t, err)

	g, err = g.FilterGroups(func(sub *Frame) (bool, error) {
		return sub.Nrow() > 0, nil
	})
	require.NoError(t, err)

	g, err = g.SortedGroups(func(sub *Frame) (float64, error) {
		s, err := sub.Col("feature2")
		if err != nil {
			return 0, err
		}
		return s.Mean(), nil
	})
	require.NoError(t, err)

	mapped, err := g.MapGroups(func(sub *Frame) ([]float64, error) {
		return []float64{float64(sub.Nrow())}, nil
	}, "n")
	require.NoError(t, err)

	// The mapped result is a wrapped Frame again: native ops and a
	// fresh GroupBy still apply.
	g2, err := mapped.Select("class", "n").GroupBy("class")
	require.NoError(t, err)
	assert.Equal(t, 3, g2.Len())
}
