// Package bamboo is a thin convenience layer over gota dataframes.
// It wraps a dataframe.DataFrame in a Frame whose operations all return
// wrapped values again, so grouping, filtering, sorting and mapping can
// be chained without ever falling back to the plain gota types.
//
// A typical chain:
//
//	f := bamboo.NewFrame(df)
//	g, _ := f.GroupBy("class")
//	g, _ = g.FilterGroups(func(sub *bamboo.Frame) (bool, error) {
//		s, err := sub.Col("feature1")
//		if err != nil {
//			return false, err
//		}
//		return s.Mean() > 0, nil
//	})
//	g, _ = g.SortedGroups(func(sub *bamboo.Frame) (float64, error) {
//		s, err := sub.Col("feature2")
//		if err != nil {
//			return 0, err
//		}
//		return s.Mean(), nil
//	})
//
// The ml subpackage pairs a feature Frame with a target series for
// modeling workflows; the plotting subpackage renders histograms onto a
// gonum/plot surface.
package bamboo
