package main

import (
	"fmt"
	"log"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/kgocks/bamboo"
	"github.com/kgocks/bamboo/plotting"
)

// colMean averages one column of a group subset.
func colMean(col string) func(sub *bamboo.Frame) (float64, error) {
	return func(sub *bamboo.Frame) (float64, error) {
		s, err := sub.Col(col)
		if err != nil {
			return 0, err
		}
		return s.Mean(), nil
	}
}

func main() {
	df := dataframe.LoadRecords([][]string{
		{"id", "feature1", "feature2", "class"},
		{"1", "10", "100", "0"},
		{"2", "10", "200", "0"},
		{"3", "20", "150", "1"},
		{"4", "25", "250", "1"},
		{"5", "-15", "0", "2"},
		{"6", "-25", "20", "2"},
	})

	f := bamboo.NewFrame(df)
	g, err := f.GroupBy("class")
	if err != nil {
		log.Fatal(err)
	}

	// Keep the classes whose feature1 mean is positive, order them by
	// feature2 mean, and summarize, all on wrapped values.
	kept, err := g.FilterGroups(func(sub *bamboo.Frame) (bool, error) {
		m, err := colMean("feature1")(sub)
		return m > 0, err
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("classes with positive feature1 mean:", kept.Keys())

	ordered, err := g.SortedGroups(colMean("feature2"))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("classes by feature2 mean:", ordered.Keys())

	summary, err := ordered.Mean("feature1", "feature2")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(summary)

	// Draw one feature2 histogram per class.
	p := plot.New()
	p.Title.Text = "feature2 by class"
	if _, err := g.Hist(p, "feature2", plotting.HistOptions{Bins: 8, Alpha: 0.5}); err != nil {
		log.Fatal(err)
	}
	if err := p.Save(5*vg.Inch, 4*vg.Inch, "feature2_by_class.png"); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Saved histogram to feature2_by_class.png")
}
