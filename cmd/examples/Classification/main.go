package main

import (
	"fmt"
	"log"
	"math/rand"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/kgocks/bamboo/ml"
)

// generateRecords creates n samples of two gaussian blobs with a string
// id column mixed in, so NumericFeatures has something to drop.
func generateRecords(n int) [][]string {
	records := [][]string{{"name", "x1", "x2", "label"}}
	for i := 0; i < n; i++ {
		label := i % 2
		cx := float64(label)*3 - 1.5
		x1 := cx + rand.NormFloat64()
		x2 := cx + rand.NormFloat64()
		records = append(records, []string{
			fmt.Sprintf("sample-%d", i),
			strconv.FormatFloat(x1, 'f', 4, 64),
			strconv.FormatFloat(x2, 'f', 4, 64),
			strconv.Itoa(label),
		})
	}
	return records
}

func main() {
	df := dataframe.LoadRecords(generateRecords(400))

	md, err := ml.FromDataFrame(df, "label")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(md, "classes:", md.Classes())

	train, test, err := md.NumericFeatures().TrainTestSplit(0.25, 42)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("train=%d test=%d orthogonal=%v\n", train.Len(), test.Len(), train.IsOrthogonal(test))

	balanced, err := train.GetBalanced()
	if err != nil {
		log.Fatal(err)
	}

	clf := ml.NewLogistic(0.5, 500)
	if err := balanced.Fit(clf); err != nil {
		log.Fatal(err)
	}

	summary, err := test.PerformanceSummary(clf, 1)
	if err != nil {
		log.Fatal(err)
	}
	for _, k := range []string{"accuracy", "precision", "recall", "specificity", "f1"} {
		fmt.Printf("%s: %.3f\n", k, summary[k])
	}

	p := plot.New()
	p.Title.Text = "ROC"
	auc, err := test.PlotROC(p, clf, 1, "logistic")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("auc: %.3f\n", auc)
	if err := p.Save(4*vg.Inch, 4*vg.Inch, "roc.png"); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Saved ROC curve to roc.png")
}
