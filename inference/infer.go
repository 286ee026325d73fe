// Package inference implements the prediction stage of the verb classifier
package inference

import "os"

import "github.com/gocarina/gocsv"
import "github.com/pkg/errors"

import "github.com/neurlang/verbs/datasets"

// Model predicts the class of a feature vector and returns the class probabilities.
type Model interface {
	Predict(x []float64) (class int, probs []float64)
}

// Prediction is one row of the predictions CSV. Correct and DoxInP are 0 or 1.
type Prediction struct {
	Index       int     `csv:"index"`
	ClassID     int     `csv:"class_ids"`
	Probability float64 `csv:"probability"`
	TrueLabel   int     `csv:"true_label"`
	Correct     int     `csv:"correct"`
	DoxInP      int     `csv:"dox_in_p"`
	Verb        string  `csv:"verb"`
}

// Predict runs m over every row of ds, in row order.
func Predict(m Model, ds datasets.Dataset) []Prediction {
	o := make([]Prediction, ds.Len())
	for i, x := range ds.Features {
		class, probs := m.Predict(x)
		o[i] = Prediction{
			Index:       i,
			ClassID:     class,
			Probability: probs[class],
			TrueLabel:   ds.Labels[i],
			Correct:     boolInt(class == ds.Labels[i]),
			DoxInP:      boolInt(ds.Info[i].DoxInP),
			Verb:        ds.Info[i].Verb,
		}
	}
	return o
}

// Accuracy is the share of correct predictions.
func Accuracy(preds []Prediction) float64 {
	if len(preds) == 0 {
		return 0
	}
	var n int
	for _, p := range preds {
		n += p.Correct
	}
	return float64(n) / float64(len(preds))
}

// WritePredictions writes preds to path as CSV.
func WritePredictions(path string, preds []Prediction) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = gocsv.MarshalFile(&preds, file); err != nil {
		file.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return file.Close()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
