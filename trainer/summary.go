package trainer

import "os"

import "github.com/gocarina/gocsv"
import "github.com/montanaflynn/stats"
import "github.com/pkg/errors"
import "go.uber.org/zap"

// TrialSummary is one row of the summary across trials.
type TrialSummary struct {
	RunID     string  `csv:"run_id"`
	Trial     int     `csv:"trial"`
	Steps     int     `csv:"steps"`
	Stopped   bool    `csv:"stopped"`
	FinalLoss float64 `csv:"final_loss"`
	FinalAcc  float64 `csv:"final_accuracy"`
}

// Summary collects the result of every trial of one run.
type Summary struct {
	RunID  string
	Trials []TrialSummary
}

// Add records trial n. last is the final evaluation; without one the training
// loss of the last step is recorded and the accuracy is 0.
func (s *Summary) Add(n int, res Result, last *EvalResult) {
	t := TrialSummary{
		RunID:     s.RunID,
		Trial:     n,
		Steps:     res.Steps,
		Stopped:   res.Stopped,
		FinalLoss: res.Loss,
	}
	if last != nil {
		t.FinalLoss = last.Loss
		t.FinalAcc = last.Accuracy
	}
	s.Trials = append(s.Trials, t)
}

// Stats returns the mean and the population standard deviation of a column.
func (s *Summary) Stats(column func(TrialSummary) float64) (mean, stddev float64, err error) {
	data := make(stats.Float64Data, len(s.Trials))
	for i, t := range s.Trials {
		data[i] = column(t)
	}
	if mean, err = stats.Mean(data); err != nil {
		return
	}
	stddev, err = stats.StandardDeviation(data)
	return
}

// Log writes the mean and the standard deviation of the final metrics.
func (s *Summary) Log(log *zap.SugaredLogger) {
	for _, c := range []struct {
		name   string
		column func(TrialSummary) float64
	}{
		{"final_loss", func(t TrialSummary) float64 { return t.FinalLoss }},
		{"final_accuracy", func(t TrialSummary) float64 { return t.FinalAcc }},
		{"steps", func(t TrialSummary) float64 { return float64(t.Steps) }},
	} {
		mean, stddev, err := s.Stats(c.column)
		if err != nil {
			log.Warnw("no summary", "metric", c.name, "error", err)
			continue
		}
		log.Infow("summary", "run_id", s.RunID, "metric", c.name, "trials", len(s.Trials),
			"mean", mean, "stddev", stddev)
	}
}

// Write writes one row per trial to path.
func (s *Summary) Write(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = gocsv.MarshalFile(&s.Trials, file); err != nil {
		file.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return file.Close()
}
