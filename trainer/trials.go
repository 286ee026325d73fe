package trainer

import "fmt"
import "os"
import "path/filepath"

import "github.com/gocarina/gocsv"
import "github.com/pkg/errors"

// TrialPath names the file of trial n in dir with the given suffix, as in
// dir/trial_<n><suffix>.
func TrialPath(dir string, n int, suffix string) string {
	return filepath.Join(dir, fmt.Sprintf("trial_%d%s", n, suffix))
}

// WriteTrial writes series to path, one row per evaluation.
func WriteTrial(path string, series []EvalResult) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = gocsv.MarshalFile(&series, file); err != nil {
		file.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return file.Close()
}

// ReadTrial reads a series written by WriteTrial.
func ReadTrial(path string) (series []EvalResult, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	if err = gocsv.UnmarshalFile(file, &series); err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return series, nil
}

// ReadTrials reads dir/trial_<n>.csv for every n in trials.
func ReadTrials(dir string, trials []int) (map[int][]EvalResult, error) {
	o := make(map[int][]EvalResult, len(trials))
	for _, n := range trials {
		series, err := ReadTrial(TrialPath(dir, n, ".csv"))
		if err != nil {
			return nil, err
		}
		o[n] = series
	}
	return o, nil
}
