package trainer

import "github.com/pkg/errors"

import "github.com/neurlang/verbs/net/feedforward"

// Resume loads the model of a previous run from path. The checkpoint must read
// inputs features under the input feature name inputFeature.
func Resume(path string, inputs int, inputFeature string) (*feedforward.FeedforwardNetwork, error) {
	net, feature, err := feedforward.ReadCompressedWeightsFromFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "resuming %s", path)
	}
	if feature != inputFeature {
		return nil, errors.Errorf("%s was trained on input feature %q, want %q", path, feature, inputFeature)
	}
	if net.Inputs() != inputs {
		return nil, errors.Errorf("%s reads %d features, dataset has %d", path, net.Inputs(), inputs)
	}
	return net, nil
}
