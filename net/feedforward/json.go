package feedforward

import "encoding/json"
import "io"
import "os"

import "github.com/golang/snappy"
import "github.com/pkg/errors"

import "github.com/neurlang/verbs/layer/activation"
import "github.com/neurlang/verbs/layer/full"

// checkpoint is the JSON document inside a compressed weights file.
type checkpoint struct {
	InputFeature string      `json:"input_feature"`
	Inputs       int         `json:"inputs"`
	Layers       []jsonLayer `json:"layers"`
}

// jsonLayer holds exactly one of its fields.
type jsonLayer struct {
	Full       *jsonFull `json:"full,omitempty"`
	Activation string    `json:"activation,omitempty"`
}

type jsonFull struct {
	Inputs  int       `json:"inputs"`
	Outputs int       `json:"outputs"`
	Weights []float64 `json:"weights"`
	Biases  []float64 `json:"biases"`
}

// WriteCompressedWeightsToFile writes model weights to a snappy file
func (f FeedforwardNetwork) WriteCompressedWeightsToFile(name, inputFeature string) error {
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	err = f.WriteCompressedWeights(file, inputFeature)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	return err
}

// WriteCompressedWeights writes model weights to a writer. inputFeature names the
// input column the model was trained on.
func (f FeedforwardNetwork) WriteCompressedWeights(w io.Writer, inputFeature string) error {
	c := checkpoint{InputFeature: inputFeature, Inputs: f.inputs}
	for i, l := range f.layers {
		switch l := l.(type) {
		case *full.FullLayer:
			params := l.Params()
			c.Layers = append(c.Layers, jsonLayer{Full: &jsonFull{
				Inputs:  l.Inputs(),
				Outputs: l.Outputs(0),
				Weights: params[0].Value,
				Biases:  params[1].Value,
			}})
		case activation.Activation:
			c.Layers = append(c.Layers, jsonLayer{Activation: l.Name()})
		default:
			return errors.Errorf("layer %d of type %T cannot be saved", i, l)
		}
	}
	sw := snappy.NewBufferedWriter(w)
	if err := json.NewEncoder(sw).Encode(&c); err != nil {
		return errors.Wrap(err, "encoding weights")
	}
	return sw.Close()
}

// ReadCompressedWeightsFromFile reads a model from a snappy file
func ReadCompressedWeightsFromFile(name string) (*FeedforwardNetwork, string, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, "", err
	}
	defer file.Close()
	return ReadCompressedWeights(file)
}

// ReadCompressedWeights reads a model from a reader and returns it with the
// recorded input feature name.
func ReadCompressedWeights(r io.Reader) (*FeedforwardNetwork, string, error) {
	var c checkpoint
	if err := json.NewDecoder(snappy.NewReader(r)).Decode(&c); err != nil {
		return nil, "", errors.Wrap(err, "decoding weights")
	}
	f := New(c.Inputs)
	width := c.Inputs
	for i, l := range c.Layers {
		switch {
		case l.Full != nil:
			if l.Full.Inputs != width {
				return nil, "", errors.Errorf("layer %d reads %d inputs, previous layer gives %d",
					i, l.Full.Inputs, width)
			}
			fl, err := full.Load(l.Full.Inputs, l.Full.Outputs, l.Full.Weights, l.Full.Biases)
			if err != nil {
				return nil, "", errors.Wrapf(err, "layer %d", i)
			}
			f.NewLayer(fl)
			width = l.Full.Outputs
		case l.Activation != "":
			a, err := activation.ByName(l.Activation)
			if err != nil {
				return nil, "", errors.Wrapf(err, "layer %d", i)
			}
			f.NewLayer(a)
		default:
			return nil, "", errors.Errorf("layer %d is empty", i)
		}
	}
	return f, c.InputFeature, nil
}
