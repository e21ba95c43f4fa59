package nn

import (
	"fmt"

	"github.com/born-ml/nanograd/internal/engine"
)

// Layer is a fully connected layer of neurons sharing the same input.
//
// Output i is neuron i applied to the whole input vector, so a Layer with
// nin inputs and nout neurons maps nin values to nout values.
//
// Example:
//
//	layer := nn.NewLayer(3, 4, true)
//	out, err := layer.Call(inputs) // len(out) == 4
type Layer struct {
	nin     int
	neurons []*Neuron
}

// NewLayer creates a layer of nout neurons, each with nin inputs.
//
// Options apply to every neuron. Panics if nin or nout is not positive.
func NewLayer(nin, nout int, nonlinear bool, opts ...Option) *Layer {
	return newLayer(nin, nout, nonlinear, newConfig(opts))
}

func newLayer(nin, nout int, nonlinear bool, cfg *config) *Layer {
	if nout <= 0 {
		panic(fmt.Sprintf("NewLayer: neuron count must be positive, got %d", nout))
	}

	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = newNeuron(nin, nonlinear, cfg)
	}
	return &Layer{nin: nin, neurons: neurons}
}

// Call applies every neuron to inputs and returns their outputs in neuron
// order.
//
// Returns an error wrapping ErrInvalidInput if len(inputs) is not the
// layer's input arity.
func (l *Layer) Call(inputs []*engine.Value) ([]*engine.Value, error) {
	if len(inputs) != l.nin {
		return nil, fmt.Errorf("Layer.Call: expected %d inputs, got %d: %w",
			l.nin, len(inputs), ErrInvalidInput)
	}

	out := make([]*engine.Value, len(l.neurons))
	for i, n := range l.neurons {
		act, err := n.Activate(inputs)
		if err != nil {
			return nil, fmt.Errorf("Layer.Call: neuron %d: %w", i, err)
		}
		out[i] = act
	}
	return out, nil
}

// Parameters returns every neuron's parameters, in neuron order.
func (l *Layer) Parameters() []*engine.Value {
	var params []*engine.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// ZeroGrad resets the gradients of all parameters.
func (l *Layer) ZeroGrad() {
	ZeroGrad(l)
}

// Neurons returns a copy of the neuron slice.
func (l *Layer) Neurons() []*Neuron {
	out := make([]*Neuron, len(l.neurons))
	copy(out, l.neurons)
	return out
}

// NumInputs returns the expected input arity.
func (l *Layer) NumInputs() int {
	return l.nin
}

// NumOutputs returns the number of neurons.
func (l *Layer) NumOutputs() int {
	return len(l.neurons)
}

// String implements fmt.Stringer.
func (l *Layer) String() string {
	kind := "Linear"
	if l.neurons[0].nonlinear {
		kind = "ReLU"
	}
	return fmt.Sprintf("Layer(%d -> %d, %s)", l.nin, len(l.neurons), kind)
}

// StateDict returns parameter values keyed "<neuron>.<key>", e.g. "2.w.0".
func (l *Layer) StateDict() map[string]float64 {
	return stateDict(l.Parameters(), l.paramKeys())
}

// LoadStateDict copies values from stateDict into the parameters.
//
// All keys are checked before anything is written.
func (l *Layer) LoadStateDict(sd map[string]float64) error {
	return loadStateDict("Layer", l.Parameters(), l.paramKeys(), sd)
}

func (l *Layer) paramKeys() []string {
	var keys []string
	for i, n := range l.neurons {
		keys = append(keys, prefixKeys(i, n.paramKeys())...)
	}
	return keys
}
