package nn

import (
	"fmt"
	"strings"

	"github.com/born-ml/nanograd/internal/engine"
)

// MLP is a multi-layer perceptron: layers applied in sequence, each
// consuming the previous layer's output.
//
// Nonlinearity policy: every layer except the last applies ReLU; the last
// layer is linear, so the network can output negative values.
//
// Example:
//
//	// 3 inputs, two hidden layers of 4, one output
//	mlp := nn.NewMLP(3, []int{4, 4, 1})
//	out, err := mlp.Call(inputs) // len(out) == 1
//
// This is equivalent to:
//
//	h1, _ := layer0.Call(inputs)
//	h2, _ := layer1.Call(h1)
//	out, _ := layer2.Call(h2)
type MLP struct {
	layers []*Layer
}

// NewMLP creates an MLP with nin inputs and one layer per entry of nouts.
//
// Layer i maps sizes[i] to sizes[i+1] where sizes = [nin, nouts...], so the
// arities always line up. Options apply to every neuron. Panics if nouts is
// empty or any size is not positive.
func NewMLP(nin int, nouts []int, opts ...Option) *MLP {
	if len(nouts) == 0 {
		panic("NewMLP: at least one layer size is required")
	}
	cfg := newConfig(opts)

	sizes := append([]int{nin}, nouts...)
	layers := make([]*Layer, len(nouts))
	for i := range layers {
		nonlinear := i != len(nouts)-1
		layers[i] = newLayer(sizes[i], sizes[i+1], nonlinear, cfg)
	}
	return &MLP{layers: layers}
}

// Call feeds inputs through every layer and returns the last layer's output.
//
// Returns an error wrapping ErrInvalidInput if len(inputs) is not the
// network's input arity.
func (m *MLP) Call(inputs []*engine.Value) ([]*engine.Value, error) {
	out := inputs
	for i, l := range m.layers {
		next, err := l.Call(out)
		if err != nil {
			return nil, fmt.Errorf("MLP.Call: layer %d: %w", i, err)
		}
		out = next
	}
	return out, nil
}

// Parameters returns every layer's parameters, in layer order.
func (m *MLP) Parameters() []*engine.Value {
	var params []*engine.Value
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// ZeroGrad resets the gradients of all parameters.
func (m *MLP) ZeroGrad() {
	ZeroGrad(m)
}

// Layers returns a copy of the layer slice.
func (m *MLP) Layers() []*Layer {
	out := make([]*Layer, len(m.layers))
	copy(out, m.layers)
	return out
}

// NumInputs returns the expected input arity.
func (m *MLP) NumInputs() int {
	return m.layers[0].nin
}

// NumOutputs returns the size of the final layer.
func (m *MLP) NumOutputs() int {
	return len(m.layers[len(m.layers)-1].neurons)
}

// String implements fmt.Stringer.
func (m *MLP) String() string {
	parts := make([]string, len(m.layers))
	for i, l := range m.layers {
		parts[i] = l.String()
	}
	return "MLP[" + strings.Join(parts, ", ") + "]"
}

// StateDict returns parameter values keyed "<layer>.<neuron>.<key>",
// e.g. "0.3.w.1" or "1.0.b".
func (m *MLP) StateDict() map[string]float64 {
	return stateDict(m.Parameters(), m.paramKeys())
}

// LoadStateDict copies values from stateDict into the parameters.
//
// All keys are checked before anything is written.
func (m *MLP) LoadStateDict(sd map[string]float64) error {
	return loadStateDict("MLP", m.Parameters(), m.paramKeys(), sd)
}

func (m *MLP) paramKeys() []string {
	var keys []string
	for i, l := range m.layers {
		keys = append(keys, prefixKeys(i, l.paramKeys())...)
	}
	return keys
}
