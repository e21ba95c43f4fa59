// Package nn implements neural network modules on top of the scalar engine.
//
// This package provides:
//   - Module interface: common contract for differentiable, parameterized units
//   - Neuron: weighted sum plus bias, optionally followed by ReLU
//   - Layer: several neurons applied to the same input
//   - MLP: layers chained so each consumes the previous layer's output
//   - Initializers: Uniform, Xavier, Constant
//
// Modules only build the computation graph. Gradients are computed by calling
// Backward on whatever scalar the caller derives from a module's output, and
// read back through Parameters.
package nn

import (
	"github.com/born-ml/nanograd/internal/engine"
)

// Module is the base interface for all neural network components.
//
// Every module must implement:
//   - Call: build the output nodes for a sequence of input nodes
//   - Parameters: return the leaves it owns, in a fixed order
//
// Modules compose by aggregation: a Layer holds Neurons, an MLP holds Layers.
//
//	model := nn.NewMLP(3, []int{4, 4, 1})
//	out, err := model.Call(inputs)
//	loss := out[0].Sub(target).Pow(2)
//	nn.ZeroGrad(model)
//	loss.Backward()
type Module interface {
	// Call computes the module's outputs from inputs.
	//
	// Returns an error wrapping ErrInvalidInput when len(inputs) does not
	// match the module's input arity. No gradients are computed here.
	Call(inputs []*engine.Value) ([]*engine.Value, error)

	// Parameters returns the trainable leaves of this module.
	//
	// The order is stable across calls; nested modules contribute their
	// parameters in construction order.
	Parameters() []*engine.Value
}

// ZeroGrad resets the gradient of every parameter of m.
//
// Call it before each fresh backward pass: Backward accumulates.
func ZeroGrad(m Module) {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}

// NumParameters returns the number of parameters of m.
func NumParameters(m Module) int {
	return len(m.Parameters())
}
