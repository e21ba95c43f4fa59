package nn

import (
	"fmt"
	"strconv"

	"github.com/born-ml/nanograd/internal/engine"
)

// Neuron computes relu(Σ wᵢ·xᵢ + b), or the plain affine sum when the
// nonlinearity is disabled.
//
// Weights are initialized from U(-1, 1) and the bias to 0 unless options say
// otherwise.
//
// Example:
//
//	n := nn.NewNeuron(3, true)
//	out, err := n.Activate([]*engine.Value{engine.New(1), engine.New(2), engine.New(3)})
type Neuron struct {
	weights   []*engine.Value
	bias      *engine.Value // nil when created WithoutBias
	nonlinear bool
}

// NewNeuron creates a neuron with nin inputs.
//
// Panics if nin is not positive.
func NewNeuron(nin int, nonlinear bool, opts ...Option) *Neuron {
	return newNeuron(nin, nonlinear, newConfig(opts))
}

func newNeuron(nin int, nonlinear bool, cfg *config) *Neuron {
	if nin <= 0 {
		panic(fmt.Sprintf("NewNeuron: input count must be positive, got %d", nin))
	}

	weights := make([]*engine.Value, nin)
	for i := range weights {
		weights[i] = engine.New(cfg.weightInit(cfg.rng))
	}

	n := &Neuron{
		weights:   weights,
		nonlinear: nonlinear,
	}
	if cfg.bias {
		n.bias = engine.New(cfg.biasInit(cfg.rng))
	}
	return n
}

// Activate builds the neuron's output node for inputs.
//
// Returns an error wrapping ErrInvalidInput if len(inputs) differs from the
// number of weights, or engine.ErrInvalidOperand if an input is nil. On error
// no node is created.
func (n *Neuron) Activate(inputs []*engine.Value) (*engine.Value, error) {
	if len(inputs) != len(n.weights) {
		return nil, fmt.Errorf("Neuron.Activate: expected %d inputs, got %d: %w",
			len(n.weights), len(inputs), ErrInvalidInput)
	}
	for i, x := range inputs {
		if x == nil {
			return nil, fmt.Errorf("Neuron.Activate: input %d is nil: %w", i, engine.ErrInvalidOperand)
		}
	}

	products := make([]*engine.Value, len(n.weights))
	for i, w := range n.weights {
		products[i] = w.Mul(inputs[i])
	}

	act := engine.Sum(products...)
	if n.bias != nil {
		act = act.Add(n.bias)
	}
	if n.nonlinear {
		act = act.ReLU()
	}
	return act, nil
}

// Call implements Module. The result holds a single node.
func (n *Neuron) Call(inputs []*engine.Value) ([]*engine.Value, error) {
	out, err := n.Activate(inputs)
	if err != nil {
		return nil, err
	}
	return []*engine.Value{out}, nil
}

// Parameters returns the weights followed by the bias, if any.
func (n *Neuron) Parameters() []*engine.Value {
	params := make([]*engine.Value, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	if n.bias != nil {
		params = append(params, n.bias)
	}
	return params
}

// ZeroGrad resets the gradients of all parameters.
func (n *Neuron) ZeroGrad() {
	ZeroGrad(n)
}

// Weights returns a copy of the weight slice. The Values are shared.
func (n *Neuron) Weights() []*engine.Value {
	out := make([]*engine.Value, len(n.weights))
	copy(out, n.weights)
	return out
}

// Bias returns the bias, or nil when the neuron has none.
func (n *Neuron) Bias() *engine.Value {
	return n.bias
}

// NumInputs returns the expected input arity.
func (n *Neuron) NumInputs() int {
	return len(n.weights)
}

// Nonlinear reports whether ReLU is applied to the output.
func (n *Neuron) Nonlinear() bool {
	return n.nonlinear
}

// String implements fmt.Stringer.
func (n *Neuron) String() string {
	kind := "Linear"
	if n.nonlinear {
		kind = "ReLU"
	}
	return fmt.Sprintf("%sNeuron(%d)", kind, len(n.weights))
}

// StateDict returns the parameter values keyed by name: "w.<i>" and "b".
func (n *Neuron) StateDict() map[string]float64 {
	return stateDict(n.Parameters(), n.paramKeys())
}

// LoadStateDict copies values from stateDict into the parameters.
//
// Every key is checked before anything is written, so a failed load leaves
// the neuron unchanged. Unknown keys are ignored.
func (n *Neuron) LoadStateDict(sd map[string]float64) error {
	return loadStateDict("Neuron", n.Parameters(), n.paramKeys(), sd)
}

// paramKeys returns state dict keys in Parameters order.
func (n *Neuron) paramKeys() []string {
	keys := make([]string, 0, len(n.weights)+1)
	for i := range n.weights {
		keys = append(keys, "w."+strconv.Itoa(i))
	}
	if n.bias != nil {
		keys = append(keys, "b")
	}
	return keys
}
