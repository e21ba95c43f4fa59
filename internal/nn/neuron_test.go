package nn_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/nanograd/internal/engine"
	"github.com/born-ml/nanograd/internal/nn"
)

// values wraps xs as leaves.
func values(xs ...float64) []*engine.Value {
	out := make([]*engine.Value, len(xs))
	for i, x := range xs {
		out[i] = engine.New(x)
	}
	return out
}

// ones returns n leaves holding 1.
func ones(n int) []*engine.Value {
	out := make([]*engine.Value, n)
	for i := range out {
		out[i] = engine.New(1)
	}
	return out
}

func TestNeuron_Creation(t *testing.T) {
	n := nn.NewNeuron(5, true)

	var _ nn.Module = n
	assert.Len(t, n.Parameters(), 6)
	assert.Equal(t, 6, nn.NumParameters(n))
	assert.Equal(t, 5, n.NumInputs())
	assert.True(t, n.Nonlinear())
	require.NotNil(t, n.Bias())
	assert.Equal(t, 0.0, n.Bias().Data(), "bias starts at 0")

	for i, w := range n.Weights() {
		assert.GreaterOrEqual(t, w.Data(), -1.0, "weight %d", i)
		assert.LessOrEqual(t, w.Data(), 1.0, "weight %d", i)
		assert.True(t, w.IsLeaf())
	}
}

func TestNeuron_WithoutBias(t *testing.T) {
	n := nn.NewNeuron(5, true, nn.WithoutBias())

	assert.Nil(t, n.Bias())
	assert.Len(t, n.Parameters(), 5)
}

func TestNeuron_ParameterOrder(t *testing.T) {
	n := nn.NewNeuron(3, false)
	params := n.Parameters()
	weights := n.Weights()

	require.Len(t, params, 4)
	for i := range weights {
		assert.Same(t, weights[i], params[i])
	}
	assert.Same(t, n.Bias(), params[3])
}

func TestNeuron_InvalidSize(t *testing.T) {
	assert.Panics(t, func() { nn.NewNeuron(0, true) })
	assert.Panics(t, func() { nn.NewNeuron(-2, false) })
}

func TestNeuron_Calling(t *testing.T) {
	n := nn.NewNeuron(5, true)

	out, err := n.Activate(ones(5))
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.GreaterOrEqual(t, out.Data(), 0.0)

	outs, err := n.Call(ones(5))
	require.NoError(t, err)
	require.Len(t, outs, 1)
	assert.Equal(t, out.Data(), outs[0].Data())
}

func TestNeuron_ReLUOutputNonNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	n := nn.NewNeuron(4, true, nn.WithRand(rng))

	for trial := 0; trial < 200; trial++ {
		inputs := make([]*engine.Value, 4)
		for i := range inputs {
			inputs[i] = engine.New(rng.NormFloat64() * 10)
		}
		out, err := n.Activate(inputs)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, out.Data(), 0.0)
	}
}

func TestNeuron_WeightedSum(t *testing.T) {
	n := nn.NewNeuron(3, false)
	require.NoError(t, n.LoadStateDict(map[string]float64{
		"w.0": 0.5, "w.1": -2, "w.2": 3, "b": 0.25,
	}))

	out, err := n.Activate(values(2, 1, -1))
	require.NoError(t, err)

	// 0.5*2 - 2*1 + 3*(-1) + 0.25
	assert.InDelta(t, -3.75, out.Data(), 1e-12)

	// The same weights with ReLU clamp to zero.
	relu := nn.NewNeuron(3, true)
	require.NoError(t, relu.LoadStateDict(n.StateDict()))
	out, err = relu.Activate(values(2, 1, -1))
	require.NoError(t, err)
	assert.Equal(t, 0.0, out.Data())
}

func TestNeuron_Grads(t *testing.T) {
	n := nn.NewNeuron(5, true,
		nn.WithWeightInit(nn.Constant(1)),
		nn.WithBiasInit(nn.Constant(1)),
	)

	out, err := n.Activate(ones(5))
	require.NoError(t, err)
	assert.Equal(t, 6.0, out.Data())

	out.Backward()

	params := n.Parameters()
	require.Len(t, params, 6)
	for i, p := range params {
		assert.Greater(t, p.Grad(), 0.0, "param %d", i)
	}
}

func TestNeuron_InputGrads(t *testing.T) {
	n := nn.NewNeuron(3, false)
	require.NoError(t, n.LoadStateDict(map[string]float64{
		"w.0": 0.5, "w.1": -2, "w.2": 3, "b": 0,
	}))

	inputs := values(4, 5, 6)
	out, err := n.Activate(inputs)
	require.NoError(t, err)
	out.Backward()

	// d(out)/dx_i = w_i, d(out)/dw_i = x_i
	for i, w := range n.Weights() {
		assert.Equal(t, w.Data(), inputs[i].Grad())
		assert.Equal(t, inputs[i].Data(), w.Grad())
	}
	assert.Equal(t, 1.0, n.Bias().Grad())
}

func TestNeuron_Zeroing(t *testing.T) {
	n := nn.NewNeuron(5, true,
		nn.WithWeightInit(nn.Constant(1)),
		nn.WithBiasInit(nn.Constant(1)),
	)

	out, err := n.Activate(ones(5))
	require.NoError(t, err)
	out.Backward()
	for _, p := range n.Parameters() {
		require.Greater(t, p.Grad(), 0.0)
	}

	n.ZeroGrad()

	for _, p := range n.Parameters() {
		assert.Equal(t, 0.0, p.Grad())
	}
}

func TestNeuron_ShapeMismatch(t *testing.T) {
	n := nn.NewNeuron(5, true)

	for _, size := range []int{0, 4, 6} {
		out, err := n.Activate(ones(size))
		assert.Nil(t, out)
		assert.ErrorIs(t, err, nn.ErrInvalidInput, "size %d", size)

		outs, err := n.Call(ones(size))
		assert.Nil(t, outs)
		assert.ErrorIs(t, err, nn.ErrInvalidInput, "size %d", size)
	}
}

func TestNeuron_NilInput(t *testing.T) {
	n := nn.NewNeuron(2, true)

	_, err := n.Activate([]*engine.Value{engine.New(1), nil})
	assert.ErrorIs(t, err, engine.ErrInvalidOperand)
}

func TestNeuron_IdempotentForward(t *testing.T) {
	n := nn.NewNeuron(4, true, nn.WithRand(rand.New(rand.NewSource(3))))
	inputs := values(0.3, -1.2, 2.5, 0.7)

	first, err := n.Activate(inputs)
	require.NoError(t, err)
	second, err := n.Activate(inputs)
	require.NoError(t, err)

	assert.NotSame(t, first, second, "each call builds a new graph")
	assert.Equal(t, first.Data(), second.Data())
}

func TestNeuron_Reproducible(t *testing.T) {
	a := nn.NewNeuron(6, true, nn.WithRand(rand.New(rand.NewSource(42))))
	b := nn.NewNeuron(6, true, nn.WithRand(rand.New(rand.NewSource(42))))

	assert.Equal(t, a.StateDict(), b.StateDict())
}

func TestNeuron_String(t *testing.T) {
	assert.Equal(t, "ReLUNeuron(3)", nn.NewNeuron(3, true).String())
	assert.Equal(t, "LinearNeuron(2)", nn.NewNeuron(2, false).String())
}

func TestNeuron_StateDict(t *testing.T) {
	n := nn.NewNeuron(2, true)
	sd := n.StateDict()

	assert.Len(t, sd, 3)
	assert.Contains(t, sd, "w.0")
	assert.Contains(t, sd, "w.1")
	assert.Contains(t, sd, "b")
	assert.Equal(t, n.Weights()[1].Data(), sd["w.1"])

	noBias := nn.NewNeuron(2, true, nn.WithoutBias())
	assert.NotContains(t, noBias.StateDict(), "b")
}

func TestNeuron_LoadStateDict_Missing(t *testing.T) {
	n := nn.NewNeuron(2, true)
	before := n.StateDict()

	err := n.LoadStateDict(map[string]float64{"w.0": 9, "w.1": 9})
	require.Error(t, err)
	assert.ErrorIs(t, err, nn.ErrMissingParameter)
	assert.Equal(t, before, n.StateDict(), "failed load writes nothing")
}
