package nn

import (
	"math"
	"math/rand"
)

// Initializer draws the initial value of one parameter.
type Initializer func(rng *rand.Rand) float64

// Uniform draws values from U(lo, hi).
//
// Neurons use Uniform(-1, 1) for their weights by default.
func Uniform(lo, hi float64) Initializer {
	return func(rng *rand.Rand) float64 {
		return lo + rng.Float64()*(hi-lo)
	}
}

// Xavier (Glorot) initialization.
//
// Draws from U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out))),
// which keeps the variance of activations roughly constant across layers.
func Xavier(fanIn, fanOut int) Initializer {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	return Uniform(-bound, bound)
}

// Constant always returns c. Biases default to Constant(0).
func Constant(c float64) Initializer {
	return func(*rand.Rand) float64 {
		return c
	}
}

// Option configures how a Neuron, Layer or MLP creates its parameters.
type Option func(*config)

type config struct {
	bias       bool
	weightInit Initializer
	biasInit   Initializer
	rng        *rand.Rand
}

func newConfig(opts []Option) *config {
	c := &config{
		bias:       true,
		weightInit: Uniform(-1, 1),
		biasInit:   Constant(0),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		//nolint:gosec // weight initialization is not security-critical
		c.rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return c
}

// WithoutBias drops the bias parameter from every neuron.
func WithoutBias() Option {
	return func(c *config) {
		c.bias = false
	}
}

// WithWeightInit sets the initializer used for weights.
func WithWeightInit(init Initializer) Option {
	return func(c *config) {
		c.weightInit = init
	}
}

// WithBiasInit sets the initializer used for biases.
func WithBiasInit(init Initializer) Option {
	return func(c *config) {
		c.biasInit = init
	}
}

// WithRand sets the random source, making initialization reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		c.rng = rng
	}
}
