// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/nanograd/internal/nn"
)

// Module is the common interface of Neuron, Layer and MLP.
type Module = nn.Module

// ZeroGrad resets the gradient of every parameter of m.
func ZeroGrad(m Module) {
	nn.ZeroGrad(m)
}

// NumParameters returns the number of parameters of m.
func NumParameters(m Module) int {
	return nn.NumParameters(m)
}

// Errors returned by modules.
var (
	ErrInvalidInput     = nn.ErrInvalidInput
	ErrMissingParameter = nn.ErrMissingParameter
)

// Modules

// Neuron is a single affine unit with optional ReLU.
type Neuron = nn.Neuron

// NewNeuron creates a neuron with nin inputs.
//
// Example:
//
//	n := nn.NewNeuron(5, true)
//	out, err := n.Activate(inputs)
func NewNeuron(nin int, nonlinear bool, opts ...Option) *Neuron {
	return nn.NewNeuron(nin, nonlinear, opts...)
}

// Layer is a set of neurons applied to the same input.
type Layer = nn.Layer

// NewLayer creates a layer of nout neurons with nin inputs each.
//
// Example:
//
//	layer := nn.NewLayer(3, 4, true)
func NewLayer(nin, nout int, nonlinear bool, opts ...Option) *Layer {
	return nn.NewLayer(nin, nout, nonlinear, opts...)
}

// MLP is a multi-layer perceptron. Every layer but the last applies ReLU.
type MLP = nn.MLP

// NewMLP creates an MLP with nin inputs and one layer per entry of nouts.
//
// Example:
//
//	mlp := nn.NewMLP(3, []int{4, 4, 1})
func NewMLP(nin int, nouts []int, opts ...Option) *MLP {
	return nn.NewMLP(nin, nouts, opts...)
}

// Initialization

// Initializer draws the initial value of one parameter.
type Initializer = nn.Initializer

// Option configures parameter creation.
type Option = nn.Option

// Uniform draws from U(lo, hi).
func Uniform(lo, hi float64) Initializer {
	return nn.Uniform(lo, hi)
}

// Xavier draws from the Glorot uniform distribution.
func Xavier(fanIn, fanOut int) Initializer {
	return nn.Xavier(fanIn, fanOut)
}

// Constant always returns c.
func Constant(c float64) Initializer {
	return nn.Constant(c)
}

// WithoutBias drops the bias parameter.
func WithoutBias() Option {
	return nn.WithoutBias()
}

// WithWeightInit sets the weight initializer.
func WithWeightInit(init Initializer) Option {
	return nn.WithWeightInit(init)
}

// WithBiasInit sets the bias initializer.
func WithBiasInit(init Initializer) Option {
	return nn.WithBiasInit(init)
}

// WithRand sets the random source used for initialization.
func WithRand(rng *rand.Rand) Option {
	return nn.WithRand(rng)
}
