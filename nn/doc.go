// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks on scalar Values.
//
// # Overview
//
// This package contains:
//   - Module interface: Call and Parameters
//   - Neuron: relu(Σ wᵢ·xᵢ + b), or linear
//   - Layer: neurons sharing one input vector
//   - MLP: layers chained; ReLU on every layer but the last
//   - Initialization: Uniform, Xavier, Constant
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/nanograd/engine"
//	    "github.com/born-ml/nanograd/nn"
//	)
//
//	func main() {
//	    model := nn.NewMLP(2, []int{16, 16, 1})
//
//	    x := []*engine.Value{engine.New(0.5), engine.New(-1)}
//	    out, err := model.Call(x)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    loss := out[0].SubScalar(1).Pow(2)
//	    nn.ZeroGrad(model)
//	    loss.Backward()
//
//	    for _, p := range model.Parameters() {
//	        _ = p.SetData(p.Data() - 0.01*p.Grad())
//	    }
//	}
//
// # Errors
//
// Call returns an error wrapping ErrInvalidInput when the number of inputs
// does not match the module. Constructors panic on non-positive sizes.
//
// Optimizers, losses and data loading are left to callers.
package nn
