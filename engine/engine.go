// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package engine provides scalar reverse-mode automatic differentiation.
//
// Each arithmetic operation on a Value returns a new Value that records its
// operands. Calling Backward on any Value accumulates d(root)/d(x) into the
// Grad of every node x it was computed from.
//
// Example:
//
//	import "github.com/born-ml/nanograd/engine"
//
//	func main() {
//	    a := engine.New(-4)
//	    b := engine.New(2)
//	    c := a.Add(b)
//	    d := a.Mul(b).Add(b.Pow(3))
//	    e := c.Sub(d).Pow(2)
//
//	    e.Backward()
//	    fmt.Println(a.Grad(), b.Grad())
//	}
//
// Gradients accumulate: zero them (ZeroGrad) before each fresh pass.
package engine

import (
	"github.com/born-ml/nanograd/internal/engine"
)

// Value is a scalar node in the computation graph.
type Value = engine.Value

// Op identifies the operation that produced a Value.
type Op = engine.Op

// Operation kinds.
const (
	OpLeaf = engine.OpLeaf
	OpAdd  = engine.OpAdd
	OpMul  = engine.OpMul
	OpPow  = engine.OpPow
	OpReLU = engine.OpReLU
	OpExp  = engine.OpExp
	OpLog  = engine.OpLog
	OpTanh = engine.OpTanh
)

// Errors returned by the engine.
var (
	ErrInvalidOperand = engine.ErrInvalidOperand
	ErrNotLeaf        = engine.ErrNotLeaf
)

// New creates a leaf Value holding x.
func New(x float64) *Value {
	return engine.New(x)
}

// AsValue promotes a *Value, float64, float32, int or int64 to a Value.
//
// Other types return an error wrapping ErrInvalidOperand.
func AsValue(x any) (*Value, error) {
	return engine.AsValue(x)
}

// Sum adds vs left to right.
func Sum(vs ...*Value) *Value {
	return engine.Sum(vs...)
}

// TopoSort returns the nodes reachable from root, operands before consumers.
func TopoSort(root *Value) []*Value {
	return engine.TopoSort(root)
}
