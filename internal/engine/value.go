// Package engine implements scalar reverse-mode automatic differentiation.
//
// Every arithmetic operation on a Value returns a new Value that remembers
// its operands and the operation that produced it. The resulting DAG is
// walked backwards by Backward to accumulate gradients.
//
// Architecture:
//   - Value: a scalar node holding data, grad and its construction history
//   - Op: closed set of operation kinds, each with one local-gradient rule
//   - TopoSort: post-order over the operand relation, deduplicated
//   - Backward: seeds the root with 1 and applies rules in reverse order
//
// Usage:
//
//	a := engine.New(2)
//	b := engine.New(-3)
//	c := a.Mul(b).Add(a) // c = a*b + a
//	c.Backward()
//	fmt.Println(a.Grad()) // dc/da = b + 1 = -2
//	fmt.Println(b.Grad()) // dc/db = a = 2
//
// Values are shared by pointer: the same node may feed many consumers, and
// its grad receives the sum of every consumer's contribution.
//
// The engine is not safe for concurrent use. Backward passes over graphs that
// share nodes must be serialized by the caller.
package engine

import (
	"fmt"
	"math"
)

// Value is a scalar node in the computation graph.
type Value struct {
	data     float64
	grad     float64
	operands []*Value // [a] or [a, b], empty for leaves
	op       Op
	exponent float64 // only set for OpPow
}

// New creates a leaf Value holding x.
func New(x float64) *Value {
	return &Value{data: x, op: OpLeaf}
}

// newOp builds an operation node. Operands must already be validated.
func newOp(op Op, data float64, operands ...*Value) *Value {
	return &Value{
		data:     data,
		operands: operands,
		op:       op,
	}
}

// AsValue promotes x to a Value.
//
// A non-nil *Value is returned unchanged; float64, float32, int and int64
// become fresh leaves. Anything else returns an error wrapping
// ErrInvalidOperand.
func AsValue(x any) (*Value, error) {
	switch t := x.(type) {
	case *Value:
		if t == nil {
			return nil, fmt.Errorf("%w: nil *Value", ErrInvalidOperand)
		}
		return t, nil
	case float64:
		return New(t), nil
	case float32:
		return New(float64(t)), nil
	case int:
		return New(float64(t)), nil
	case int64:
		return New(float64(t)), nil
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrInvalidOperand, x)
	}
}

// mustOperands panics before any node is built if an operand is nil.
func mustOperands(name string, vs ...*Value) {
	for i, v := range vs {
		if v == nil {
			panic(fmt.Errorf("Value.%s: operand %d is nil: %w", name, i, ErrInvalidOperand))
		}
	}
}

// Data returns the forward value.
func (v *Value) Data() float64 {
	return v.data
}

// SetData overwrites the data of a leaf.
//
// Operation nodes are rejected with ErrNotLeaf: their data is a function of
// their operands and is never recomputed.
func (v *Value) SetData(x float64) error {
	if !v.IsLeaf() {
		return fmt.Errorf("SetData on %v node: %w", v.op, ErrNotLeaf)
	}
	v.data = x
	return nil
}

// Grad returns the accumulated gradient.
func (v *Value) Grad() float64 {
	return v.grad
}

// SetGrad overwrites the accumulated gradient.
func (v *Value) SetGrad(g float64) {
	v.grad = g
}

// ZeroGrad resets the gradient to 0.
func (v *Value) ZeroGrad() {
	v.grad = 0
}

// Op returns the operation that produced v.
func (v *Value) Op() Op {
	return v.op
}

// Exponent returns the constant exponent of an OpPow node, 0 otherwise.
func (v *Value) Exponent() float64 {
	return v.exponent
}

// IsLeaf reports whether v has no operands.
func (v *Value) IsLeaf() bool {
	return v.op == OpLeaf
}

// Operands returns a copy of v's operands in operation order.
func (v *Value) Operands() []*Value {
	out := make([]*Value, len(v.operands))
	copy(out, v.operands)
	return out
}

// String implements fmt.Stringer.
func (v *Value) String() string {
	return fmt.Sprintf("Value(data=%f, grad=%f)", v.data, v.grad)
}

// Add returns v + other.
func (v *Value) Add(other *Value) *Value {
	mustOperands("Add", v, other)
	return newOp(OpAdd, v.data+other.data, v, other)
}

// Mul returns v * other.
func (v *Value) Mul(other *Value) *Value {
	mustOperands("Mul", v, other)
	return newOp(OpMul, v.data*other.data, v, other)
}

// Pow returns v raised to the constant power k.
func (v *Value) Pow(k float64) *Value {
	mustOperands("Pow", v)
	out := newOp(OpPow, math.Pow(v.data, k), v)
	out.exponent = k
	return out
}

// ReLU returns max(0, v).
func (v *Value) ReLU() *Value {
	mustOperands("ReLU", v)
	return newOp(OpReLU, math.Max(0, v.data), v)
}

// Exp returns e^v.
func (v *Value) Exp() *Value {
	mustOperands("Exp", v)
	return newOp(OpExp, math.Exp(v.data), v)
}

// Log returns the natural logarithm of v.
func (v *Value) Log() *Value {
	mustOperands("Log", v)
	return newOp(OpLog, math.Log(v.data), v)
}

// Tanh returns the hyperbolic tangent of v.
func (v *Value) Tanh() *Value {
	mustOperands("Tanh", v)
	return newOp(OpTanh, math.Tanh(v.data), v)
}

// Neg returns -v, computed as v * -1.
func (v *Value) Neg() *Value {
	return v.Mul(New(-1))
}

// Sub returns v - other, computed as v + (-other).
func (v *Value) Sub(other *Value) *Value {
	mustOperands("Sub", v, other)
	return v.Add(other.Neg())
}

// Div returns v / other, computed as v * other^-1.
func (v *Value) Div(other *Value) *Value {
	mustOperands("Div", v, other)
	return v.Mul(other.Pow(-1))
}

// AddScalar returns v + c.
func (v *Value) AddScalar(c float64) *Value {
	return v.Add(New(c))
}

// SubScalar returns v - c.
func (v *Value) SubScalar(c float64) *Value {
	return v.Sub(New(c))
}

// MulScalar returns v * c.
func (v *Value) MulScalar(c float64) *Value {
	return v.Mul(New(c))
}

// DivScalar returns v / c.
func (v *Value) DivScalar(c float64) *Value {
	return v.Div(New(c))
}

// RSub returns c - v.
func (v *Value) RSub(c float64) *Value {
	return New(c).Sub(v)
}

// RDiv returns c / v.
func (v *Value) RDiv(c float64) *Value {
	return New(c).Div(v)
}

// Sum adds vs left to right. An empty call returns a leaf 0.
func Sum(vs ...*Value) *Value {
	if len(vs) == 0 {
		return New(0)
	}
	mustOperands("Sum", vs...)
	out := vs[0]
	for _, x := range vs[1:] {
		out = out.Add(x)
	}
	return out
}
