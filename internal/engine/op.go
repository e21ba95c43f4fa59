package engine

import (
	"fmt"
	"math"
)

// Op identifies the primitive operation that produced a Value.
//
// Each Op selects one local-gradient rule during the backward pass:
//   - OpLeaf: no operands, no rule
//   - OpAdd: d(a+b)/da = 1, d(a+b)/db = 1
//   - OpMul: d(a*b)/da = b, d(a*b)/db = a
//   - OpPow: d(a^k)/da = k * a^(k-1), k is a constant
//   - OpReLU: d(ReLU(a))/da = 1 if a > 0, else 0
//   - OpExp: d(exp(a))/da = exp(a)
//   - OpLog: d(log(a))/da = 1/a
//   - OpTanh: d(tanh(a))/da = 1 - tanh²(a)
//
// Subtraction, division and negation are compositions of these.
type Op uint8

// Operation kinds.
const (
	OpLeaf Op = iota
	OpAdd
	OpMul
	OpPow
	OpReLU
	OpExp
	OpLog
	OpTanh
)

var opNames = [...]string{
	OpLeaf: "leaf",
	OpAdd:  "+",
	OpMul:  "*",
	OpPow:  "**",
	OpReLU: "ReLU",
	OpExp:  "exp",
	OpLog:  "log",
	OpTanh: "tanh",
}

// String returns the symbol used for the operation.
func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", uint8(op))
}

// arity returns the number of operands the operation takes.
func (op Op) arity() int {
	switch op {
	case OpLeaf:
		return 0
	case OpAdd, OpMul:
		return 2
	default:
		return 1
	}
}

// propagate pushes v.grad onto the grads of v's operands using the
// local derivative of v.op. Only operand grads are written.
func (v *Value) propagate() {
	out := v.grad

	switch v.op {
	case OpLeaf:
		// nothing to do

	case OpAdd:
		a, b := v.operands[0], v.operands[1]
		a.grad += out
		b.grad += out

	case OpMul:
		a, b := v.operands[0], v.operands[1]
		a.grad += b.data * out
		b.grad += a.data * out

	case OpPow:
		a := v.operands[0]
		a.grad += v.exponent * math.Pow(a.data, v.exponent-1) * out

	case OpReLU:
		a := v.operands[0]
		if a.data > 0 {
			a.grad += out
		}

	case OpExp:
		// exp(a) is already stored in v.data
		v.operands[0].grad += v.data * out

	case OpLog:
		a := v.operands[0]
		a.grad += out / a.data

	case OpTanh:
		v.operands[0].grad += (1 - v.data*v.data) * out

	default:
		panic(fmt.Sprintf("engine: no backward rule for %v", v.op))
	}
}
