package engine

import "fmt"

// TopoSort returns every node reachable from root through operands, in
// post-order: each node appears after all of its operands, and root is last.
//
// Nodes reachable along several paths are listed once.
func TopoSort(root *Value) []*Value {
	if root == nil {
		return nil
	}

	topo := make([]*Value, 0, 64)
	visited := make(map[*Value]struct{})

	// Explicit stack instead of recursion: long chains (e.g. a running sum
	// over many inputs) would otherwise nest one call per node.
	type frame struct {
		node *Value
		next int // index of the next operand to visit
	}
	stack := []frame{{node: root}}
	visited[root] = struct{}{}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.node.operands) {
			child := top.node.operands[top.next]
			top.next++
			if _, seen := visited[child]; !seen {
				visited[child] = struct{}{}
				stack = append(stack, frame{node: child})
			}
			continue
		}
		topo = append(topo, top.node)
		stack = stack[:len(stack)-1]
	}

	return topo
}

// Backward computes d(v)/d(x) for every node x reachable from v and adds it
// to x's grad.
//
// Algorithm:
//  1. Set v's grad to 1
//  2. Topologically sort the graph below v
//  3. Walk the order in reverse, applying each node's local rule
//
// Grads are accumulated, never overwritten, so a node used by several
// consumers receives the sum of their contributions. Calling Backward again
// without zeroing adds to the existing grads.
func (v *Value) Backward() {
	v.backward(nil)
}

// backward runs the pass and calls visit on each node just before its rule
// is applied.
func (v *Value) backward(visit func(*Value)) {
	topo := TopoSort(v)

	v.grad = 1

	for i := len(topo) - 1; i >= 0; i-- {
		node := topo[i]
		if len(node.operands) != node.op.arity() {
			panic(fmt.Sprintf("backward: %v node has %d operands, want %d",
				node.op, len(node.operands), node.op.arity()))
		}
		if visit != nil {
			visit(node)
		}
		node.propagate()
	}
}
