package generator

import "github.com/emirpasic/gods/trees/redblacktree"

// vkey orders vertices by (degree, index). The greedy construction always
// wants the lowest-degree, lowest-index vertex first.
type vkey struct {
	degree int
	index  int
}

// degreeQueue tracks the current degree of every vertex and yields them
// in ascending (degree, index) order. Degrees change while the greedy
// pass runs, so iteration re-reads the tree rather than caching an order
// beyond a single pass.
type degreeQueue struct {
	tree    *redblacktree.Tree
	degrees []int
}

func newDegreeQueue(n int) *degreeQueue {
	q := &degreeQueue{
		tree: redblacktree.NewWith(func(x, y interface{}) int {
			a, b := x.(vkey), y.(vkey)
			if a.degree != b.degree {
				return a.degree - b.degree
			}
			return a.index - b.index
		}),
		degrees: make([]int, n),
	}
	for i := 0; i < n; i++ {
		q.tree.Put(vkey{0, i}, struct{}{})
	}
	return q
}

// degree returns the current degree of vertex v.
func (q *degreeQueue) degree(v int) int { return q.degrees[v] }

// inOrder returns all vertex indices sorted by current (degree, index).
// The slice reflects degrees at the moment of the call.
func (q *degreeQueue) inOrder() []int {
	out := make([]int, 0, len(q.degrees))
	it := q.tree.Iterator()
	for it.Next() {
		out = append(out, it.Key().(vkey).index)
	}
	return out
}

// increment bumps v's degree and repositions it in the order.
func (q *degreeQueue) increment(v int) {
	q.tree.Remove(vkey{q.degrees[v], v})
	q.degrees[v]++
	q.tree.Put(vkey{q.degrees[v], v}, struct{}{})
}
