// SPDX-License-Identifier: MIT

package modcomb

import "errors"

// ErrOptionViolation is returned by Walk when a WalkOption received a
// meaningless value (e.g. a negative depth).
var ErrOptionViolation = errors.New("modcomb: invalid walk option")

// WalkOption configures Walk.
type WalkOption func(*walkOptions)

type walkOptions struct {
	maxDepth int
	onVisit  func(index, depth int) error
	err      error
}

// WithMaxDepth stops expanding combinations more than d transitions away
// from the start. 0 disables the limit; negative values are recorded and
// surfaced as ErrOptionViolation by Walk.
func WithMaxDepth(d int) WalkOption {
	return func(o *walkOptions) {
		if d < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.maxDepth = d
	}
}

// WithOnVisit calls fn for every combination in visiting order. A non-nil
// error aborts the walk and is returned as is.
func WithOnVisit(fn func(index, depth int) error) WalkOption {
	return func(o *walkOptions) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// WalkResult holds the breadth-first traversal from one combination.
//
// Depth, Parent and Via are indexed by combination index; unreached
// combinations have Depth -1. Via[i] is the type id added on the edge
// Parent[i]→i; both are -1 for the start and for unreached combinations.
type WalkResult struct {
	Start  int
	Order  []int
	Depth  []int
	Parent []int
	Via    []int
}

// Path returns the type ids that lead from Start to index along the BFS
// tree, or ok=false if index was not reached.
func (r *WalkResult) Path(index int) (typeIDs []int, ok bool) {
	if index < 0 || index >= len(r.Depth) || r.Depth[index] < 0 {
		return nil, false
	}
	typeIDs = make([]int, r.Depth[index])
	for i := len(typeIDs) - 1; i >= 0; i-- {
		typeIDs[i] = r.Via[index]
		index = r.Parent[index]
	}

	return typeIDs, true
}

// Walk explores the transition table breadth-first from start. Because
// every transition adds one modification, the depth of a combination is
// its size minus the size of start, and Walk(EmptyIndex) reaches every
// catalogued combination.
//
// Complexity: O(Len() · M) time, O(Len()) memory.
func (c *Catalogue[T]) Walk(start int, opts ...WalkOption) (*WalkResult, error) {
	o := walkOptions{onVisit: func(int, int) error { return nil }}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := c.checkIndex(MethodWalk, start); err != nil {
		return nil, err
	}

	n := len(c.combinations)
	m := len(c.mods)
	res := &WalkResult{
		Start:  start,
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
		Via:    make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i], res.Parent[i], res.Via[i] = -1, -1, -1
	}

	res.Depth[start] = 0
	queue := []int{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, cur)
		if err := o.onVisit(cur, res.Depth[cur]); err != nil {
			return res, err
		}
		if o.maxDepth > 0 && res.Depth[cur] >= o.maxDepth {
			continue
		}
		for t := 0; t < m; t++ {
			next := c.transitions[cur*m+t]
			if next == noTransition {
				break // full: the whole row is empty
			}
			if res.Depth[next] >= 0 {
				continue
			}
			res.Depth[next] = res.Depth[cur] + 1
			res.Parent[next] = cur
			res.Via[next] = t
			queue = append(queue, int(next))
		}
	}

	return res, nil
}
