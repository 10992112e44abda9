// Package terrain keeps integer heights on a graph of connected nodes.
//
// Raising or lowering a node drags its neighbours along so that no two
// connected nodes differ by more than one step after the change.
package terrain

import (
	"errors"
	"fmt"
)

// ErrUnknownNode is returned when a height change targets a key that is not in the terrain
var ErrUnknownNode = errors.New("terrain: unknown node")

type node struct {
	height int
	edges  []int
}

// Terrain is a height graph keyed by K. It is not safe for concurrent use.
type Terrain[K comparable] struct {
	step    int
	nodeMap map[K]int
	keys    []K
	nodes   []node
}

// New returns an empty terrain. A step below 1 is treated as 1.
func New[K comparable](step int) *Terrain[K] {
	if step < 1 {
		step = 1
	}
	return &Terrain[K]{
		step:    step,
		nodeMap: make(map[K]int),
	}
}

func (t *Terrain[K]) Step() int {
	return t.step
}

func (t *Terrain[K]) Len() int {
	return len(t.nodes)
}

// AddNode adds a node at height 0. It reports false, leaving the node untouched, if k exists.
func (t *Terrain[K]) AddNode(k K) bool {
	if _, ok := t.nodeMap[k]; ok {
		return false
	}
	t.nodeMap[k] = len(t.nodes)
	t.keys = append(t.keys, k)
	t.nodes = append(t.nodes, node{})
	return true
}

// RemoveNode deletes k and every edge pointing at it. It reports whether k existed.
func (t *Terrain[K]) RemoveNode(k K) bool {
	index, ok := t.nodeMap[k]
	if !ok {
		return false
	}

	last := len(t.nodes) - 1
	for _, e := range t.nodes[index].edges {
		t.nodes[e].edges = removeEdge(t.nodes[e].edges, index)
	}

	// move the last node into the hole and retarget its edges
	if index != last {
		moved := t.nodes[last]
		movedKey := t.keys[last]
		for _, e := range moved.edges {
			for i, target := range t.nodes[e].edges {
				if target == last {
					t.nodes[e].edges[i] = index
				}
			}
		}
		t.nodes[index] = moved
		t.keys[index] = movedKey
		t.nodeMap[movedKey] = index
	}

	t.nodes = t.nodes[:last]
	t.keys = t.keys[:last]
	delete(t.nodeMap, k)
	return true
}

func removeEdge(edges []int, target int) []int {
	out := edges[:0]
	for _, e := range edges {
		if e != target {
			out = append(out, e)
		}
	}
	return out
}

// AddConnectedNodes connects a and b, creating either node if missing. Repeated calls
// do not duplicate the edge.
func (t *Terrain[K]) AddConnectedNodes(a, b K) {
	t.AddNode(a)
	t.AddNode(b)
	if a == b {
		return
	}

	first := t.nodeMap[a]
	second := t.nodeMap[b]
	if containsEdge(t.nodes[first].edges, second) {
		return
	}
	t.nodes[first].edges = append(t.nodes[first].edges, second)
	t.nodes[second].edges = append(t.nodes[second].edges, first)
}

func containsEdge(edges []int, target int) bool {
	for _, e := range edges {
		if e == target {
			return true
		}
	}
	return false
}

// Height returns the height of k in steps
func (t *Terrain[K]) Height(k K) (int, bool) {
	index, ok := t.nodeMap[k]
	if !ok {
		return 0, false
	}
	return t.nodes[index].height, true
}

// Neighbours returns the keys connected to k
func (t *Terrain[K]) Neighbours(k K) []K {
	index, ok := t.nodeMap[k]
	if !ok {
		return nil
	}
	out := make([]K, 0, len(t.nodes[index].edges))
	for _, e := range t.nodes[index].edges {
		out = append(out, t.keys[e])
	}
	return out
}

// IncreaseHeight raises k one step and lifts any neighbour left more than a step below
func (t *Terrain[K]) IncreaseHeight(k K) error {
	index, ok := t.nodeMap[k]
	if !ok {
		return fmt.Errorf("increase height: %w", ErrUnknownNode)
	}
	t.increase(index)
	return nil
}

// DecreaseHeight lowers k one step and drops any neighbour left more than a step above
func (t *Terrain[K]) DecreaseHeight(k K) error {
	index, ok := t.nodeMap[k]
	if !ok {
		return fmt.Errorf("decrease height: %w", ErrUnknownNode)
	}
	t.decrease(index)
	return nil
}

func (t *Terrain[K]) increase(index int) {
	t.nodes[index].height += t.step
	height := t.nodes[index].height
	for _, e := range t.nodes[index].edges {
		for t.nodes[e].height+t.step < height {
			t.increase(e)
		}
	}
}

func (t *Terrain[K]) decrease(index int) {
	t.nodes[index].height -= t.step
	height := t.nodes[index].height
	for _, e := range t.nodes[index].edges {
		for t.nodes[e].height-t.step > height {
			t.decrease(e)
		}
	}
}
