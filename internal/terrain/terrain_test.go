package terrain

import (
	"errors"
	"testing"
)

type key struct{ x, y int }

func heightOf(t *testing.T, tr *Terrain[key], k key) int {
	t.Helper()
	h, ok := tr.Height(k)
	if !ok {
		t.Fatalf("node %v missing", k)
	}
	return h
}

func TestAddNodeAddsNewNode(t *testing.T) {
	tr := New[key](1)

	if !tr.AddNode(key{0, 0}) {
		t.Fatal("AddNode should report true for a new node")
	}
	if tr.Len() != 1 {
		t.Errorf("Expected 1 node, got %d", tr.Len())
	}
	if h := heightOf(t, tr, key{0, 0}); h != 0 {
		t.Errorf("New node should start at height 0, got %d", h)
	}
}

func TestAddNodeDoesNotOverwrite(t *testing.T) {
	tr := New[key](1)
	tr.AddConnectedNodes(key{0, 0}, key{1, 0})
	_ = tr.IncreaseHeight(key{0, 0})

	if tr.AddNode(key{0, 0}) {
		t.Error("AddNode should report false for an existing node")
	}
	if h := heightOf(t, tr, key{0, 0}); h != 1 {
		t.Errorf("Existing node height changed to %d", h)
	}
	if n := tr.Neighbours(key{0, 0}); len(n) != 1 {
		t.Errorf("Existing node edges changed: %v", n)
	}
}

func TestRemoveNode(t *testing.T) {
	tr := New[key](1)
	tr.AddConnectedNodes(key{0, 0}, key{1, 0})
	tr.AddConnectedNodes(key{1, 0}, key{2, 0})

	if !tr.RemoveNode(key{0, 0}) {
		t.Fatal("RemoveNode should report true for an existing node")
	}
	if _, ok := tr.Height(key{0, 0}); ok {
		t.Error("Removed node should be gone")
	}
	if tr.Len() != 2 {
		t.Errorf("Expected 2 nodes, got %d", tr.Len())
	}

	n := tr.Neighbours(key{1, 0})
	if len(n) != 1 || n[0] != (key{2, 0}) {
		t.Errorf("Expected neighbours of (1,0) to be [(2,0)], got %v", n)
	}
	n = tr.Neighbours(key{2, 0})
	if len(n) != 1 || n[0] != (key{1, 0}) {
		t.Errorf("Expected neighbours of (2,0) to be [(1,0)], got %v", n)
	}
}

func TestRemoveNodeMissing(t *testing.T) {
	tr := New[key](1)

	if tr.RemoveNode(key{0, 0}) {
		t.Error("RemoveNode should report false for a missing node")
	}
}

func TestAddConnectedNodesCreatesMissing(t *testing.T) {
	tr := New[key](1)

	tr.AddConnectedNodes(key{1, 0}, key{1, 1})
	tr.AddConnectedNodes(key{1, 0}, key{1, 1})

	if tr.Len() != 2 {
		t.Fatalf("Expected 2 nodes, got %d", tr.Len())
	}
	if n := tr.Neighbours(key{1, 0}); len(n) != 1 || n[0] != (key{1, 1}) {
		t.Errorf("Expected single edge to (1,1), got %v", n)
	}
	if n := tr.Neighbours(key{1, 1}); len(n) != 1 || n[0] != (key{1, 0}) {
		t.Errorf("Expected single edge to (1,0), got %v", n)
	}
}

func TestIncreaseHeightByStep(t *testing.T) {
	tr := New[key](2)
	tr.AddNode(key{1, 0})

	_ = tr.IncreaseHeight(key{1, 0})
	if h := heightOf(t, tr, key{1, 0}); h != 2 {
		t.Errorf("Expected height 2, got %d", h)
	}
	_ = tr.IncreaseHeight(key{1, 0})
	if h := heightOf(t, tr, key{1, 0}); h != 4 {
		t.Errorf("Expected height 4, got %d", h)
	}
}

// root is connected to a and b; a is connected to a1 (already at 2), b to b1.
func chain(t *testing.T) *Terrain[key] {
	t.Helper()
	tr := New[key](1)
	root, a, a1, b, b1 := key{0, 0}, key{1, 0}, key{1, 1}, key{2, 0}, key{2, 1}
	tr.AddConnectedNodes(root, a)
	tr.AddConnectedNodes(a, a1)
	tr.AddConnectedNodes(root, b)
	tr.AddConnectedNodes(b, b1)
	return tr
}

func TestIncreaseHeightLiftsConnectedNodes(t *testing.T) {
	tr := chain(t)
	_ = tr.IncreaseHeight(key{1, 1})
	_ = tr.IncreaseHeight(key{1, 1})
	// a1 at 2 pulls a to 1
	if h := heightOf(t, tr, key{1, 0}); h != 1 {
		t.Fatalf("Setup: expected a at 1, got %d", h)
	}

	for i := 0; i < 3; i++ {
		_ = tr.IncreaseHeight(key{0, 0})
	}

	want := map[key]int{
		{0, 0}: 3,
		{1, 0}: 2,
		{1, 1}: 2,
		{2, 0}: 2,
		{2, 1}: 1,
	}
	for k, h := range want {
		if got := heightOf(t, tr, k); got != h {
			t.Errorf("Node %v: expected height %d, got %d", k, h, got)
		}
	}
}

func TestDecreaseHeightDropsConnectedNodes(t *testing.T) {
	tr := chain(t)

	for i := 0; i < 3; i++ {
		_ = tr.DecreaseHeight(key{0, 0})
	}

	want := map[key]int{
		{0, 0}: -3,
		{1, 0}: -2,
		{1, 1}: -1,
		{2, 0}: -2,
		{2, 1}: -1,
	}
	for k, h := range want {
		if got := heightOf(t, tr, k); got != h {
			t.Errorf("Node %v: expected height %d, got %d", k, h, got)
		}
	}
}

func TestIncreaseThenDecreaseRestoresNode(t *testing.T) {
	tr := chain(t)

	_ = tr.IncreaseHeight(key{0, 0})
	_ = tr.DecreaseHeight(key{0, 0})

	if h := heightOf(t, tr, key{0, 0}); h != 0 {
		t.Errorf("Expected height 0, got %d", h)
	}
}

func TestHeightChangeUnknownNode(t *testing.T) {
	tr := New[key](1)

	if err := tr.IncreaseHeight(key{9, 9}); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("Expected ErrUnknownNode, got %v", err)
	}
	if err := tr.DecreaseHeight(key{9, 9}); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("Expected ErrUnknownNode, got %v", err)
	}
}

func TestNewClampsStep(t *testing.T) {
	if s := New[key](0).Step(); s != 1 {
		t.Errorf("Expected step 1, got %d", s)
	}
}
