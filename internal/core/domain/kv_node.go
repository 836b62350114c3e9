package domain

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// NodeKind distinguishes the two shapes a key/value node can take.
type NodeKind int

const (
	// KindLeaf is a node holding a single string value.
	KindLeaf NodeKind = iota
	// KindObject is a node holding an ordered set of named children.
	KindObject
)

// String returns a readable name for the kind.
func (k NodeKind) String() string {
	if k == KindObject {
		return "object"
	}
	return "leaf"
}

// Node is one value of a Valve key/value document: either a leaf string or an
// object whose children keep their document order.
//
// Nodes are built once by the parser and treated as read-only afterwards, so
// a finished tree may be traversed from several goroutines.
type Node struct {
	kind     NodeKind
	value    string
	children *orderedmap.OrderedMap[string, *Node]
}

// NewLeaf returns a leaf node holding value.
func NewLeaf(value string) *Node {
	return &Node{kind: KindLeaf, value: value}
}

// NewObject returns an empty object node.
func NewObject() *Node {
	return &Node{
		kind:     KindObject,
		children: orderedmap.New[string, *Node](),
	}
}

// Kind reports whether the node is a leaf or an object.
func (n *Node) Kind() NodeKind {
	return n.kind
}

// IsLeaf reports whether the node holds a string value.
func (n *Node) IsLeaf() bool {
	return n != nil && n.kind == KindLeaf
}

// IsObject reports whether the node holds children.
func (n *Node) IsObject() bool {
	return n != nil && n.kind == KindObject
}

// Value returns the string held by a leaf. Objects return "".
func (n *Node) Value() string {
	if !n.IsLeaf() {
		return ""
	}
	return n.value
}

// Len returns the number of children of an object. Leaves have none.
func (n *Node) Len() int {
	if !n.IsObject() {
		return 0
	}
	return n.children.Len()
}

// Set stores child under key. Re-setting an existing key replaces its value
// but keeps the key at its original position. Set on a leaf is a no-op.
func (n *Node) Set(key string, child *Node) {
	if !n.IsObject() || child == nil {
		return
	}
	n.children.Set(key, child)
}

// Get returns the direct child stored under key.
func (n *Node) Get(key string) (*Node, bool) {
	if !n.IsObject() {
		return nil, false
	}
	return n.children.Get(key)
}

// Lookup walks a path of keys from n and returns the node at its end.
func (n *Node) Lookup(path ...string) (*Node, bool) {
	cur := n
	for _, key := range path {
		next, ok := cur.Get(key)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, cur != nil
}

// Leaf returns the string value of the leaf child stored under key.
// It reports false when the key is missing or holds an object.
func (n *Node) Leaf(key string) (string, bool) {
	child, ok := n.Get(key)
	if !ok || !child.IsLeaf() {
		return "", false
	}
	return child.value, true
}

// Object returns the object child stored under key.
// It reports false when the key is missing or holds a leaf.
func (n *Node) Object(key string) (*Node, bool) {
	child, ok := n.Get(key)
	if !ok || !child.IsObject() {
		return nil, false
	}
	return child, true
}

// Keys returns the keys of an object in document order.
func (n *Node) Keys() []string {
	if !n.IsObject() {
		return nil
	}
	keys := make([]string, 0, n.children.Len())
	for pair := n.children.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Each calls fn for every child of an object in document order until fn
// returns false.
func (n *Node) Each(fn func(key string, child *Node) bool) {
	if !n.IsObject() {
		return
	}
	for pair := n.children.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}

// Equal reports whether two trees hold the same keys, nesting, leaf values
// and key order.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.kind != other.kind {
		return false
	}
	if n.kind == KindLeaf {
		return n.value == other.value
	}
	if n.children.Len() != other.children.Len() {
		return false
	}
	a, b := n.children.Oldest(), other.children.Oldest()
	for a != nil && b != nil {
		if a.Key != b.Key || !a.Value.Equal(b.Value) {
			return false
		}
		a, b = a.Next(), b.Next()
	}
	return true
}
