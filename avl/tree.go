// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package avl

import "errors"

var (
	ErrDuplicateKey = errors.New("avl: duplicate key")
	ErrNotFound     = errors.New("avl: key not found")
	ErrCorrupt      = errors.New("avl: invariant violated")
)

// Tree holds the root of an AVL tree together with its extreme nodes.
// The zero value is an empty tree ready to use.
type Tree[V any] struct {
	root *Node[V]
	min  *Node[V] // lowest key, nil iff the tree is empty
	max  *Node[V] // highest key, nil iff the tree is empty
}

// New creates an empty tree.
func New[V any]() *Tree[V] {
	return &Tree[V]{}
}

// subtree adopts n and everything below it as a tree of its own.
func subtree[V any](n *Node[V]) *Tree[V] {
	t := &Tree[V]{root: n}
	if n != nil {
		n.parent = nil
		t.min = n.first()
		t.max = n.last()
	}
	return t
}

func (t *Tree[V]) clear() {
	t.root = nil
	t.min = nil
	t.max = nil
}

// Empty reports whether the tree holds no nodes.
func (t *Tree[V]) Empty() bool {
	return t.root == nil
}

// Size returns the number of nodes in the tree.
func (t *Tree[V]) Size() int {
	return size(t.root)
}

// Height returns the height of the root, -1 for an empty tree.
func (t *Tree[V]) Height() int {
	return height(t.root)
}

// Root returns the root node, or nil if the tree is empty.
func (t *Tree[V]) Root() *Node[V] {
	return t.root
}

// Min returns the value stored under the lowest key.
func (t *Tree[V]) Min() (V, bool) {
	if t.min == nil {
		var zero V
		return zero, false
	}
	return t.min.value, true
}

// Max returns the value stored under the highest key.
func (t *Tree[V]) Max() (V, bool) {
	if t.max == nil {
		var zero V
		return zero, false
	}
	return t.max.value, true
}

// First returns the node with the lowest key, or nil.
func (t *Tree[V]) First() *Node[V] {
	return t.min
}

// Last returns the node with the highest key, or nil.
func (t *Tree[V]) Last() *Node[V] {
	return t.max
}
