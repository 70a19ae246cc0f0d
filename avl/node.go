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

// Node is a vertex of the tree. A nil *Node stands for the absent child: its
// height is -1 and its size is 0, which keeps the balance formulas uniform.
type Node[V any] struct {
	key    int
	value  V
	height int
	size   int // real nodes in this subtree, including this one
	left   *Node[V]
	right  *Node[V]
	parent *Node[V] // adjacency only, never ownership
}

// NewNode creates an isolated node, e.g. the separator passed to Join.
func NewNode[V any](key int, value V) *Node[V] {
	return &Node[V]{
		key:    key,
		value:  value,
		height: 0,
		size:   1,
	}
}

// Key returns the node's key, or -1 for the absent node.
func (n *Node[V]) Key() int {
	if n == nil {
		return -1
	}
	return n.key
}

// Value returns the node's value, or the zero value for the absent node.
func (n *Node[V]) Value() V {
	if n == nil {
		var zero V
		return zero
	}
	return n.value
}

func (n *Node[V]) Height() int { return height(n) }
func (n *Node[V]) Size() int   { return size(n) }

func (n *Node[V]) Left() *Node[V] {
	if n == nil {
		return nil
	}
	return n.left
}

func (n *Node[V]) Right() *Node[V] {
	if n == nil {
		return nil
	}
	return n.right
}

// Parent returns nil for the root and for detached nodes.
func (n *Node[V]) Parent() *Node[V] {
	if n == nil {
		return nil
	}
	return n.parent
}

// IsReal reports whether n is a real node rather than the absent child.
func (n *Node[V]) IsReal() bool {
	return n != nil
}

func height[V any](n *Node[V]) int {
	if n == nil {
		return -1
	}
	return n.height
}

func size[V any](n *Node[V]) int {
	if n == nil {
		return 0
	}
	return n.size
}

// gaps returns the rank differences between n and each of its children.
func gaps[V any](n *Node[V]) (int, int) {
	return n.height - height(n.left), n.height - height(n.right)
}

// isolate turns n into a single-node tree.
func (n *Node[V]) isolate() {
	n.left = nil
	n.right = nil
	n.parent = nil
	n.height = 0
	n.size = 1
}

// first returns the lowest node of the subtree rooted at n.
func (n *Node[V]) first() *Node[V] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// last returns the highest node of the subtree rooted at n.
func (n *Node[V]) last() *Node[V] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// Next returns the in-order successor of n, or nil if n holds the highest key.
func (n *Node[V]) Next() *Node[V] {
	if n.right != nil {
		return n.right.first()
	}
	p := n.parent
	for p != nil && n == p.right {
		n = p
		p = n.parent
	}
	return p
}

// Prev returns the in-order predecessor of n, or nil if n holds the lowest key.
func (n *Node[V]) Prev() *Node[V] {
	if n.left != nil {
		return n.left.last()
	}
	p := n.parent
	for p != nil && n == p.left {
		n = p
		p = n.parent
	}
	return p
}
