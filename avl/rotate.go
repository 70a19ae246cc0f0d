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

// replace hangs n where old used to hang: under old's parent, or at the root.
func (t *Tree[V]) replace(old, n *Node[V]) {
	p := old.parent
	switch {
	case p == nil:
		t.root = n
	case p.left == old:
		p.left = n
	default:
		p.right = n
	}
	if n != nil {
		n.parent = p
	}
}

// rotateRight lifts pivot, the left child of node, into node's place.
// Sizes are fixed here; heights are left to the caller.
func (t *Tree[V]) rotateRight(node, pivot *Node[V]) {
	t.replace(node, pivot)

	node.left = pivot.right
	if pivot.right != nil {
		pivot.right.parent = node
	}
	pivot.right = node
	node.parent = pivot

	node.size = size(node.left) + size(node.right) + 1
	pivot.size = size(pivot.left) + size(pivot.right) + 1
}

// rotateLeft lifts pivot, the right child of node, into node's place.
// Sizes are fixed here; heights are left to the caller.
func (t *Tree[V]) rotateLeft(node, pivot *Node[V]) {
	t.replace(node, pivot)

	node.right = pivot.left
	if pivot.left != nil {
		pivot.left.parent = node
	}
	pivot.left = node
	node.parent = pivot

	node.size = size(node.left) + size(node.right) + 1
	pivot.size = size(pivot.left) + size(pivot.right) + 1
}

func updateHeight[V any](n *Node[V]) {
	n.height = max(height(n.left), height(n.right)) + 1
}

// updateSize adds delta to the size of n and of every ancestor of n.
func updateSize[V any](n *Node[V], delta int) {
	for ; n != nil; n = n.parent {
		n.size += delta
	}
}
