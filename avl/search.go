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

// Search returns the value associated with k.
func (t *Tree[V]) Search(k int) (V, bool) {
	n := t.find(k)
	if n == nil {
		var zero V
		return zero, false
	}
	return n.value, true
}

// Contains reports whether k is present.
func (t *Tree[V]) Contains(k int) bool {
	return t.find(k) != nil
}

// find returns the node holding k, or nil.
func (t *Tree[V]) find(k int) *Node[V] {
	n := t.root
	for n != nil {
		switch {
		case k < n.key:
			n = n.left
		case k > n.key:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// position returns the node under which k would be attached as a leaf.
// The tree must not be empty and must not contain k.
func (t *Tree[V]) position(k int) *Node[V] {
	var p *Node[V]
	n := t.root
	for n != nil {
		p = n
		if k < n.key {
			n = n.left
		} else {
			n = n.right
		}
	}
	return p
}

// Select returns the node of 0-based rank i in key order.
func (t *Tree[V]) Select(i int) (*Node[V], bool) {
	if i < 0 || i >= t.Size() {
		return nil, false
	}
	n := t.root
	for n != nil {
		l := size(n.left)
		switch {
		case i < l:
			n = n.left
		case i > l:
			i -= l + 1
			n = n.right
		default:
			return n, true
		}
	}
	return nil, false
}

// Rank returns the number of keys lower than k, provided k is present.
func (t *Tree[V]) Rank(k int) (int, bool) {
	rank := 0
	n := t.root
	for n != nil {
		switch {
		case k < n.key:
			n = n.left
		case k > n.key:
			rank += size(n.left) + 1
			n = n.right
		default:
			return rank + size(n.left), true
		}
	}
	return 0, false
}
