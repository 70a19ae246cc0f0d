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

// Join merges other and the separator x into t. Every key on one side must be
// lower than x's key and every key on the other side higher; either tree may
// be empty. The returned cost is the height difference of the two trees plus
// one, or the resulting height plus one when a side is empty. other is left
// empty and x becomes part of t.
func (t *Tree[V]) Join(x *Node[V], other *Tree[V]) int {
	if other == nil {
		other = New[V]()
	}
	x.isolate()

	if t.root == nil || other.root == nil {
		if t.root == nil {
			t.root, t.min, t.max = other.root, other.min, other.max
		}
		other.clear()
		t.insertNode(x)
		return t.root.height + 1
	}

	small, big := t, other
	if t.root.key > x.key {
		small, big = other, t
	}
	lo, hi := small.root, big.root
	lowest, highest := small.min, big.max

	cost := 1
	switch {
	case lo.height == hi.height:
		x.left = lo
		x.right = hi
		lo.parent = x
		hi.parent = x
		x.height = lo.height + 1
		x.size = lo.size + hi.size + 1
		t.root = x

	case hi.height > lo.height:
		cost = hi.height - lo.height + 1
		// walk down the left spine of the taller, higher-keyed tree
		var p *Node[V]
		c := hi
		for height(c) > lo.height {
			p = c
			c = c.left
		}
		p.left = x
		x.parent = p
		x.left = lo
		lo.parent = x
		x.right = c
		if c != nil {
			c.parent = x
		}
		updateHeight(x)
		x.size = size(x.left) + size(x.right) + 1

		t.root = hi
		updateSize(p, lo.size+1)
		t.rebalanceInsert(p)

	default:
		cost = lo.height - hi.height + 1
		// walk down the right spine of the taller, lower-keyed tree
		var p *Node[V]
		c := lo
		for height(c) > hi.height {
			p = c
			c = c.right
		}
		p.right = x
		x.parent = p
		x.right = hi
		hi.parent = x
		x.left = c
		if c != nil {
			c.parent = x
		}
		updateHeight(x)
		x.size = size(x.left) + size(x.right) + 1

		t.root = lo
		updateSize(p, hi.size+1)
		t.rebalanceInsert(p)
	}

	t.min = lowest
	t.max = highest
	if other != t {
		other.clear()
	}
	return cost
}
