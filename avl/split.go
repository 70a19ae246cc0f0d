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

// Split partitions t around the present key x and returns the trees of the
// keys lower and higher than x. The node holding x is dropped and t is left
// empty. An absent key yields ErrNotFound and leaves t untouched.
func (t *Tree[V]) Split(x int) (*Tree[V], *Tree[V], error) {
	curr := t.find(x)
	if curr == nil {
		return nil, nil, ErrNotFound
	}

	small := subtree(curr.left)
	big := subtree(curr.right)
	p := curr.parent
	curr.isolate()

	for p != nil {
		next := p.parent
		if p.right == curr {
			rest := subtree(p.left)
			p.isolate()
			small.Join(p, rest)
		} else {
			rest := subtree(p.right)
			p.isolate()
			big.Join(p, rest)
		}
		curr = p
		p = next
	}

	t.clear()
	return small, big, nil
}
