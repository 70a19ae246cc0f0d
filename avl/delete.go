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

// Delete removes k and returns the number of rebalancing operations
// performed. A missing key yields ErrNotFound and leaves the tree untouched.
func (t *Tree[V]) Delete(k int) (int, error) {
	if t.root == nil {
		return 0, ErrNotFound
	}
	x := t.find(k)
	if x == nil {
		return 0, ErrNotFound
	}
	if x == t.root && x.size == 1 {
		t.clear()
		return 0, nil
	}

	if x == t.min {
		t.min = x.Next()
	}
	if x == t.max {
		t.max = x.Prev()
	}

	z := t.unlink(x)
	updateSize(z, -1)
	return t.rebalanceDelete(z), nil
}

// unlink detaches x and returns the lowest node whose subtree lost a node,
// nil when x was the root and its only child took its place. When x has two
// children its successor moves into x's slot carrying x's height and size,
// so the size walk from the returned node accounts for the removal.
func (t *Tree[V]) unlink(x *Node[V]) *Node[V] {
	p := x.parent
	switch {
	case x.left == nil:
		t.replace(x, x.right)
		x.isolate()
		return p
	case x.right == nil:
		t.replace(x, x.left)
		x.isolate()
		return p
	}

	s := x.right.first()
	start := s
	if s != x.right {
		start = s.parent
		t.replace(s, s.right)
		s.right = x.right
		s.right.parent = s
	}
	s.left = x.left
	s.left.parent = s
	t.replace(x, s)
	s.height = x.height
	s.size = x.size

	x.isolate()
	return start
}

// rebalanceDelete walks up from z after one of its subtrees shrank by one.
//
//	(2,1) (1,2)            balanced                     reports 0
//	(2,2)                  demote                       1, continue
//	(3,1) child (1,1)      single rotation              3
//	(3,1) child (2,1)      single rotation + demotion   3, continue
//	(3,1) child (1,2)      double rotation              6, continue
//
// and the mirror images for (1,3).
func (t *Tree[V]) rebalanceDelete(z *Node[V]) int {
	count := 0
	for z != nil {
		lg, rg := gaps(z)
		switch {
		case lg == 2 && rg == 1, lg == 1 && rg == 2:
			// a walk ending here reports 0, discarding the count so far
			return 0

		case lg == 2 && rg == 2:
			updateHeight(z)
			count++
			z = z.parent

		case lg == 3 && rg == 1:
			y := z.right
			yl, yr := gaps(y)
			switch {
			case yl == 1 && yr == 1:
				t.rotateLeft(z, y)
				updateHeight(z)
				updateHeight(y)
				return count + 3
			case yl == 2 && yr == 1:
				t.rotateLeft(z, y)
				updateHeight(z)
				updateHeight(y)
				count += 3
				z = y.parent
			case yl == 1 && yr == 2:
				w := y.left
				t.rotateRight(y, w)
				t.rotateLeft(z, w)
				updateHeight(z)
				updateHeight(y)
				updateHeight(w)
				count += 6
				z = w.parent
			default:
				return count
			}

		case lg == 1 && rg == 3:
			y := z.left
			yl, yr := gaps(y)
			switch {
			case yl == 1 && yr == 1:
				t.rotateRight(z, y)
				updateHeight(z)
				updateHeight(y)
				return count + 3
			case yl == 1 && yr == 2:
				t.rotateRight(z, y)
				updateHeight(z)
				updateHeight(y)
				count += 3
				z = y.parent
			case yl == 2 && yr == 1:
				w := y.right
				t.rotateLeft(y, w)
				t.rotateRight(z, w)
				updateHeight(z)
				updateHeight(y)
				updateHeight(w)
				count += 6
				z = w.parent
			default:
				return count
			}

		default:
			return count
		}
	}
	return count
}
