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

// Insert adds k with value v and returns the number of rebalancing
// operations performed. An already present key yields ErrDuplicateKey and
// leaves the tree untouched.
func (t *Tree[V]) Insert(k int, v V) (int, error) {
	if t.find(k) != nil {
		return 0, ErrDuplicateKey
	}
	return t.insertNode(NewNode(k, v)), nil
}

// insertNode attaches the isolated node x as a leaf and rebalances.
func (t *Tree[V]) insertNode(x *Node[V]) int {
	if t.root == nil {
		t.root = x
		t.min = x
		t.max = x
		return 0
	}

	p := t.position(x.key)
	if x.key < p.key {
		p.left = x
	} else {
		p.right = x
	}
	x.parent = p

	if x.key < t.min.key {
		t.min = x
	} else if x.key > t.max.key {
		t.max = x
	}

	updateSize(p, 1)
	return t.rebalanceInsert(p)
}

// rebalanceInsert walks up from z after one of its subtrees grew by one.
//
//	(0,1) (1,0)            promote                      1, continue
//	(0,2) child (1,2)      single rotation              2
//	(0,2) child (2,1)      double rotation              5
//	(0,2) child (1,1)      single rotation (join only)  1, continue
//
// and the mirror images for (2,0).
func (t *Tree[V]) rebalanceInsert(z *Node[V]) int {
	count := 0
	for z != nil {
		lg, rg := gaps(z)
		switch {
		case lg == 0 && rg == 1, lg == 1 && rg == 0:
			updateHeight(z)
			count++
			z = z.parent

		case lg == 0 && rg == 2:
			y := z.left
			yl, yr := gaps(y)
			switch {
			case yl == 1 && yr == 2:
				t.rotateRight(z, y)
				updateHeight(z)
				return count + 2
			case yl == 2 && yr == 1:
				w := y.right
				t.rotateLeft(y, w)
				t.rotateRight(z, w)
				updateHeight(z)
				updateHeight(y)
				updateHeight(w)
				return count + 5
			case yl == 1 && yr == 1:
				t.rotateRight(z, y)
				updateHeight(z)
				updateHeight(y)
				count++
				z = y.parent
			default:
				return count
			}

		case lg == 2 && rg == 0:
			y := z.right
			yl, yr := gaps(y)
			switch {
			case yl == 2 && yr == 1:
				t.rotateLeft(z, y)
				updateHeight(z)
				return count + 2
			case yl == 1 && yr == 2:
				w := y.left
				t.rotateRight(y, w)
				t.rotateLeft(z, w)
				updateHeight(z)
				updateHeight(y)
				updateHeight(w)
				return count + 5
			case yl == 1 && yr == 1:
				t.rotateLeft(z, y)
				updateHeight(z)
				updateHeight(y)
				count++
				z = y.parent
			default:
				return count
			}

		default:
			return count
		}
	}
	return count
}
