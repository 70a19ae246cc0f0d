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

import (
	"fmt"
	"math"
)

// Check verifies the structural invariants of the tree: key order, heights,
// balance, sizes, parent links and the cached extremes. The error wraps
// ErrCorrupt and names the first offending key.
func (t *Tree[V]) Check() error {
	if t.root == nil {
		if t.min != nil || t.max != nil {
			return fmt.Errorf("%w: empty tree with cached min/max", ErrCorrupt)
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root %d has a parent", ErrCorrupt, t.root.key)
	}
	if _, _, err := check(t.root, math.MinInt, math.MaxInt); err != nil {
		return err
	}
	if t.min != t.root.first() {
		return fmt.Errorf("%w: cached min is %d, want %d", ErrCorrupt, t.min.Key(), t.root.first().key)
	}
	if t.max != t.root.last() {
		return fmt.Errorf("%w: cached max is %d, want %d", ErrCorrupt, t.max.Key(), t.root.last().key)
	}
	return nil
}

// check validates the subtree at n whose keys must lie strictly within
// (low, high), returning its computed height and size.
func check[V any](n *Node[V], low, high int) (int, int, error) {
	if n == nil {
		return -1, 0, nil
	}
	if n.key <= low || n.key >= high {
		return 0, 0, fmt.Errorf("%w: key %d outside (%d, %d)", ErrCorrupt, n.key, low, high)
	}
	for _, c := range []*Node[V]{n.left, n.right} {
		if c != nil && c.parent != n {
			return 0, 0, fmt.Errorf("%w: child %d of %d has a stale parent link", ErrCorrupt, c.key, n.key)
		}
	}

	lh, ls, err := check(n.left, low, n.key)
	if err != nil {
		return 0, 0, err
	}
	rh, rs, err := check(n.right, n.key, high)
	if err != nil {
		return 0, 0, err
	}

	if h := max(lh, rh) + 1; n.height != h {
		return 0, 0, fmt.Errorf("%w: node %d has height %d, want %d", ErrCorrupt, n.key, n.height, h)
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, 0, fmt.Errorf("%w: node %d unbalanced (%d vs %d)", ErrCorrupt, n.key, lh, rh)
	}
	if s := ls + rs + 1; n.size != s {
		return 0, 0, fmt.Errorf("%w: node %d has size %d, want %d", ErrCorrupt, n.key, n.size, s)
	}
	return n.height, n.size, nil
}
