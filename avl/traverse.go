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

import "iter"

// KeysToArray returns every key in ascending order.
func (t *Tree[V]) KeysToArray() []int {
	keys := make([]int, t.Size())
	inOrderKeys(t.root, keys, 0)
	return keys
}

// InfoToArray returns every value, ordered by ascending key.
func (t *Tree[V]) InfoToArray() []V {
	values := make([]V, t.Size())
	inOrderValues(t.root, values, 0)
	return values
}

func inOrderKeys[V any](n *Node[V], keys []int, index int) int {
	if n == nil {
		return index
	}
	index = inOrderKeys(n.left, keys, index)
	keys[index] = n.key
	index++
	return inOrderKeys(n.right, keys, index)
}

func inOrderValues[V any](n *Node[V], values []V, index int) int {
	if n == nil {
		return index
	}
	index = inOrderValues(n.left, values, index)
	values[index] = n.value
	index++
	return inOrderValues(n.right, values, index)
}

// Ascend calls fn for each key and value in ascending key order until fn
// returns false.
func (t *Tree[V]) Ascend(fn func(k int, v V) bool) {
	for n := t.min; n != nil; n = n.Next() {
		if !fn(n.key, n.value) {
			return
		}
	}
}

// All returns an iterator over the tree in ascending key order.
func (t *Tree[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		t.Ascend(yield)
	}
}
