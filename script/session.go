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

package script

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/cybrota/avltree/avl"
	"github.com/willf/bloom"
)

const (
	DefaultTree = "main"

	FilterSize   = 1 << 16 // bits per tree filter
	FilterHashes = 4
)

// TrackedTree wraps a tree with a membership filter of every key it has ever
// held and a version that changes on each mutation. A negative filter answer
// is definite, so lookups for never-seen keys skip the tree walk. Deleted
// keys stay in the filter; the tree walk settles those.
type TrackedTree struct {
	tree    *avl.Tree[string]
	filter  *bloom.BloomFilter
	version uint64
}

func newTrackedTree(tree *avl.Tree[string]) *TrackedTree {
	tt := &TrackedTree{
		tree:   tree,
		filter: bloom.New(FilterSize, FilterHashes),
	}
	tree.Ascend(func(k int, _ string) bool {
		tt.filter.AddString(strconv.Itoa(k))
		return true
	})
	return tt
}

// Tree exposes the underlying tree for read-only use.
func (tt *TrackedTree) Tree() *avl.Tree[string] {
	return tt.tree
}

// Version increases every time the tree is mutated.
func (tt *TrackedTree) Version() uint64 {
	return tt.version
}

// MightContain is the filter's answer: false means k was never inserted.
func (tt *TrackedTree) MightContain(k int) bool {
	return tt.filter.TestString(strconv.Itoa(k))
}

func (tt *TrackedTree) insert(k int, v string) (int, error) {
	cost, err := tt.tree.Insert(k, v)
	if err != nil {
		return 0, err
	}
	tt.filter.AddString(strconv.Itoa(k))
	tt.version++
	return cost, nil
}

func (tt *TrackedTree) delete(k int) (int, error) {
	cost, err := tt.tree.Delete(k)
	if err != nil {
		return 0, err
	}
	tt.version++
	return cost, nil
}

// reset empties the tree after its nodes were handed to another tree.
func (tt *TrackedTree) reset() {
	tt.tree = avl.New[string]()
	tt.filter.ClearAll()
	tt.version++
}

// Stats counts lookups and how many of them the filters answered alone.
type Stats struct {
	Lookups     int
	FilterSkips int
}

// Session holds the named trees a script works on
type Session struct {
	trees   map[string]*TrackedTree
	current string
	stats   Stats
}

// NewSession creates a session with an empty DefaultTree selected
func NewSession() *Session {
	s := &Session{
		trees:   make(map[string]*TrackedTree),
		current: DefaultTree,
	}
	s.trees[DefaultTree] = newTrackedTree(avl.New[string]())
	return s
}

// Use selects the named tree, creating it empty when unknown
func (s *Session) Use(name string) {
	if _, ok := s.trees[name]; !ok {
		s.trees[name] = newTrackedTree(avl.New[string]())
	}
	s.current = name
}

func (s *Session) CurrentName() string {
	return s.current
}

func (s *Session) Current() *TrackedTree {
	return s.trees[s.current]
}

// Lookup returns the named tree
func (s *Session) Lookup(name string) (*TrackedTree, bool) {
	tt, ok := s.trees[name]
	return tt, ok
}

// Names returns the tree names in sorted order
func (s *Session) Names() []string {
	names := make([]string, 0, len(s.trees))
	for name := range s.trees {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Session) Stats() Stats {
	return s.stats
}

// Search looks k up in the current tree, consulting its filter first.
func (s *Session) Search(k int) (string, bool) {
	s.stats.Lookups++
	tt := s.Current()
	if !tt.MightContain(k) {
		s.stats.FilterSkips++
		return "", false
	}
	return tt.tree.Search(k)
}

// Split partitions the current tree around k into two new named trees. The
// current tree is left empty.
func (s *Session) Split(k int, lowName, highName string) (*TrackedTree, *TrackedTree, error) {
	if lowName == highName {
		return nil, nil, fmt.Errorf("split: target names must differ")
	}
	tt := s.Current()
	low, high, err := tt.tree.Split(k)
	if err != nil {
		return nil, nil, err
	}

	// the halves inherit the parent's filter, a superset of their keys
	lowTracked := s.install(lowName, low, tt.filter.Copy())
	highTracked := s.install(highName, high, tt.filter.Copy())
	if lowName != s.current && highName != s.current {
		tt.reset()
	}
	return lowTracked, highTracked, nil
}

// install stores tree under name. A replaced tree's version keeps counting
// so a (name, version) pair never names two different trees.
func (s *Session) install(name string, tree *avl.Tree[string], filter *bloom.BloomFilter) *TrackedTree {
	tt := &TrackedTree{tree: tree, filter: filter}
	if old, ok := s.trees[name]; ok {
		tt.version = old.version + 1
	}
	s.trees[name] = tt
	return tt
}

// Join merges the named tree and the separator (k, v) into the current tree
// and returns the join cost. The named tree is left empty.
func (s *Session) Join(k int, v string, otherName string) (int, error) {
	other, ok := s.trees[otherName]
	if !ok {
		return 0, fmt.Errorf("join: no tree named %q", otherName)
	}
	if otherName == s.current {
		return 0, fmt.Errorf("join: cannot join %q with itself", otherName)
	}
	tt := s.Current()
	if err := separates(tt.tree, other.tree, k); err != nil {
		return 0, err
	}

	cost := tt.tree.Join(avl.NewNode(k, v), other.tree)
	if err := tt.filter.Merge(other.filter); err != nil {
		return 0, fmt.Errorf("join: merge filters: %v", err)
	}
	tt.filter.AddString(strconv.Itoa(k))
	tt.version++
	other.reset()
	return cost, nil
}

// separates checks the join precondition: one tree entirely below k, the
// other entirely above it.
func separates(a, b *avl.Tree[string], k int) error {
	below := func(t *avl.Tree[string]) bool { return t.Empty() || t.Last().Key() < k }
	above := func(t *avl.Tree[string]) bool { return t.Empty() || t.First().Key() > k }
	if (below(a) && above(b)) || (above(a) && below(b)) {
		return nil
	}
	return fmt.Errorf("join: key %d does not separate the trees", k)
}
