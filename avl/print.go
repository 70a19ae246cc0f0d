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
	"io"
)

// to control the print routine
type branch int

const (
	branchRoot branch = iota
	branchLeft
	branchRight
)

// Print writes an ASCII diagram of the tree to w, higher keys on top, and
// returns its depth.
func (t *Tree[V]) Print(w io.Writer, withValues bool) int {
	return printTree(w, t.root, "", branchRoot, withValues)
}

func printTree[V any](w io.Writer, n *Node[V], prefix string, br branch, withValues bool) int {
	if n == nil {
		return 0
	}
	rd := 0
	ld := 0
	if n.right != nil {
		t := "       "
		if br == branchLeft {
			t = "|      "
		}
		rd = printTree(w, n.right, prefix+t, branchRight, withValues)
	}
	switch br {
	case branchRoot:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case branchLeft:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case branchRight:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if withValues {
		fmt.Fprintf(w, "%d → %v h=%d s=%d\n", n.key, n.value, n.height, n.size)
	} else {
		fmt.Fprintf(w, "%d\n", n.key)
	}
	if n.left != nil {
		t := "       "
		if br == branchRight {
			t = "|      "
		}
		ld = printTree(w, n.left, prefix+t, branchLeft, withValues)
	}
	return 1 + max(rd, ld)
}
