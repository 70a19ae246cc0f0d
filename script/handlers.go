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
	"strconv"
	"strings"

	"github.com/cybrota/avltree/avl"
)

const emptyMarker = "(empty)"

// simpleHandler covers the commands that need nothing beyond a fixed
// argument count and a function body.
type simpleHandler struct {
	name  string
	usage string
	args  int
	run   func(s *Session, cmd *Command) (string, error)
}

func (h *simpleHandler) Name() string  { return h.name }
func (h *simpleHandler) Usage() string { return h.usage }

func (h *simpleHandler) Run(s *Session, cmd *Command) (string, error) {
	if len(cmd.Args) != h.args {
		return "", fmt.Errorf("%w: %s", ErrUsage, h.usage)
	}
	return h.run(s, cmd)
}

func builtinHandlers() []Handler {
	return []Handler{
		&simpleHandler{"use", "use NAME", 1, func(s *Session, cmd *Command) (string, error) {
			s.Use(cmd.Arg(0))
			return "using " + cmd.Arg(0), nil
		}},
		&simpleHandler{"trees", "trees", 0, func(s *Session, cmd *Command) (string, error) {
			var parts []string
			for _, name := range s.Names() {
				tt, _ := s.Lookup(name)
				marker := ""
				if name == s.CurrentName() {
					marker = "*"
				}
				parts = append(parts, fmt.Sprintf("%s%s (%d)", name, marker, tt.tree.Size()))
			}
			return strings.Join(parts, " "), nil
		}},
		&simpleHandler{"insert", "insert KEY VALUE", 2, func(s *Session, cmd *Command) (string, error) {
			k, err := cmd.KeyArg(0)
			if err != nil {
				return "", err
			}
			cost, err := s.Current().insert(k, cmd.Arg(1))
			if err != nil {
				return "", fmt.Errorf("insert %d: %w", k, err)
			}
			return fmt.Sprintf("insert %d: cost %d", k, cost), nil
		}},
		&simpleHandler{"delete", "delete KEY", 1, func(s *Session, cmd *Command) (string, error) {
			k, err := cmd.KeyArg(0)
			if err != nil {
				return "", err
			}
			cost, err := s.Current().delete(k)
			if err != nil {
				return "", fmt.Errorf("delete %d: %w", k, err)
			}
			return fmt.Sprintf("delete %d: cost %d", k, cost), nil
		}},
		&simpleHandler{"search", "search KEY", 1, func(s *Session, cmd *Command) (string, error) {
			k, err := cmd.KeyArg(0)
			if err != nil {
				return "", err
			}
			if v, ok := s.Search(k); ok {
				return v, nil
			}
			return fmt.Sprintf("%d: not found", k), nil
		}},
		&simpleHandler{"min", "min", 0, func(s *Session, cmd *Command) (string, error) {
			return orEmpty(s.Current().tree.Min()), nil
		}},
		&simpleHandler{"max", "max", 0, func(s *Session, cmd *Command) (string, error) {
			return orEmpty(s.Current().tree.Max()), nil
		}},
		&simpleHandler{"keys", "keys", 0, func(s *Session, cmd *Command) (string, error) {
			keys := s.Current().tree.KeysToArray()
			parts := make([]string, len(keys))
			for i, k := range keys {
				parts[i] = strconv.Itoa(k)
			}
			return listOrEmpty(parts), nil
		}},
		&simpleHandler{"info", "info", 0, func(s *Session, cmd *Command) (string, error) {
			return listOrEmpty(s.Current().tree.InfoToArray()), nil
		}},
		&simpleHandler{"size", "size", 0, func(s *Session, cmd *Command) (string, error) {
			return strconv.Itoa(s.Current().tree.Size()), nil
		}},
		&simpleHandler{"height", "height", 0, func(s *Session, cmd *Command) (string, error) {
			return strconv.Itoa(s.Current().tree.Height()), nil
		}},
		&simpleHandler{"empty", "empty", 0, func(s *Session, cmd *Command) (string, error) {
			return strconv.FormatBool(s.Current().tree.Empty()), nil
		}},
		&simpleHandler{"rank", "rank KEY", 1, func(s *Session, cmd *Command) (string, error) {
			k, err := cmd.KeyArg(0)
			if err != nil {
				return "", err
			}
			rank, ok := s.Current().tree.Rank(k)
			if !ok {
				return "", fmt.Errorf("rank %d: %w", k, avl.ErrNotFound)
			}
			return fmt.Sprintf("rank %d: %d", k, rank), nil
		}},
		&simpleHandler{"select", "select INDEX", 1, func(s *Session, cmd *Command) (string, error) {
			i, err := strconv.Atoi(cmd.Arg(0))
			if err != nil {
				return "", fmt.Errorf("select: invalid index %q", cmd.Arg(0))
			}
			n, ok := s.Current().tree.Select(i)
			if !ok {
				return "", fmt.Errorf("select: index %d out of range", i)
			}
			return fmt.Sprintf("select %d: %d → %s", i, n.Key(), n.Value()), nil
		}},
		&simpleHandler{"check", "check", 0, func(s *Session, cmd *Command) (string, error) {
			if err := s.Current().tree.Check(); err != nil {
				return "", err
			}
			return "ok", nil
		}},
		&simpleHandler{"stats", "stats", 0, func(s *Session, cmd *Command) (string, error) {
			st := s.Stats()
			return fmt.Sprintf("lookups %d, answered by filter %d", st.Lookups, st.FilterSkips), nil
		}},
	}
}

// SplitHandler splits the current tree into two named trees
type SplitHandler struct{}

func (h *SplitHandler) Name() string  { return "split" }
func (h *SplitHandler) Usage() string { return "split KEY LOW HIGH" }

func (h *SplitHandler) Run(s *Session, cmd *Command) (string, error) {
	if len(cmd.Args) != 3 {
		return "", fmt.Errorf("%w: %s", ErrUsage, h.Usage())
	}
	k, err := cmd.KeyArg(0)
	if err != nil {
		return "", err
	}
	low, high, err := s.Split(k, cmd.Arg(1), cmd.Arg(2))
	if err != nil {
		return "", fmt.Errorf("split %d: %w", k, err)
	}
	return fmt.Sprintf("split %d: %s (%d) %s (%d)",
		k, cmd.Arg(1), low.tree.Size(), cmd.Arg(2), high.tree.Size()), nil
}

// JoinHandler joins a named tree and a separator into the current tree
type JoinHandler struct{}

func (h *JoinHandler) Name() string  { return "join" }
func (h *JoinHandler) Usage() string { return "join KEY VALUE OTHER" }

func (h *JoinHandler) Run(s *Session, cmd *Command) (string, error) {
	if len(cmd.Args) != 3 {
		return "", fmt.Errorf("%w: %s", ErrUsage, h.Usage())
	}
	k, err := cmd.KeyArg(0)
	if err != nil {
		return "", err
	}
	cost, err := s.Join(k, cmd.Arg(1), cmd.Arg(2))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("join %d: cost %d", k, cost), nil
}

// PrintHandler draws the current tree, with values when given -v
type PrintHandler struct{}

func (h *PrintHandler) Name() string  { return "print" }
func (h *PrintHandler) Usage() string { return "print [-v]" }

func (h *PrintHandler) Run(s *Session, cmd *Command) (string, error) {
	withValues := false
	switch {
	case len(cmd.Args) == 0:
	case len(cmd.Args) == 1 && cmd.Arg(0) == "-v":
		withValues = true
	default:
		return "", fmt.Errorf("%w: %s", ErrUsage, h.Usage())
	}
	return Render(s.Current().tree, withValues), nil
}

// Render returns the diagram of tree, or the empty marker.
func Render(tree *avl.Tree[string], withValues bool) string {
	if tree.Empty() {
		return emptyMarker
	}
	var b strings.Builder
	tree.Print(&b, withValues)
	return strings.TrimRight(b.String(), "\n")
}

func orEmpty(v string, ok bool) string {
	if !ok {
		return emptyMarker
	}
	return v
}

func listOrEmpty(parts []string) string {
	if len(parts) == 0 {
		return emptyMarker
	}
	return strings.Join(parts, " ")
}
