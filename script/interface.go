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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("usage")
)

// Handler defines how a single script command is executed
type Handler interface {
	Name() string
	Usage() string
	Run(s *Session, cmd *Command) (string, error)
}

// Command represents a parsed script line with its parts
type Command struct {
	Parts []string
	Name  string
	Args  []string
	Line  string
}

// NewCommand creates a new Command from command parts
func NewCommand(parts []string) *Command {
	if len(parts) == 0 {
		return &Command{Parts: parts}
	}

	return &Command{
		Parts: parts,
		Name:  strings.ToLower(parts[0]),
		Args:  parts[1:],
		Line:  strings.Join(parts, " "),
	}
}

// ParseLine splits a script line into a Command. Blank lines and comments
// starting with '#' yield a nil Command.
func ParseLine(line string) (*Command, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, nil
	}

	parts, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %v", line, err)
	}
	if len(parts) == 0 {
		return nil, nil
	}
	return NewCommand(parts), nil
}

// HasArgs checks if command has at least n arguments
func (c *Command) HasArgs(n int) bool {
	return len(c.Args) >= n
}

// Arg returns the nth argument (0-indexed)
func (c *Command) Arg(n int) string {
	if n >= len(c.Args) {
		return ""
	}
	return c.Args[n]
}

// KeyArg parses the nth argument as a tree key. Keys are non-negative.
func (c *Command) KeyArg(n int) (int, error) {
	raw := c.Arg(n)
	k, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid key %q", c.Name, raw)
	}
	if k < 0 {
		return 0, fmt.Errorf("%s: key %d must be non-negative", c.Name, k)
	}
	return k, nil
}
