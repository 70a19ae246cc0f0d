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
)

// Dispatcher routes commands to their registered handlers
type Dispatcher struct {
	handlers map[string]Handler
}

// NewDispatcher creates a dispatcher with all built-in commands registered
func NewDispatcher() *Dispatcher {
	d := &Dispatcher{handlers: make(map[string]Handler)}

	for _, h := range builtinHandlers() {
		d.Register(h)
	}
	d.Register(&SplitHandler{})
	d.Register(&JoinHandler{})
	d.Register(&PrintHandler{})

	return d
}

// Register adds a handler, replacing any handler of the same name
func (d *Dispatcher) Register(h Handler) {
	d.handlers[h.Name()] = h
}

// Handlers returns the registered handlers ordered by name
func (d *Dispatcher) Handlers() []Handler {
	hs := make([]Handler, 0, len(d.handlers))
	for _, h := range d.handlers {
		hs = append(hs, h)
	}
	sort.Slice(hs, func(i, j int) bool {
		return hs[i].Name() < hs[j].Name()
	})
	return hs
}

// Dispatch runs cmd against the session
func (d *Dispatcher) Dispatch(s *Session, cmd *Command) (string, error) {
	if cmd == nil || cmd.Name == "" {
		return "", fmt.Errorf("no command provided")
	}
	h, ok := d.handlers[cmd.Name]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownCommand, cmd.Name)
	}
	return h.Run(s, cmd)
}
