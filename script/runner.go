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
	"bufio"
	"context"
	"fmt"
	"io"
)

// Runner executes script lines against one session
type Runner struct {
	Dispatcher      *Dispatcher
	Session         *Session
	ContinueOnError bool
}

// NewRunner creates a runner with a fresh session and the built-in commands
func NewRunner() *Runner {
	return &Runner{
		Dispatcher: NewDispatcher(),
		Session:    NewSession(),
	}
}

// Exec runs a single line. Blank lines and comments produce no output.
func (r *Runner) Exec(line string) (string, error) {
	cmd, err := ParseLine(line)
	if err != nil || cmd == nil {
		return "", err
	}
	return r.Dispatcher.Dispatch(r.Session, cmd)
}

// Result summarises a script run
type Result struct {
	Lines    int // lines that held a command
	Failures int
}

// RunScript executes every line read from in, writing each command's output
// to out. It stops at the first failing line unless ContinueOnError is set,
// in which case failures are written to out and counted.
func (r *Runner) RunScript(ctx context.Context, in io.Reader, out io.Writer) (Result, error) {
	var res Result
	scanner := bufio.NewScanner(in)
	lineNo := 0

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		lineNo++

		cmd, err := ParseLine(scanner.Text())
		if err == nil && cmd == nil {
			continue
		}
		res.Lines++

		var output string
		if err == nil {
			output, err = r.Dispatcher.Dispatch(r.Session, cmd)
		}
		if err != nil {
			res.Failures++
			if !r.ContinueOnError {
				return res, fmt.Errorf("line %d: %w", lineNo, err)
			}
			fmt.Fprintf(out, "line %d: error: %v\n", lineNo, err)
			continue
		}
		if output != "" {
			fmt.Fprintln(out, output)
		}
	}

	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("failed to read script: %v", err)
	}
	return res, nil
}
