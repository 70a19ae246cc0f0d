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

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cybrota/avltree/script"
)

// runScriptFile executes the script at path ("-" reads stdin) and writes
// command output to out.
func runScriptFile(ctx context.Context, path string, continueOnError bool, out io.Writer) (script.Result, error) {
	var in io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return script.Result{}, fmt.Errorf("failed to open script: %v", err)
		}
		defer f.Close()
		in = f
	}

	runner := script.NewRunner()
	runner.ContinueOnError = continueOnError
	return runner.RunScript(ctx, in, out)
}
