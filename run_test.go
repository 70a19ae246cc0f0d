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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunScriptFile(t *testing.T) {
	tests := []struct {
		name         string
		script       string
		continueOn   bool
		wantErr      bool
		wantFailures int
		wantOutput   []string
	}{
		{
			name:       "quoted values",
			script:     "insert 2 two\ninsert 1 one\ninsert 3 \"three and more\"\nkeys\nmax\n",
			wantOutput: []string{"insert 3: cost 0", "1 2 3", "three and more"},
		},
		{
			name:         "stops on error",
			script:       "delete 1\nkeys\n",
			wantErr:      true,
			wantFailures: 1,
		},
		{
			name:         "continues on error",
			script:       "delete 1\ninsert 1 one\nkeys\n",
			continueOn:   true,
			wantFailures: 1,
			wantOutput:   []string{"line 1: error", "insert 1: cost 0", "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "test.avl")
			if err := os.WriteFile(path, []byte(tt.script), 0644); err != nil {
				t.Fatalf("failed to write script: %v", err)
			}

			var out bytes.Buffer
			res, err := runScriptFile(context.Background(), path, tt.continueOn, &out)
			if (err != nil) != tt.wantErr {
				t.Fatalf("runScriptFile() error = %v; wantErr %v", err, tt.wantErr)
			}
			if res.Failures != tt.wantFailures {
				t.Errorf("res.Failures = %d; want %d", res.Failures, tt.wantFailures)
			}
			for _, want := range tt.wantOutput {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output missing %q:\n%s", want, out.String())
				}
			}
		})
	}
}

func TestRunScriptFileMissing(t *testing.T) {
	_, err := runScriptFile(context.Background(), filepath.Join(t.TempDir(), "nope.avl"), false, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected an error for a missing script")
	}
}

func TestGetHelpMessage(t *testing.T) {
	msg := getHelpMessage()
	if !strings.Contains(msg, version) {
		t.Errorf("help message missing version %q", version)
	}
	for _, cmd := range []string{"split KEY LOW HIGH", "join KEY VALUE OTHER", "print [-v]"} {
		if !strings.Contains(scriptReference, cmd) {
			t.Errorf("script reference missing %q", cmd)
		}
	}
}
