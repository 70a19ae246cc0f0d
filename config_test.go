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
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFrom(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		write    bool
		expected Config
		wantErr  bool
	}{
		{
			name:     "missing file uses defaults",
			write:    false,
			expected: defaultConfig,
		},
		{
			name:    "partial file keeps other defaults",
			content: "stress:\n  ops: 500\n  seed: 42\n",
			write:   true,
			expected: Config{
				Stress: StressConfig{Ops: 500, KeySpace: 10000, Seed: 42, VerifyEvery: 100, Progress: true},
				Repl:   defaultConfig.Repl,
			},
		},
		{
			name:    "invalid values are replaced",
			content: "stress:\n  key_space: -4\n  verify_every: 0\nrepl:\n  render_values: true\n  cache_minutes: 0\n",
			write:   true,
			expected: Config{
				Stress: defaultConfig.Stress,
				Repl:   ReplConfig{RenderValues: true, CacheMinutes: 30},
			},
		},
		{
			name:     "malformed yaml",
			content:  "stress: [not, a, map",
			write:    true,
			expected: defaultConfig,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), configFileName)
			if tt.write {
				if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
					t.Fatalf("failed to write config: %v", err)
				}
			}

			got, err := loadConfigFrom(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("loadConfigFrom() error = %v; wantErr %v", err, tt.wantErr)
			}
			if *got != tt.expected {
				t.Errorf("loadConfigFrom() = %+v; want %+v", *got, tt.expected)
			}
		})
	}
}

func TestWriteConfigFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	want := defaultConfig
	want.Stress.Ops = 77
	want.Repl.RenderValues = true

	if err := writeConfigFile(path, &want); err != nil {
		t.Fatalf("writeConfigFile() error = %v", err)
	}
	got, err := loadConfigFrom(path)
	if err != nil {
		t.Fatalf("loadConfigFrom() error = %v", err)
	}
	if *got != want {
		t.Errorf("got %+v; want %+v", *got, want)
	}
}

func TestDefaultsAreCopies(t *testing.T) {
	c := defaults()
	c.Stress.Ops = 1
	if defaultConfig.Stress.Ops == 1 {
		t.Error("defaults() must not alias defaultConfig")
	}
}
