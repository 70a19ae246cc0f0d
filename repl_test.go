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
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := defaults()
	m := InitialModel(cfg, NewRenderCache(0))
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model)
}

func typeLine(t *testing.T, m Model, line string) Model {
	t.Helper()
	m.textInput.SetValue(line)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model)
}

func TestReplExecutesCommands(t *testing.T) {
	m := newTestModel(t)
	for _, line := range []string{"insert 20 twenty", "insert 10 ten", "insert 30 thirty"} {
		m = typeLine(t, m, line)
	}

	tree := m.runner.Session.Current().Tree()
	if tree.Size() != 3 {
		t.Fatalf("tree size = %d; want 3", tree.Size())
	}
	if m.textInput.Value() != "" {
		t.Errorf("input not cleared: %q", m.textInput.Value())
	}
	if len(m.history) != 3 || m.historyPos != 3 {
		t.Errorf("history = %v at %d; want 3 entries", m.history, m.historyPos)
	}

	last := m.logLines[len(m.logLines)-1]
	if last != "insert 30: cost 0" {
		t.Errorf("last log line = %q; want %q", last, "insert 30: cost 0")
	}
	if !strings.Contains(m.treeViewport.View(), "30") {
		t.Errorf("tree viewport does not show the new key:\n%s", m.treeViewport.View())
	}
}

func TestReplReportsErrors(t *testing.T) {
	m := newTestModel(t)
	m = typeLine(t, m, "delete 5")

	if !m.statusErr {
		t.Fatal("expected an error status")
	}
	if !strings.Contains(m.status, "key not found") {
		t.Errorf("status = %q; want a not found error", m.status)
	}

	m = typeLine(t, m, "insert 5 five")
	if m.statusErr || m.status != "" {
		t.Errorf("status not cleared after success: %q", m.status)
	}
}

func TestReplHistoryNavigation(t *testing.T) {
	m := newTestModel(t)
	m = typeLine(t, m, "insert 1 one")
	m = typeLine(t, m, "keys")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	if m.textInput.Value() != "keys" {
		t.Errorf("after up: %q; want %q", m.textInput.Value(), "keys")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	if m.textInput.Value() != "insert 1 one" {
		t.Errorf("after second up: %q; want %q", m.textInput.Value(), "insert 1 one")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	if m.textInput.Value() != "" {
		t.Errorf("after moving past the newest entry: %q; want empty", m.textInput.Value())
	}
}

func TestReplRenderCache(t *testing.T) {
	m := newTestModel(t)
	m = typeLine(t, m, "insert 1 one")

	tracked := m.runner.Session.Current()
	key := renderKey("main", tracked.Version(), false)
	cached, ok := GetRendering(m.renderCache, key)
	if !ok {
		t.Fatalf("expected a cached rendering under %q", key)
	}
	if !strings.Contains(cached, "1") {
		t.Errorf("cached rendering = %q", cached)
	}

	// toggling values renders a separate entry
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyF2})
	m = updated.(Model)
	if _, ok := GetRendering(m.renderCache, renderKey("main", tracked.Version(), true)); !ok {
		t.Error("expected a cached rendering with values")
	}
}

func TestReplHelpToggle(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyF1})
	m = updated.(Model)
	if !m.showHelp {
		t.Fatal("f1 should show the command reference")
	}
	if !strings.Contains(m.View(), "Command Reference") {
		t.Error("view does not show the command reference panel")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyF1})
	m = updated.(Model)
	if m.showHelp {
		t.Error("second f1 should hide the command reference")
	}
}

func TestReplQuit(t *testing.T) {
	m := newTestModel(t)
	m.textInput.SetValue("quit")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit did not produce tea.QuitMsg")
	}
}

func TestReplClipboardMessage(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(clipboardMsg{count: 4})
	m = updated.(Model)
	if m.statusErr || !strings.Contains(m.status, "4 keys") {
		t.Errorf("status = %q", m.status)
	}
}

func TestJoinKeys(t *testing.T) {
	tests := []struct {
		keys     []int
		expected string
	}{
		{nil, ""},
		{[]int{7}, "7"},
		{[]int{1, 2, 30}, "1 2 30"},
	}
	for _, tt := range tests {
		if got := joinKeys(tt.keys); got != tt.expected {
			t.Errorf("joinKeys(%v) = %q; want %q", tt.keys, got, tt.expected)
		}
	}
}
