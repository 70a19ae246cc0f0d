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
	"context"
	"strings"
	"testing"

	"github.com/cybrota/avltree/avl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	cmd, err := ParseLine(`  INSERT 5 "five and a half"  `)
	require.NoError(t, err)
	require.NotNil(t, cmd)
	assert.Equal(t, "insert", cmd.Name)
	assert.Equal(t, []string{"5", "five and a half"}, cmd.Args)
	assert.True(t, cmd.HasArgs(2))
	assert.False(t, cmd.HasArgs(3))
	assert.Equal(t, "", cmd.Arg(5))

	for _, line := range []string{"", "   ", "# comment", "  # indented comment"} {
		cmd, err := ParseLine(line)
		assert.NoError(t, err)
		assert.Nil(t, cmd, "line %q", line)
	}

	_, err = ParseLine(`insert 1 "unterminated`)
	assert.Error(t, err)
}

func TestKeyArg(t *testing.T) {
	cmd := NewCommand([]string{"delete", "42", "-3", "x"})

	k, err := cmd.KeyArg(0)
	require.NoError(t, err)
	assert.Equal(t, 42, k)

	_, err = cmd.KeyArg(1)
	assert.ErrorContains(t, err, "non-negative")
	_, err = cmd.KeyArg(2)
	assert.ErrorContains(t, err, "invalid key")
	_, err = cmd.KeyArg(3)
	assert.Error(t, err)
}

func TestRunScript(t *testing.T) {
	script := `
# the scenario from the package tests
insert 20 twenty
insert 10 ten
insert 30 thirty
insert 5 five
insert 15 fifteen
keys
size
min
max
search 15
search 99
delete 20
keys
check
`
	var out strings.Builder
	r := NewRunner()
	res, err := r.RunScript(context.Background(), strings.NewReader(script), &out)
	require.NoError(t, err)
	assert.Equal(t, 14, res.Lines)
	assert.Equal(t, 0, res.Failures)

	expected := []string{
		"insert 20: cost 0",
		"insert 10: cost 1",
		"insert 30: cost 0",
		"insert 5: cost 2",
		"insert 15: cost 0",
		"5 10 15 20 30",
		"5",
		"five",
		"thirty",
		"fifteen",
		"99: not found",
		"delete 20: cost 3",
		"5 10 15 30",
		"ok",
	}
	assert.Equal(t, expected, strings.Split(strings.TrimSpace(out.String()), "\n"))
}

func TestRunScriptStopsOnError(t *testing.T) {
	script := "insert 1 one\nfrobnicate\ninsert 2 two\n"

	var out strings.Builder
	r := NewRunner()
	res, err := r.RunScript(context.Background(), strings.NewReader(script), &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, err.Error(), "line 2")
	assert.Equal(t, 1, res.Failures)
	assert.Equal(t, 1, r.Session.Current().Tree().Size())
}

func TestRunScriptContinueOnError(t *testing.T) {
	script := "insert 1 one\ninsert 1 again\ndelete 7\ninsert\ninsert 2 two\n"

	var out strings.Builder
	r := NewRunner()
	r.ContinueOnError = true
	res, err := r.RunScript(context.Background(), strings.NewReader(script), &out)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Lines)
	assert.Equal(t, 3, res.Failures)
	assert.Contains(t, out.String(), "line 2: error: insert 1: avl: duplicate key")
	assert.Contains(t, out.String(), "line 3: error: delete 7: avl: key not found")
	assert.Contains(t, out.String(), "line 4: error: usage: insert KEY VALUE")
	assert.Equal(t, []int{1, 2}, r.Session.Current().Tree().KeysToArray())
}

func TestRunScriptCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out strings.Builder
	_, err := NewRunner().RunScript(ctx, strings.NewReader("insert 1 one\n"), &out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestSplitAndJoinCommands(t *testing.T) {
	r := NewRunner()
	for _, k := range []string{"20", "10", "30", "5", "15"} {
		_, err := r.Exec("insert " + k + " v" + k)
		require.NoError(t, err)
	}

	out, err := r.Exec("split 15 low high")
	require.NoError(t, err)
	assert.Equal(t, "split 15: low (2) high (2)", out)
	assert.True(t, r.Session.Current().Tree().Empty())

	low, ok := r.Session.Lookup("low")
	require.True(t, ok)
	assert.Equal(t, []int{5, 10}, low.Tree().KeysToArray())
	high, ok := r.Session.Lookup("high")
	require.True(t, ok)
	assert.Equal(t, []int{20, 30}, high.Tree().KeysToArray())

	_, err = r.Exec("use low")
	require.NoError(t, err)
	out, err = r.Exec("join 15 v15 high")
	require.NoError(t, err)
	assert.Equal(t, "join 15: cost 1", out)
	assert.Equal(t, []int{5, 10, 15, 20, 30}, low.Tree().KeysToArray())
	assert.True(t, high.Tree().Empty())
	assert.NoError(t, low.Tree().Check())

	out, err = r.Exec("trees")
	require.NoError(t, err)
	assert.Equal(t, "high (0) low* (5) main (0)", out)
}

func TestJoinRejectsBadSeparator(t *testing.T) {
	r := NewRunner()
	r.Exec("insert 1 one")
	r.Exec("insert 9 nine")
	r.Exec("use other")
	r.Exec("insert 5 five")

	_, err := r.Exec("join 3 three main")
	assert.ErrorContains(t, err, "does not separate")

	_, err = r.Exec("join 3 three other")
	assert.ErrorContains(t, err, "with itself")

	_, err = r.Exec("join 3 three nowhere")
	assert.ErrorContains(t, err, "no tree named")
}

func TestSearchUsesFilter(t *testing.T) {
	r := NewRunner()
	r.Exec("insert 1 one")
	r.Exec("insert 2 two")
	r.Exec("delete 2")

	out, _ := r.Exec("search 1")
	assert.Equal(t, "one", out)
	out, _ = r.Exec("search 2")
	assert.Equal(t, "2: not found", out)

	tt := r.Session.Current()
	assert.True(t, tt.MightContain(1))
	// deleted keys remain possible members
	assert.True(t, tt.MightContain(2))

	st := r.Session.Stats()
	assert.Equal(t, 2, st.Lookups)
	assert.Equal(t, 0, st.FilterSkips)
}

func TestSearchSkipsNeverSeenKeys(t *testing.T) {
	s := NewSession()
	for k := 0; k < 50; k++ {
		s.Current().insert(k, "v")
	}
	skipped := 0
	for k := 1000; k < 1100; k++ {
		if _, ok := s.Search(k); ok {
			t.Fatalf("found key %d that was never inserted", k)
		}
		if !s.Current().MightContain(k) {
			skipped++
		}
	}
	assert.Equal(t, skipped, s.Stats().FilterSkips)
	// with 50 keys in a 64k-bit filter nearly every miss is answered early
	assert.Greater(t, skipped, 90)
}

func TestVersionTracksMutations(t *testing.T) {
	s := NewSession()
	tt := s.Current()
	v0 := tt.Version()

	tt.insert(1, "one")
	assert.Equal(t, v0+1, tt.Version())

	_, err := tt.insert(1, "again")
	assert.ErrorIs(t, err, avl.ErrDuplicateKey)
	assert.Equal(t, v0+1, tt.Version())

	tt.delete(1)
	assert.Equal(t, v0+2, tt.Version())
}

func TestPrintCommand(t *testing.T) {
	r := NewRunner()
	out, err := r.Exec("print")
	require.NoError(t, err)
	assert.Equal(t, "(empty)", out)

	r.Exec("insert 2 two")
	r.Exec("insert 1 one")
	out, err = r.Exec("print -v")
	require.NoError(t, err)
	assert.Contains(t, out, "2 → two h=1 s=2")

	_, err = r.Exec("print --wide")
	assert.ErrorIs(t, err, ErrUsage)
}

func TestOrderStatisticCommands(t *testing.T) {
	r := NewRunner()
	for _, k := range []string{"40", "20", "60"} {
		r.Exec("insert " + k + " v" + k)
	}

	out, err := r.Exec("rank 60")
	require.NoError(t, err)
	assert.Equal(t, "rank 60: 2", out)

	out, err = r.Exec("select 0")
	require.NoError(t, err)
	assert.Equal(t, "select 0: 20 → v20", out)

	_, err = r.Exec("rank 50")
	assert.ErrorIs(t, err, avl.ErrNotFound)
	_, err = r.Exec("select 3")
	assert.Error(t, err)
}

func TestDispatcherHandlers(t *testing.T) {
	d := NewDispatcher()
	names := make([]string, 0)
	for _, h := range d.Handlers() {
		names = append(names, h.Name())
		assert.NotEmpty(t, h.Usage())
	}
	assert.Contains(t, names, "split")
	assert.Contains(t, names, "join")
	assert.True(t, isSortedStrings(names))

	_, err := d.Dispatch(NewSession(), nil)
	assert.Error(t, err)
}

func isSortedStrings(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}

func TestSplitIntoCurrentName(t *testing.T) {
	r := NewRunner()
	for _, k := range []string{"1", "2", "3", "4"} {
		r.Exec("insert " + k + " v" + k)
	}
	before := r.Session.Current().Version()

	out, err := r.Exec("split 2 main rest")
	require.NoError(t, err)
	assert.Equal(t, "split 2: main (1) rest (2)", out)

	main := r.Session.Current()
	assert.Equal(t, []int{1}, main.Tree().KeysToArray())
	assert.Greater(t, main.Version(), before)

	_, err = r.Exec("split 1 same same")
	assert.Error(t, err)
}
