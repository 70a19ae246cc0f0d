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
	"math/rand/v2"
	"slices"
	"strconv"

	"github.com/cybrota/avltree/avl"
	"github.com/schollz/progressbar/v3"
)

// StressReport summarises a randomized run
type StressReport struct {
	Ops        int
	Inserts    int
	Deletes    int
	Searches   int
	RoundTrips int // split followed by join at the same key
	Checks     int

	InsertCost int
	DeleteCost int
	JoinCost   int
	MaxHeight  int
	FinalSize  int
}

// runStress applies cfg.Ops random operations to a tree and a shadow map,
// comparing the two and checking every tree invariant along the way. It
// returns the first divergence as an error.
func runStress(ctx context.Context, cfg StressConfig, out io.Writer) (StressReport, error) {
	var report StressReport
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	tree := avl.New[string]()
	shadow := make(map[int]string)

	var bar *progressbar.ProgressBar
	if cfg.Progress {
		bar = progressbar.NewOptions(cfg.Ops,
			progressbar.OptionSetWriter(out),
			progressbar.OptionSetDescription("🌳 Stressing tree..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintf(out, "\n")
			}),
		)
	}

	for i := 0; i < cfg.Ops; i++ {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		k := rng.IntN(cfg.KeySpace)
		var err error
		switch op := rng.IntN(100); {
		case op < 50:
			err = stressInsert(tree, shadow, k, &report)
		case op < 85:
			err = stressDelete(tree, shadow, k, &report)
		case op < 95:
			err = stressSearch(tree, shadow, k, &report)
		default:
			tree, err = stressRoundTrip(tree, shadow, rng, &report)
		}
		if err != nil {
			return report, fmt.Errorf("op %d: %w", i, err)
		}

		report.Ops++
		report.MaxHeight = max(report.MaxHeight, tree.Height())
		if report.Ops%cfg.VerifyEvery == 0 {
			if err := verifyAgainst(tree, shadow); err != nil {
				return report, fmt.Errorf("op %d: %w", i, err)
			}
			report.Checks++
		}
		if bar != nil {
			bar.Add(1)
		}
	}

	if err := verifyAgainst(tree, shadow); err != nil {
		return report, err
	}
	report.Checks++
	report.FinalSize = tree.Size()
	return report, nil
}

func stressInsert(tree *avl.Tree[string], shadow map[int]string, k int, report *StressReport) error {
	v := strconv.Itoa(k)
	cost, err := tree.Insert(k, v)
	_, existed := shadow[k]
	switch {
	case existed && err == nil:
		return fmt.Errorf("insert %d: duplicate accepted", k)
	case !existed && err != nil:
		return fmt.Errorf("insert %d: %w", k, err)
	case !existed:
		shadow[k] = v
		report.Inserts++
		report.InsertCost += cost
	}
	return nil
}

func stressDelete(tree *avl.Tree[string], shadow map[int]string, k int, report *StressReport) error {
	cost, err := tree.Delete(k)
	_, existed := shadow[k]
	switch {
	case !existed && err == nil:
		return fmt.Errorf("delete %d: missing key reported deleted", k)
	case existed && err != nil:
		return fmt.Errorf("delete %d: %w", k, err)
	case existed:
		delete(shadow, k)
		report.Deletes++
		report.DeleteCost += cost
	}
	return nil
}

func stressSearch(tree *avl.Tree[string], shadow map[int]string, k int, report *StressReport) error {
	got, ok := tree.Search(k)
	want, exists := shadow[k]
	if ok != exists || got != want {
		return fmt.Errorf("search %d: got (%q, %v), want (%q, %v)", k, got, ok, want, exists)
	}
	report.Searches++
	return nil
}

// stressRoundTrip splits the tree at a random member and joins the halves
// back with the same separator. The returned tree replaces the input.
func stressRoundTrip(tree *avl.Tree[string], shadow map[int]string, rng *rand.Rand, report *StressReport) (*avl.Tree[string], error) {
	if tree.Empty() {
		return tree, nil
	}
	sep, _ := tree.Select(rng.IntN(tree.Size()))
	k, v := sep.Key(), sep.Value()

	low, high, err := tree.Split(k)
	if err != nil {
		return tree, fmt.Errorf("split %d: %w", k, err)
	}
	if low.Size()+high.Size()+1 != len(shadow) {
		return tree, fmt.Errorf("split %d: halves hold %d+%d keys, want %d",
			k, low.Size(), high.Size(), len(shadow)-1)
	}

	report.JoinCost += low.Join(avl.NewNode(k, v), high)
	report.RoundTrips++
	return low, nil
}

func verifyAgainst(tree *avl.Tree[string], shadow map[int]string) error {
	if err := tree.Check(); err != nil {
		return err
	}
	if tree.Size() != len(shadow) {
		return fmt.Errorf("size %d, want %d", tree.Size(), len(shadow))
	}

	want := make([]int, 0, len(shadow))
	for k := range shadow {
		want = append(want, k)
	}
	slices.Sort(want)
	if got := tree.KeysToArray(); !slices.Equal(got, want) {
		return fmt.Errorf("key listing diverged from shadow map")
	}
	return nil
}

func printStressReport(w io.Writer, r StressReport) {
	fmt.Fprintf(w, "✅ %s%d operations%s, %d invariant checks passed\n", Green, r.Ops, Reset, r.Checks)
	fmt.Fprintf(w, "   inserts     %8d   total cost %d (%.2f per op)\n", r.Inserts, r.InsertCost, perOp(r.InsertCost, r.Inserts))
	fmt.Fprintf(w, "   deletes     %8d   total cost %d (%.2f per op)\n", r.Deletes, r.DeleteCost, perOp(r.DeleteCost, r.Deletes))
	fmt.Fprintf(w, "   round trips %8d   total join cost %d\n", r.RoundTrips, r.JoinCost)
	fmt.Fprintf(w, "   searches    %8d\n", r.Searches)
	fmt.Fprintf(w, "   final size  %8d   max height %d\n", r.FinalSize, r.MaxHeight)
}

func perOp(total, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(total) / float64(n)
}
