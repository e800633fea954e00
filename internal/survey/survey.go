// Package survey fires a ray from every valid border cell of a board and
// summarises the results. It is the answer key for a layout.
package survey

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/lox/blackbox/internal/game"
)

// Report holds one trace per entry cell, in game.Board.Entries order.
type Report struct {
	Results   []game.Result
	Absorbed  int
	Reflected int
	Exited    int // exits through a different border cell
}

// Run traces every entry of b using up to workers goroutines. A workers value
// below one uses GOMAXPROCS.
func Run(ctx context.Context, b *game.Board, workers int) (*Report, error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	entries := b.Entries()
	results := make([]game.Result, len(entries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, entry := range entries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			dir, err := b.EntryDirection(entry)
			if err != nil {
				return err
			}
			results[i] = game.Trace(b, entry, dir)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("survey: %w", err)
	}

	report := &Report{Results: results}
	for _, r := range results {
		switch {
		case r.Outcome.Kind == game.Absorbed:
			report.Absorbed++
		case r.Outcome.IsReflection(r.Entry):
			report.Reflected++
		default:
			report.Exited++
		}
	}
	return report, nil
}

// Lookup returns the result for entry.
func (r *Report) Lookup(entry game.Coord) (game.Result, bool) {
	for _, res := range r.Results {
		if res.Entry == entry {
			return res, true
		}
	}
	return game.Result{}, false
}

// Pairs returns each exiting ray once, as entry and exit ordered so that the
// lower cell comes first, sorted by that cell.
func (r *Report) Pairs() [][2]game.Coord {
	seen := make(map[[2]game.Coord]bool)
	var pairs [][2]game.Coord
	for _, res := range r.Results {
		exit, ok := res.Outcome.ExitPoint()
		if !ok || exit == res.Entry {
			continue
		}
		p := [2]game.Coord{res.Entry, exit}
		if less(exit, res.Entry) {
			p = [2]game.Coord{exit, res.Entry}
		}
		if !seen[p] {
			seen[p] = true
			pairs = append(pairs, p)
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return less(pairs[i][0], pairs[j][0])
		}
		return less(pairs[i][1], pairs[j][1])
	})
	return pairs
}

// String renders the report as a table with a summary line.
func (r *Report) String() string {
	var sb strings.Builder
	for _, res := range r.Results {
		var outcome string
		switch {
		case res.Outcome.Kind == game.Absorbed:
			outcome = "absorbed"
		case res.Outcome.IsReflection(res.Entry):
			outcome = "reflected"
		default:
			outcome = "exits at " + res.Outcome.Exit.String()
		}
		fmt.Fprintf(&sb, "%-7s %-5s %s\n", res.Entry, res.Direction, outcome)
	}
	fmt.Fprintf(&sb, "%d absorbed, %d reflected, %d exited", r.Absorbed, r.Reflected, r.Exited)
	return sb.String()
}

func less(a, b game.Coord) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}
