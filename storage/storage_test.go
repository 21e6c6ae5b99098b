// xudoku - a standard and diagonal Sudoku solving service.
// Licensed under the MIT license.  See the LICENSE file for details.

package storage

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/gridkit/xudoku/puzzle"
)

func TestSolutionKey(t *testing.T) {
	grid := "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	key := solutionKey("diagonal", grid)
	if key != "SOL:diagonal:"+grid {
		t.Errorf("solution key is %q", key)
	}
	if key == solutionKey("standard", grid) {
		t.Errorf("geometry does not distinguish solution keys")
	}
}

func TestEntryKey(t *testing.T) {
	e := &Entry{ID: "abc-123"}
	if e.key() != "ENT:abc-123" {
		t.Errorf("entry key is %q", e.key())
	}
}

func TestEntryJSON(t *testing.T) {
	e := &Entry{
		ID:       "abc-123",
		Name:     "test entry",
		Geometry: puzzle.DiagonalGeometryName,
		Grid:     "9.1....8.8.5.7..4.2.4....6...7......5..............83.3..6......9................",
		Solution: "",
		Created:  time.Now().Round(time.Second),
	}
	bytes, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var back Entry
	if err := json.Unmarshal(bytes, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if back.ID != e.ID || back.Geometry != e.Geometry || back.Grid != e.Grid ||
		!back.Created.Equal(e.Created) {
		t.Errorf("round trip gave %+v", back)
	}
}

// connectForTest opens the backing stores, skipping the test when
// they are not configured in the environment.
func connectForTest(t *testing.T) context.Context {
	t.Helper()
	if os.Getenv("REDIS_URL") == "" || os.Getenv("DATABASE_URL") == "" {
		t.Skip("REDIS_URL and DATABASE_URL not set; skipping storage round trip")
	}
	ctx := context.Background()
	if _, _, err := Connect(ctx); err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	t.Cleanup(Close)
	return ctx
}

func TestSolutionCacheRoundTrip(t *testing.T) {
	connectForTest(t)
	grid := "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	solved, err := puzzle.Solve(puzzle.StandardGeometryName, grid)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if err := CacheSolution(puzzle.StandardGeometryName, grid, solved.Grid()); err != nil {
		t.Fatalf("cache write failed: %v", err)
	}
	solution, found, err := CachedSolution(puzzle.StandardGeometryName, grid)
	if err != nil {
		t.Fatalf("cache read failed: %v", err)
	}
	if !found || solution != solved.Grid() {
		t.Errorf("cache gave %q, %v", solution, found)
	}
	if _, found, err := CachedSolution(puzzle.DiagonalGeometryName, grid); err != nil || found {
		t.Errorf("cache hit under the wrong geometry: %v", err)
	}
}

func TestEntryRoundTrip(t *testing.T) {
	ctx := connectForTest(t)
	grid := "9.1....8.8.5.7..4.2.4....6...7......5..............83.3..6......9................"
	solved, err := puzzle.Solve(puzzle.DiagonalGeometryName, grid)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	e := &Entry{
		Name:     "storage test " + time.Now().Format(time.RFC3339Nano),
		Geometry: puzzle.DiagonalGeometryName,
		Grid:     grid,
		Solution: solved.Grid(),
	}
	if err := SaveEntry(ctx, e); err != nil {
		t.Skipf("save failed (entry may already exist): %v", err)
	}
	if e.ID == "" || e.Created.IsZero() {
		t.Errorf("save did not fill in bookkeeping: %+v", e)
	}

	loaded, err := LoadEntry(ctx, e.ID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Grid != e.Grid || loaded.Solution != e.Solution || loaded.Geometry != e.Geometry {
		t.Errorf("loaded entry %+v, expected %+v", loaded, e)
	}

	entries, err := ListEntries(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	found := false
	for _, le := range entries {
		if le.ID == e.ID {
			found = true
		}
	}
	if !found {
		t.Errorf("saved entry missing from listing")
	}

	if _, err := LoadEntry(ctx, "no-such-id"); err != ErrNotFound {
		t.Errorf("missing entry gave %v, expected ErrNotFound", err)
	}
}
