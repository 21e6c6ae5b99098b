// xudoku - a standard and diagonal Sudoku solving service.
// Licensed under the MIT license.  See the LICENSE file for details.

package dbprep

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gridkit/xudoku/puzzle"
)

/*

sample puzzle library

*/

type dataFunction func(context.Context, pgx.Tx) error

var (
	upFunctions = []dataFunction{
		insertSamples,
	}
	downFunctions = []dataFunction{
		deleteSamples,
	}
)

// DataUp loads the sample puzzles into the database.  Run this
// after the schema is up.
func DataUp() error {
	return applyFunctions(upFunctions)
}

// DataDown removes the sample puzzles from the database.  Run this
// before the schema comes down.
func DataDown() error {
	return applyFunctions(downFunctions)
}

// applyFunctions runs each dataFunction in its own transaction, so
// later ones can rely on the effect of earlier ones having been
// committed.
func applyFunctions(fns []dataFunction) error {
	ctx := context.Background()
	conn, err := pgx.Connect(ctx, DatabaseURL())
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	runFunc := func(fn dataFunction) error {
		tx, err := conn.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)
		if err := fn(ctx, tx); err != nil {
			return err
		}
		return tx.Commit(ctx)
	}

	for i, fn := range fns {
		if err := runFunc(fn); err != nil {
			return fmt.Errorf("data function %d failed: %v", i, err)
		}
	}
	return nil
}

// The sample library: a couple of classic standard puzzles and the
// diagonal puzzles the solver was built around.  Solutions are
// computed at load time rather than stored in the source, which
// keeps the table and the solver honest with each other.
var samplePuzzles = []struct {
	Name     string
	Geometry string
	Grid     string
}{
	{
		Name:     "sample: classic one-star",
		Geometry: puzzle.StandardGeometryName,
		Grid:     "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79",
	},
	{
		Name:     "sample: classic two-star",
		Geometry: puzzle.StandardGeometryName,
		Grid:     "..3.2.6..9..3.5..1..18.64....81.29..7.......8..67.82....26.95..8..2.3..9..5.1.3..",
	},
	{
		Name:     "sample: diagonal opener",
		Geometry: puzzle.DiagonalGeometryName,
		Grid:     "9.1....8.8.5.7..4.2.4....6...7......5..............83.3..6......9................",
	},
	{
		Name:     "sample: diagonal sparse",
		Geometry: puzzle.DiagonalGeometryName,
		Grid:     "2.............62....1....7...6..8...3...9...7...6..4...4....8....52.............3",
	},
	{
		Name:     "sample: diagonal corners",
		Geometry: puzzle.DiagonalGeometryName,
		Grid:     ".......21.9...67.....27....8.1.679.............431.6.8....32.....75...1.48.......",
	},
	{
		Name:     "sample: diagonal fifteen clues",
		Geometry: puzzle.DiagonalGeometryName,
		Grid:     "..7.....11..3..74...........9..3..1.....................3....7....8...6.7..2..95.",
	},
	{
		Name:     "sample: diagonal complete",
		Geometry: puzzle.DiagonalGeometryName,
		Grid:     "267584391159362748834917526496738215312495687578621439643159872925873164781246953",
	},
}

// insertSamples solves and stores the sample library.  Stored
// puzzles are unique per (geometry, grid), so reloading over an
// existing library is a no-op.
func insertSamples(ctx context.Context, tx pgx.Tx) error {
	for _, sample := range samplePuzzles {
		solved, err := puzzle.Solve(sample.Geometry, sample.Grid)
		if err != nil {
			return fmt.Errorf("sample %q doesn't solve: %v", sample.Name, err)
		}
		_, err = tx.Exec(ctx,
			"INSERT INTO puzzles (puzzleId, name, geometry, grid, solution, created) "+
				"VALUES ($1, $2, $3, $4, $5, $6) "+
				"ON CONFLICT (geometry, grid) DO NOTHING",
			uuid.NewString(), sample.Name, sample.Geometry, sample.Grid,
			solved.Grid(), time.Now())
		if err != nil {
			return fmt.Errorf("couldn't insert sample %q: %v", sample.Name, err)
		}
	}
	return nil
}

// deleteSamples removes exactly the sample library, leaving
// user-saved puzzles alone.
func deleteSamples(ctx context.Context, tx pgx.Tx) error {
	names := make([]string, len(samplePuzzles))
	for i, sample := range samplePuzzles {
		names[i] = sample.Name
	}
	if _, err := tx.Exec(ctx,
		"DELETE FROM puzzles WHERE name = any($1)", names); err != nil {
		return fmt.Errorf("couldn't delete samples: %v", err)
	}
	return nil
}
