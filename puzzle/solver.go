// xudoku - a standard and diagonal Sudoku solving service.
// Licensed under the MIT license.  See the LICENSE file for details.

package puzzle

/*

Sudoku puzzle solver

The solver is depth-first search with constraint propagation as the
pruning step between branch points:

1. Reduce the board to a propagation fixpoint.

2. If the board is solved, done.

3. If the board is contradicted (some cell has no candidates), this
branch is dead.

4. Otherwise pick the unsolved cell with the fewest remaining
candidates (reading order breaks ties) and try each of its digits
in ascending order, recursing on a private copy of the board for
each.  The first branch that succeeds wins; if they all fail, this
node fails.

Recursion depth is bounded by the 81 cells, so the call stack is
never a concern.  Boards are copied at every branch, which is what
keeps sibling branches from interfering with each other.

*/

// branchCell returns the index of the unsolved cell with the
// fewest remaining candidates, or -1 when every cell is already
// down to a single candidate.  Ties go to the first such cell in
// reading order.  A two-candidate cell can't be beaten, so the
// scan stops early on one.
func (b *Board) branchCell() int {
	best, bestCount := -1, SideLength+1
	for i := 0; i < CellCount; i++ {
		count := b.cells[i].count()
		if count < 2 {
			continue
		}
		if count == 2 {
			return i
		}
		if count < bestCount {
			best, bestCount = i, count
		}
	}
	return best
}

// search runs the reduce/branch state machine on a board it owns,
// returning the solved board and true, or nil and false when every
// branch below this node fails.
func search(b *Board) (*Board, bool) {
	b.Reduce()
	if b.Solved() {
		return b, true
	}
	if b.Contradicted() {
		return nil, false
	}
	ci := b.branchCell()
	if ci < 0 {
		// fully assigned but some unit is invalid
		return nil, false
	}
	for _, d := range b.cells[ci].list() {
		next := b.Copy()
		next.cells[ci] = digitBit(d)
		if solved, ok := search(next); ok {
			return solved, true
		}
	}
	return nil, false
}

// Solve searches for a solution to the board.  The receiver is
// copied first, so it is not altered by the search.  When no
// solution exists the returned error satisfies IsNoSolution; that
// is an ordinary outcome, not a fault.
func (b *Board) Solve() (*Board, error) {
	solved, ok := search(b.Copy())
	if !ok {
		return nil, noSolutionError()
	}
	return solved, nil
}

// Solve parses a grid string against the named geometry and
// searches for a solution.  It is the package's top-level entry
// point: parse, then search, nothing else.
func Solve(geometry, grid string) (*Board, error) {
	geo, err := GeometryByName(geometry)
	if err != nil {
		return nil, err
	}
	b, err := Parse(geo, grid)
	if err != nil {
		return nil, err
	}
	return b.Solve()
}
