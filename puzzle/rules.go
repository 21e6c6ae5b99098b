// xudoku - a standard and diagonal Sudoku solving service.
// Licensed under the MIT license.  See the LICENSE file for details.

package puzzle

/*

Propagation rules

Three local deduction rules narrow the candidate sets:

  - eliminate: a solved cell's digit can't appear in any peer.
  - onlyChoice: if a unit has exactly one home for a digit, that
    cell gets the digit.
  - nakedTwins: two cells of a unit sharing the same two-candidate
    pair claim those digits; the rest of the unit loses them.

Each rule performs a single round.  reduce runs the three in a
fixed order until a full pass leaves the board unchanged, which is
guaranteed to terminate because rules only ever remove candidates.

Rules may drive a cell's candidate set to empty.  That's not an
error here: a contradiction is a normal, expected state that the
search layer detects and treats as a dead branch.

*/

// eliminate removes every solved cell's digit from the candidate
// sets of all its peers.  Cells solved by this round's removals
// are picked up on the next pass, not this one: the set of solved
// cells is snapshotted before any removal.
func (b *Board) eliminate() {
	var solved [CellCount]int // digit per solved cell, 0 otherwise
	for i := 0; i < CellCount; i++ {
		if d, ok := b.cells[i].sole(); ok {
			solved[i] = d
		}
	}
	for i := 0; i < CellCount; i++ {
		d := solved[i]
		if d == 0 {
			continue
		}
		for _, pi := range b.geo.peers[i] {
			b.cells[pi] = b.cells[pi].remove(d)
		}
	}
}

// onlyChoice assigns a digit to a cell whenever that cell is the
// only one in some unit that still has the digit as a candidate.
// Units are processed in the geometry's fixed order and digits in
// ascending order; the rule is confluent, so the order affects
// only the trace, not the result.
func (b *Board) onlyChoice() {
	for _, unit := range b.geo.units {
		for d := 1; d <= SideLength; d++ {
			place, places := -1, 0
			for _, ci := range unit {
				if b.cells[ci].has(d) {
					place = ci
					places++
					if places > 1 {
						break
					}
				}
			}
			if places == 1 {
				b.cells[place] = digitBit(d)
			}
		}
	}
}

// nakedTwins finds two cells of a unit holding an identical
// two-candidate pair and removes both digits from every other cell
// of the unit.  Three or more cells sharing the same pair is an
// over-constrained unit; the rule doesn't fire on it and leaves
// the contradiction for elimination to surface as an empty set.
func (b *Board) nakedTwins() {
	for _, unit := range b.geo.units {
		var pairCount map[digits]int
		for _, ci := range unit {
			if b.cells[ci].count() == 2 {
				if pairCount == nil {
					pairCount = make(map[digits]int)
				}
				pairCount[b.cells[ci]]++
			}
		}
		for pair, count := range pairCount {
			if count != 2 {
				continue
			}
			for _, ci := range unit {
				if b.cells[ci] != pair {
					b.cells[ci] &^= pair
				}
			}
		}
	}
}

// Reduce applies eliminate, onlyChoice, and nakedTwins, in that
// order, until one full pass changes no cell's candidate set.  The
// fixpoint test is structural equality of the cells array.  Reduce
// alone solves many easy puzzles; harder ones need the search on
// top of it.
func (b *Board) Reduce() {
	for {
		before := b.cells
		b.eliminate()
		b.onlyChoice()
		b.nakedTwins()
		if b.cells == before {
			return
		}
	}
}
