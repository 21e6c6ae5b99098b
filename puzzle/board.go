// xudoku - a standard and diagonal Sudoku solving service.
// Licensed under the MIT license.  See the LICENSE file for details.

package puzzle

/*

Board representation

A board is one candidate set per cell, held in a fixed array of 81
nine-bit digit sets.  The array is a value: copying a Board copies
all its cells, which is what gives each search branch its own
private state, and two snapshots of the cells array compare with ==
for the propagation fixpoint check.

*/

import (
	"math/bits"
	"strings"
)

/*

Digit sets

*/

// digits is a set of candidate digits 1-9, one bit per digit (bit
// 0 is digit 1).  The zero value is the empty set, which on a
// board means a contradicted cell.
type digits uint16

// allDigits has every digit 1-9 set; it is the candidate set of a
// blank cell before any propagation.
const allDigits digits = 1<<SideLength - 1

// digitBit returns the singleton set for a digit.
func digitBit(d int) digits {
	return 1 << (d - 1)
}

// has reports whether the set contains a digit.
func (ds digits) has(d int) bool {
	return ds&digitBit(d) != 0
}

// count returns the number of digits in the set.
func (ds digits) count() int {
	return bits.OnesCount16(uint16(ds))
}

// sole returns the set's only digit, if it has exactly one.
func (ds digits) sole() (int, bool) {
	if ds.count() != 1 {
		return 0, false
	}
	return bits.TrailingZeros16(uint16(ds)) + 1, true
}

// remove returns the set without a digit.
func (ds digits) remove(d int) digits {
	return ds &^ digitBit(d)
}

// list returns the digits of the set in ascending order.
func (ds digits) list() []int {
	out := make([]int, 0, ds.count())
	for d := 1; d <= SideLength; d++ {
		if ds.has(d) {
			out = append(out, d)
		}
	}
	return out
}

// String renders the set as its ascending digit characters, so the
// full set is "123456789" and the empty set is "".
func (ds digits) String() string {
	var sb strings.Builder
	for d := 1; d <= SideLength; d++ {
		if ds.has(d) {
			sb.WriteByte(byte('0' + d))
		}
	}
	return sb.String()
}

/*

Boards

*/

// Blank is the character that marks an unknown cell in grid
// strings; '0' is accepted on input as well.
const Blank = '.'

// A Board is a puzzle in progress: a geometry plus one non-empty
// candidate set per cell.  A cell is solved when its set has
// exactly one digit; the board is contradicted when any set is
// empty.  Boards are created once per solve attempt and mutated in
// place by propagation; search copies them at every branch.
type Board struct {
	geo   *Geometry
	cells [CellCount]digits
}

// Parse creates a Board from an 81-character grid string read in
// reading order, where '1'-'9' are fixed digits and '.' or '0'
// mark blanks.  Anything else is rejected.
func Parse(geo *Geometry, grid string) (*Board, error) {
	if len(grid) != CellCount {
		return nil, gridError(WrongLengthCondition, len(grid), CellCount)
	}
	b := &Board{geo: geo}
	for i := 0; i < CellCount; i++ {
		switch ch := grid[i]; {
		case ch >= '1' && ch <= '9':
			b.cells[i] = digitBit(int(ch - '0'))
		case ch == Blank || ch == '0':
			b.cells[i] = allDigits
		default:
			return nil, gridError(InvalidCharacterCondition, string(ch), CellName(i))
		}
	}
	return b, nil
}

// Copy returns an independent copy of the board.  The geometry is
// shared (it is immutable); the cells array copies by value.
func (b *Board) Copy() *Board {
	nb := *b
	return &nb
}

// Geometry returns the board's constraint model.
func (b *Board) Geometry() *Geometry { return b.geo }

// Grid returns the board in grid-string form, with '.' for every
// cell that is not yet solved.
func (b *Board) Grid() string {
	out := make([]byte, CellCount)
	for i := 0; i < CellCount; i++ {
		if d, ok := b.cells[i].sole(); ok {
			out[i] = byte('0' + d)
		} else {
			out[i] = Blank
		}
	}
	return string(out)
}

// Values returns the board as a slice of cell values in reading
// order, 0 for every cell that is not yet solved.
func (b *Board) Values() []int {
	out := make([]int, CellCount)
	for i := 0; i < CellCount; i++ {
		if d, ok := b.cells[i].sole(); ok {
			out[i] = d
		}
	}
	return out
}

// Candidates returns the candidate set of a cell as an ascending
// digit string, for display and tests.
func (b *Board) Candidates(index int) string {
	return b.cells[index].String()
}

// CandidateCount returns the total number of candidates remaining
// across all cells.  A solved board has exactly 81.
func (b *Board) CandidateCount() int {
	total := 0
	for i := 0; i < CellCount; i++ {
		total += b.cells[i].count()
	}
	return total
}

// Contradicted reports whether any cell has run out of candidates,
// which makes the board a dead search branch.
func (b *Board) Contradicted() bool {
	for i := 0; i < CellCount; i++ {
		if b.cells[i] == 0 {
			return true
		}
	}
	return false
}

// Solved reports whether the board is a complete, valid solution:
// every cell solved and every unit's nine digits a permutation of
// 1-9.
func (b *Board) Solved() bool {
	for _, unit := range b.geo.units {
		var seen digits
		for _, ci := range unit {
			d, ok := b.cells[ci].sole()
			if !ok || seen.has(d) {
				return false
			}
			seen |= digitBit(d)
		}
		if seen != allDigits {
			return false
		}
	}
	return true
}
