// xudoku - a standard and diagonal Sudoku solving service.
// Licensed under the MIT license.  See the LICENSE file for details.

package puzzle

import (
	"fmt"
	"strings"
)

/*

Pretty-printed boards, for the CLI and for debugging.

*/

// String gives a pretty-printed view of the board's values, with
// box separators every three rows and columns and '.' for unsolved
// cells.
func (b *Board) String() string {
	if b == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("  ")
	for c := 0; c < SideLength; c++ {
		if c > 0 && c%TileLength == 0 {
			sb.WriteString("  ")
		}
		fmt.Fprintf(&sb, " %c", colLabels[c])
	}
	sb.WriteByte('\n')
	for r := 0; r < SideLength; r++ {
		if r > 0 && r%TileLength == 0 {
			sb.WriteString("   ------+-------+------\n")
		}
		fmt.Fprintf(&sb, "%c ", rowLabels[r])
		for c := 0; c < SideLength; c++ {
			if c > 0 && c%TileLength == 0 {
				sb.WriteString(" |")
			}
			cell := b.cells[cellIndex(r, c)]
			if d, ok := cell.sole(); ok {
				fmt.Fprintf(&sb, " %d", d)
			} else if cell == 0 {
				sb.WriteString(" !")
			} else {
				sb.WriteString(" .")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// CandidatesString gives a view of the full candidate sets, each
// cell padded to the width of the widest set.  Useful when a board
// gets stuck mid-propagation.
func (b *Board) CandidatesString() string {
	if b == nil {
		return ""
	}
	width := 1
	for i := 0; i < CellCount; i++ {
		if n := b.cells[i].count(); n > width {
			width = n
		}
	}
	var sb strings.Builder
	for r := 0; r < SideLength; r++ {
		if r > 0 && r%TileLength == 0 {
			sep := strings.Repeat("-", (width+1)*TileLength)
			sb.WriteString(sep + "+" + sep + "+" + sep + "\n")
		}
		for c := 0; c < SideLength; c++ {
			if c > 0 && c%TileLength == 0 {
				sb.WriteString("| ")
			}
			cell := b.cells[cellIndex(r, c)]
			fmt.Fprintf(&sb, "%-*s ", width, cell.String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
