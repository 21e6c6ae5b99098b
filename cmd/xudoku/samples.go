// xudoku - a standard and diagonal Sudoku solving service.
// Licensed under the MIT license.  See the LICENSE file for details.

package main

import "github.com/gridkit/xudoku/puzzle"

// The built-in samples that `xudoku solve` runs when given no
// grids.  The same library is what `xudoku db init` seeds into the
// database.
var sampleGrids = []struct {
	Name     string
	Geometry string
	Grid     string
}{
	{
		Name:     "classic one-star",
		Geometry: puzzle.StandardGeometryName,
		Grid:     "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79",
	},
	{
		Name:     "classic two-star",
		Geometry: puzzle.StandardGeometryName,
		Grid:     "..3.2.6..9..3.5..1..18.64....81.29..7.......8..67.82....26.95..8..2.3..9..5.1.3..",
	},
	{
		Name:     "diagonal opener",
		Geometry: puzzle.DiagonalGeometryName,
		Grid:     "9.1....8.8.5.7..4.2.4....6...7......5..............83.3..6......9................",
	},
	{
		Name:     "diagonal sparse",
		Geometry: puzzle.DiagonalGeometryName,
		Grid:     "2.............62....1....7...6..8...3...9...7...6..4...4....8....52.............3",
	},
	{
		Name:     "diagonal corners",
		Geometry: puzzle.DiagonalGeometryName,
		Grid:     ".......21.9...67.....27....8.1.679.............431.6.8....32.....75...1.48.......",
	},
	{
		Name:     "diagonal fifteen clues",
		Geometry: puzzle.DiagonalGeometryName,
		Grid:     "..7.....11..3..74...........9..3..1.....................3....7....8...6.7..2..95.",
	},
	{
		Name:     "diagonal complete",
		Geometry: puzzle.DiagonalGeometryName,
		Grid:     "267584391159362748834917526496738215312495687578621439643159872925873164781246953",
	},
}
