// xudoku - a standard and diagonal Sudoku solving service.
// Licensed under the MIT license.  See the LICENSE file for details.

package puzzle

/*

Puzzle Geometries

A geometry is the constraint model for a 9x9 grid: the units (the
groups of nine cells that must each contain the digits 1-9 exactly
once) and, derived from them, the peers of every cell.  There are
two registered geometries, which differ only in their units: the
standard geometry has the 27 row/column/box units, and the diagonal
("X") geometry adds the two main diagonals for 29.

Geometries are immutable, computed once at package initialization,
and shared read-only by every solve.

*/

import (
	"fmt"
	"sort"
)

// Grid dimensions.  The whole module is specific to 9x9 puzzles
// with 3x3 boxes; these constants exist for readability, not
// configurability.
const (
	SideLength = 9
	TileLength = 3
	CellCount  = SideLength * SideLength
)

// Cell naming: rows are lettered, columns are numbered, so the
// top-left cell is A1 and the bottom-right is I9.  Cell indices
// run 0..80 in reading order.
const (
	rowLabels = "ABCDEFGHI"
	colLabels = "123456789"
)

// Registered geometry names.  The empty name is an alias for the
// standard geometry.
const (
	StandardGeometryName = "standard"
	DiagonalGeometryName = "diagonal"
)

// A Geometry holds the unit and peer tables for one grid variant.
// Units are kept in a fixed, deterministic order (rows, then
// columns, then boxes, then diagonals) because the sole-candidate
// rule processes them in that order and tests rely on reproducible
// traces.
type Geometry struct {
	name    string
	units   [][]int          // each unit is exactly 9 cell indices
	unitsOf [CellCount][]int // unit indices containing each cell
	peers   [CellCount][]int // ascending cell indices, excluding self
}

// Name returns the registered name of the geometry.
func (g *Geometry) Name() string { return g.name }

// UnitCount returns the number of units in the geometry: 27 for
// standard, 29 for diagonal.
func (g *Geometry) UnitCount() int { return len(g.units) }

// knownGeometries is the lookup table for the registered
// geometries.  Both are built once at init and never mutated.
var knownGeometries map[string]*Geometry

func init() {
	std := newGeometry(StandardGeometryName, false)
	diag := newGeometry(DiagonalGeometryName, true)
	knownGeometries = map[string]*Geometry{
		"":                   std,
		StandardGeometryName: std,
		DiagonalGeometryName: diag,
	}
}

// GeometryByName looks up a registered geometry.  The empty name
// means the standard geometry.
func GeometryByName(name string) (*Geometry, error) {
	g, ok := knownGeometries[name]
	if !ok {
		return nil, Error{
			Scope:     GeometryScope,
			Condition: UnknownGeometryCondition,
			Values:    ErrorData{name},
		}
	}
	return g, nil
}

// GeometryNames returns the registered geometry names, suitable
// for presenting to clients.
func GeometryNames() []string {
	return []string{StandardGeometryName, DiagonalGeometryName}
}

// cellIndex maps a (row, column) pair, both 0-based, to a cell
// index in reading order.
func cellIndex(row, col int) int {
	return row*SideLength + col
}

// CellName returns the A1..I9 name of a cell index.
func CellName(index int) string {
	return string(rowLabels[index/SideLength]) + string(colLabels[index%SideLength])
}

// CellIndex maps an A1..I9 cell name to its index, reporting
// whether the name is well formed.
func CellIndex(name string) (int, bool) {
	if len(name) != 2 {
		return 0, false
	}
	row := int(name[0] - 'A')
	col := int(name[1] - '1')
	if row < 0 || row >= SideLength || col < 0 || col >= SideLength {
		return 0, false
	}
	return cellIndex(row, col), true
}

// newGeometry builds the unit and peer tables for a grid variant.
// This is pure deterministic construction from the fixed 9x9
// shape; there are no failure modes.
func newGeometry(name string, diagonals bool) *Geometry {
	g := &Geometry{name: name}

	// row units
	for r := 0; r < SideLength; r++ {
		unit := make([]int, SideLength)
		for c := 0; c < SideLength; c++ {
			unit[c] = cellIndex(r, c)
		}
		g.units = append(g.units, unit)
	}
	// column units
	for c := 0; c < SideLength; c++ {
		unit := make([]int, SideLength)
		for r := 0; r < SideLength; r++ {
			unit[r] = cellIndex(r, c)
		}
		g.units = append(g.units, unit)
	}
	// box units
	for br := 0; br < TileLength; br++ {
		for bc := 0; bc < TileLength; bc++ {
			unit := make([]int, 0, SideLength)
			for r := br * TileLength; r < (br+1)*TileLength; r++ {
				for c := bc * TileLength; c < (bc+1)*TileLength; c++ {
					unit = append(unit, cellIndex(r, c))
				}
			}
			g.units = append(g.units, unit)
		}
	}
	// diagonal units: the main diagonal pairs row i with column i,
	// the anti-diagonal pairs row i with the mirrored column.
	if diagonals {
		main := make([]int, SideLength)
		anti := make([]int, SideLength)
		for i := 0; i < SideLength; i++ {
			main[i] = cellIndex(i, i)
			anti[i] = cellIndex(i, SideLength-1-i)
		}
		g.units = append(g.units, main, anti)
	}

	// per-cell unit membership
	for ui, unit := range g.units {
		for _, ci := range unit {
			g.unitsOf[ci] = append(g.unitsOf[ci], ui)
		}
	}

	// peers: union of all containing units, minus the cell itself
	for i := 0; i < CellCount; i++ {
		var member [CellCount]bool
		for _, ui := range g.unitsOf[i] {
			for _, ci := range g.units[ui] {
				if ci != i {
					member[ci] = true
				}
			}
		}
		for ci := 0; ci < CellCount; ci++ {
			if member[ci] {
				g.peers[i] = append(g.peers[i], ci)
			}
		}
		sort.Ints(g.peers[i]) // already ascending, but make it explicit
	}
	return g
}

// String implements Stringer for debugging output.
func (g *Geometry) String() string {
	return fmt.Sprintf("%s geometry (%d units)", g.name, len(g.units))
}
