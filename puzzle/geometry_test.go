// xudoku - a standard and diagonal Sudoku solving service.
// Licensed under the MIT license.  See the LICENSE file for details.

package puzzle

import (
	"reflect"
	"testing"
)

func TestGeometryByName(t *testing.T) {
	testcases := []struct {
		name     string
		resolved string
		units    int
	}{
		{StandardGeometryName, StandardGeometryName, 27},
		{DiagonalGeometryName, DiagonalGeometryName, 29},
		{"", StandardGeometryName, 27},
	}
	for i, tc := range testcases {
		geo, err := GeometryByName(tc.name)
		if err != nil {
			t.Fatalf("case %d: lookup of %q failed: %v", i, tc.name, err)
		}
		if geo.Name() != tc.resolved {
			t.Errorf("case %d: name %q, expected %q", i, geo.Name(), tc.resolved)
		}
		if geo.UnitCount() != tc.units {
			t.Errorf("case %d: %d units, expected %d", i, geo.UnitCount(), tc.units)
		}
	}
	if _, err := GeometryByName("hypercube"); err == nil {
		t.Errorf("lookup of unregistered geometry succeeded")
	} else if e, ok := err.(Error); !ok || e.Scope != GeometryScope || e.Condition != UnknownGeometryCondition {
		t.Errorf("unregistered geometry gave wrong error: %v", err)
	}
}

func TestGeometryNames(t *testing.T) {
	names := GeometryNames()
	expected := []string{StandardGeometryName, DiagonalGeometryName}
	if !reflect.DeepEqual(names, expected) {
		t.Errorf("geometry names %v, expected %v", names, expected)
	}
	for _, name := range names {
		if _, err := GeometryByName(name); err != nil {
			t.Errorf("advertised geometry %q not registered: %v", name, err)
		}
	}
}

func TestGeometryUnits(t *testing.T) {
	for _, name := range GeometryNames() {
		geo, err := GeometryByName(name)
		if err != nil {
			t.Fatalf("lookup of %q failed: %v", name, err)
		}
		var membership [CellCount]int
		for ui, unit := range geo.units {
			if len(unit) != SideLength {
				t.Errorf("%s: unit %d has %d cells", name, ui, len(unit))
			}
			var seen [CellCount]bool
			for _, ci := range unit {
				if ci < 0 || ci >= CellCount {
					t.Fatalf("%s: unit %d holds cell index %d", name, ui, ci)
				}
				if seen[ci] {
					t.Errorf("%s: unit %d repeats cell %s", name, ui, CellName(ci))
				}
				seen[ci] = true
				membership[ci]++
			}
		}
		// every cell sits in a row, a column, and a box; diagonal
		// cells of the diagonal geometry sit in one or two more
		for i := 0; i < CellCount; i++ {
			min, max := 3, 3
			if name == DiagonalGeometryName {
				max = 5
			}
			if membership[i] < min || membership[i] > max {
				t.Errorf("%s: cell %s is in %d units", name, CellName(i), membership[i])
			}
			if len(geo.unitsOf[i]) != membership[i] {
				t.Errorf("%s: cell %s unit table has %d entries, expected %d",
					name, CellName(i), len(geo.unitsOf[i]), membership[i])
			}
		}
	}
}

func TestGeometryPeers(t *testing.T) {
	testcases := []struct {
		geometry string
		cell     string
		peers    int
	}{
		{StandardGeometryName, "A1", 20},
		{StandardGeometryName, "E5", 20},
		{StandardGeometryName, "I9", 20},
		{DiagonalGeometryName, "A1", 26},
		{DiagonalGeometryName, "A9", 26},
		{DiagonalGeometryName, "E5", 32},
		{DiagonalGeometryName, "A2", 20},
	}
	for i, tc := range testcases {
		geo, err := GeometryByName(tc.geometry)
		if err != nil {
			t.Fatalf("case %d: lookup of %q failed: %v", i, tc.geometry, err)
		}
		ci, ok := CellIndex(tc.cell)
		if !ok {
			t.Fatalf("case %d: bad cell name %q", i, tc.cell)
		}
		if len(geo.peers[ci]) != tc.peers {
			t.Errorf("case %d: %s cell %s has %d peers, expected %d",
				i, tc.geometry, tc.cell, len(geo.peers[ci]), tc.peers)
		}
	}
}

func TestGeometryPeerSymmetry(t *testing.T) {
	for _, name := range GeometryNames() {
		geo, _ := GeometryByName(name)
		for i := 0; i < CellCount; i++ {
			last := -1
			for _, pi := range geo.peers[i] {
				if pi == i {
					t.Errorf("%s: cell %s is its own peer", name, CellName(i))
				}
				if pi <= last {
					t.Errorf("%s: peers of %s not ascending", name, CellName(i))
				}
				last = pi
				back := false
				for _, bi := range geo.peers[pi] {
					if bi == i {
						back = true
						break
					}
				}
				if !back {
					t.Errorf("%s: %s peers %s but not vice versa",
						name, CellName(i), CellName(pi))
				}
			}
		}
	}
}

func TestCellNames(t *testing.T) {
	testcases := []struct {
		index int
		name  string
	}{
		{0, "A1"},
		{8, "A9"},
		{40, "E5"},
		{72, "I1"},
		{80, "I9"},
	}
	for i, tc := range testcases {
		if name := CellName(tc.index); name != tc.name {
			t.Errorf("case %d: CellName(%d) = %q, expected %q", i, tc.index, name, tc.name)
		}
		index, ok := CellIndex(tc.name)
		if !ok || index != tc.index {
			t.Errorf("case %d: CellIndex(%q) = %d, %v, expected %d, true",
				i, tc.name, index, ok, tc.index)
		}
	}
	for i, bad := range []string{"", "A", "A10", "J1", "A0", "11", "a1"} {
		if _, ok := CellIndex(bad); ok {
			t.Errorf("case %d: CellIndex(%q) accepted a malformed name", i, bad)
		}
	}
}
