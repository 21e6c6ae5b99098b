// xudoku - a standard and diagonal Sudoku solving service.
// Licensed under the MIT license.  See the LICENSE file for details.

package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gridkit/xudoku/puzzle"
)

const (
	testGrid     = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	testSolution = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
)

// runCommand executes the command tree with the given arguments
// and returns what it printed.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCommandTree(t *testing.T) {
	root := newRootCommand()
	expected := map[string]bool{"solve": false, "serve": false, "db": false}
	for _, sub := range root.Commands() {
		if _, ok := expected[sub.Name()]; ok {
			expected[sub.Name()] = true
		}
	}
	for name, found := range expected {
		if !found {
			t.Errorf("subcommand %q is not registered", name)
		}
	}
}

func TestSolveCommand(t *testing.T) {
	out, err := runCommand(t, "solve", testGrid)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if !strings.Contains(out, "5 3 4 | 6 7 8 | 9 1 2") {
		t.Errorf("solved board missing from output:\n%s", out)
	}
}

func TestSolveCommandDiagonal(t *testing.T) {
	grid := "9.1....8.8.5.7..4.2.4....6...7......5..............83.3..6......9................"
	out, err := runCommand(t, "solve", "--geometry", "diagonal", grid)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if strings.Contains(out, "has no") {
		t.Fatalf("diagonal sample did not solve:\n%s", out)
	}
	if !strings.Contains(out, "------+-------+------") {
		t.Errorf("board rendering missing from output:\n%s", out)
	}
}

func TestSolveCommandNoSolution(t *testing.T) {
	grid := "55" + strings.Repeat(".", 79)
	out, err := runCommand(t, "solve", grid)
	if err != nil {
		t.Fatalf("unsolvable grid reported as command failure: %v", err)
	}
	if !strings.Contains(out, "has no standard solution") {
		t.Errorf("failure not reported:\n%s", out)
	}

	out, err = runCommand(t, "solve", "--candidates", grid)
	if err != nil {
		t.Fatalf("solve with candidates failed: %v", err)
	}
	if !strings.Contains(out, "has no standard solution") {
		t.Errorf("failure not reported:\n%s", out)
	}
}

func TestSolveCommandBadGrid(t *testing.T) {
	if _, err := runCommand(t, "solve", "not a grid"); err == nil {
		t.Errorf("malformed grid accepted")
	}
	if _, err := runCommand(t, "solve", "--geometry", "hypercube", testGrid); err == nil {
		t.Errorf("unknown geometry accepted")
	}
}

func TestSolveCommandSamples(t *testing.T) {
	out, err := runCommand(t, "solve")
	if err != nil {
		t.Fatalf("sample run failed: %v", err)
	}
	for _, sample := range sampleGrids {
		if !strings.Contains(out, sample.Name) {
			t.Errorf("sample %q missing from output", sample.Name)
		}
	}
	if strings.Contains(out, "has no") {
		t.Errorf("a built-in sample failed to solve:\n%s", out)
	}
}

func TestSolveEndpointWithoutStore(t *testing.T) {
	handler := solveHandler(false)

	req := httptest.NewRequest("POST", "/api/solve",
		strings.NewReader(`{"grid": "`+testGrid+`"}`))
	w := httptest.NewRecorder()
	handler(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, expected %d", w.Code, http.StatusOK)
	}
	var result puzzle.SolveResult
	if e := json.NewDecoder(w.Body).Decode(&result); e != nil {
		t.Fatalf("response decode failed: %v", e)
	}
	if !result.Solved || result.Solution != testSolution {
		t.Errorf("response: %+v", result)
	}

	req = httptest.NewRequest("GET", "/api/solve", nil)
	w = httptest.NewRecorder()
	handler(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("GET gave status %d, expected %d", w.Code, http.StatusBadRequest)
	}
}

func TestGeometriesEndpoint(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/geometries", nil)
	w := httptest.NewRecorder()
	geometriesHandler(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, expected %d", w.Code, http.StatusOK)
	}
	var names []string
	if e := json.NewDecoder(w.Body).Decode(&names); e != nil {
		t.Fatalf("response decode failed: %v", e)
	}
	if len(names) != 2 {
		t.Errorf("geometry list: %v", names)
	}
}

func TestWriteRequestError(t *testing.T) {
	w := httptest.NewRecorder()
	_, err := puzzle.Solve(puzzle.StandardGeometryName, "55"+strings.Repeat(".", 79))
	if err == nil {
		t.Fatal("unsolvable grid solved")
	}
	writeRequestError(w, err)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("no-solution gave status %d, expected %d",
			w.Code, http.StatusUnprocessableEntity)
	}

	w = httptest.NewRecorder()
	_, err = puzzle.Solve("hypercube", testGrid)
	writeRequestError(w, err)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad geometry gave status %d, expected %d",
			w.Code, http.StatusBadRequest)
	}
}

func TestSamplesAreWellFormed(t *testing.T) {
	for i, sample := range sampleGrids {
		geo, err := puzzle.GeometryByName(sample.Geometry)
		if err != nil {
			t.Errorf("case %d: bad geometry %q", i, sample.Geometry)
			continue
		}
		if _, err := puzzle.Parse(geo, sample.Grid); err != nil {
			t.Errorf("case %d: sample %q doesn't parse: %v", i, sample.Name, err)
		}
	}
}
