// xudoku - a standard and diagonal Sudoku solving service.
// Licensed under the MIT license.  See the LICENSE file for details.

package puzzle

import (
	"encoding/json"
	"net/http"
)

/*

Web service wrappers

The handlers here are the storage-free HTTP surface of the solver:
decode, solve, encode.  Servers that want caching or persistence
wrap the same request/response types and reuse WriteJSON/WriteError
(see cmd/xudoku's serve command).

*/

// A SolveRequest asks for one grid to be solved against one
// geometry.  An empty geometry name means standard.
type SolveRequest struct {
	Geometry string `json:"geometry,omitempty"`
	Grid     string `json:"grid"`
}

// A SolveResult reports a completed solve.  Solved is false and
// Solution empty for the ordinary no-solution outcome; request
// errors never produce a SolveResult at all.
type SolveResult struct {
	Geometry string `json:"geometry"`
	Grid     string `json:"grid"`
	Solved   bool   `json:"solved"`
	Solution string `json:"solution,omitempty"`
	Values   []int  `json:"values,omitempty"`
}

// SolveHandler is a POST handler that reads a JSON-encoded
// SolveRequest from the request body and responds with a
// SolveResult (200), or with the Error that made the request
// unservable (400).  The result is also returned to the golang
// caller so wrapping servers can cache it; a no-solution outcome
// is a 200 with Solved false, never an error status.
func SolveHandler(w http.ResponseWriter, r *http.Request) (*SolveResult, error) {
	var req SolveRequest
	if e := json.NewDecoder(r.Body).Decode(&req); e != nil {
		err := Error{
			Scope:     RequestScope,
			Condition: GeneralCondition,
			Values:    ErrorData{e.Error()},
		}
		err.Message = err.Error()
		return nil, WriteJSON(err, http.StatusBadRequest, w)
	}
	result, err := DoSolve(&req)
	if err != nil {
		werr, ok := err.(Error)
		if !ok {
			werr = Error{
				Scope:     InternalScope,
				Condition: GeneralCondition,
				Values:    ErrorData{err.Error()},
			}
		}
		werr.Message = werr.Error()
		return nil, WriteJSON(werr, http.StatusBadRequest, w)
	}
	return result, WriteJSON(result, http.StatusOK, w)
}

// DoSolve runs a SolveRequest and shapes the outcome as a
// SolveResult.  No-solution comes back as a result with Solved
// false; only malformed requests produce errors.
func DoSolve(req *SolveRequest) (*SolveResult, error) {
	result := &SolveResult{Geometry: req.Geometry, Grid: req.Grid}
	if result.Geometry == "" {
		result.Geometry = StandardGeometryName
	}
	solved, err := Solve(req.Geometry, req.Grid)
	if err != nil {
		if IsNoSolution(err) {
			return result, nil
		}
		return nil, err
	}
	result.Solved = true
	result.Solution = solved.Grid()
	result.Values = solved.Values()
	return result, nil
}

// GeometriesHandler responds with the registered geometry names.
func GeometriesHandler(w http.ResponseWriter, r *http.Request) error {
	return WriteJSON(GeometryNames(), http.StatusOK, w)
}

// WriteJSON encodes and sends a client response.  If the handler
// is sending an Error, that same Error is returned to the caller;
// if encoding itself fails (which should never happen), the client
// gets a 500 and the caller gets the encoding failure.
func WriteJSON(obj interface{}, status int, w http.ResponseWriter) error {
	bytes, e := json.Marshal(obj)
	if e != nil {
		err := Error{
			Scope:     InternalScope,
			Condition: GeneralCondition,
			Values:    ErrorData{e.Error()},
		}
		err.Message = err.Error()
		http.Error(w, err.Message, http.StatusInternalServerError)
		return err
	}
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
	if err, isErr := obj.(Error); isErr {
		return err
	}
	return nil
}

// WriteError verbalizes an Error and sends it with the given
// status, returning it for the handler to hand back to its caller.
func WriteError(err Error, status int, w http.ResponseWriter) error {
	err.Message = err.Error()
	return WriteJSON(err, status, w)
}
