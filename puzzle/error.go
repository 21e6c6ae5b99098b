// xudoku - a standard and diagonal Sudoku solving service.
// Licensed under the MIT license.  See the LICENSE file for details.

package puzzle

import (
	"fmt"
)

/*

Errors

The error taxonomy is deliberately small: the solver is a pure,
total function over well-formed input, so the only things that can
go wrong are malformed requests (bad grid, unknown geometry, bad
JSON) and the perfectly ordinary discovery that a puzzle has no
solution.  NoSolution is an expected value, not a fault: callers
are meant to branch on it, never to treat it as fatal.

*/

// An Error describes a problem with a grid, a geometry lookup, or
// a solve request.  It is JSON-serializable so the web handlers
// can return it to clients; the Message field carries the
// verbalized form when the Error crosses the wire.
type Error struct {
	Scope     ErrorScope     `json:"scope"`
	Condition ErrorCondition `json:"condition"`
	Values    ErrorData      `json:"values,omitempty"`
	Message   string         `json:"message,omitempty"`
}

// An ErrorScope tells what kind of thing the error refers to.
type ErrorScope int

// Constants for the various error scopes.
const (
	UnknownScope ErrorScope = iota
	RequestScope
	GridScope
	GeometryScope
	SolveScope
	InternalScope
	MaxScope
)

// An ErrorCondition is the predicate that the scoped thing failed
// to satisfy.
type ErrorCondition int

// Constants for the various error conditions.
const (
	UnknownCondition ErrorCondition = iota
	GeneralCondition
	WrongLengthCondition
	InvalidCharacterCondition
	UnknownGeometryCondition
	NoSolutionCondition
	MaxCondition
)

// ErrorData carries details about the failing value.  Every item
// must be JSON-serializable, which the compiler can't check for
// us, so implementors have to do the right thing.
type ErrorData []interface{}

// Error verbalizes an Error.  A pre-canned Message wins; otherwise
// an appropriate (English, non-localized) message is produced.
func (e Error) Error() string {
	if len(e.Message) > 0 {
		return e.Message
	}
	values := e.Values
	nextVal := func() interface{} {
		if len(values) == 0 {
			return "<unknown>"
		}
		val := values[0]
		values = values[1:]
		return val
	}
	var es string
	switch e.Scope {
	case RequestScope:
		es = "Invalid request: "
	case GridScope:
		es = "Invalid grid: "
	case GeometryScope:
		es = "Invalid geometry: "
	case SolveScope:
		es = "Solve failed: "
	case InternalScope:
		es = "Internal logic error: "
	default:
		es = "Unknown error: "
	}
	switch e.Condition {
	case GeneralCondition:
		es += fmt.Sprint(nextVal())
	case WrongLengthCondition:
		es += fmt.Sprintf("grid has %v characters, must have %v", nextVal(), nextVal())
	case InvalidCharacterCondition:
		es += fmt.Sprintf("character %q at cell %v is not a digit or blank", nextVal(), nextVal())
	case UnknownGeometryCondition:
		es += fmt.Sprintf("%q is not a registered geometry", nextVal())
	case NoSolutionCondition:
		es += "no solution exists"
	default:
		es += fmt.Sprintf("supplemental data is %v", values)
	}
	return es
}

// IsNoSolution reports whether an error is the distinguished
// "no solution" outcome of a solve.
func IsNoSolution(e error) bool {
	err, ok := e.(Error)
	return ok && err.Condition == NoSolutionCondition
}

// noSolutionError is the failure value returned when search
// exhausts every branch.
func noSolutionError() Error {
	return Error{Scope: SolveScope, Condition: NoSolutionCondition}
}

// gridError builds an Error for a malformed grid string.
func gridError(cond ErrorCondition, values ...interface{}) Error {
	return Error{Scope: GridScope, Condition: cond, Values: values}
}
