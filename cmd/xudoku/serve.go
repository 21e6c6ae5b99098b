// xudoku - a standard and diagonal Sudoku solving service.
// Licensed under the MIT license.  See the LICENSE file for details.

package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gridkit/xudoku/puzzle"
	"github.com/gridkit/xudoku/storage"
)

func newServeCommand() *cobra.Command {
	var noStore bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the solving web service",
		Long: `Serve runs the HTTP API.  With the backing stores connected,
solutions are cached in Redis and the puzzle library lives in
Postgres; with --no-store the solve endpoint still works but
nothing is remembered between requests.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(!noStore)
		},
	}
	cmd.Flags().BoolVar(&noStore, "no-store", false,
		"run without Redis and Postgres; disables caching and the puzzle library")
	return cmd
}

func runServe(withStore bool) error {
	ctx := context.Background()
	if withStore {
		cacheId, databaseId, err := storage.Connect(ctx)
		if err != nil {
			return err
		}
		defer storage.Close()
		log.Printf("Connected to cache at %q.", cacheId)
		log.Printf("Connected to database at %q.", databaseId)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/solve", solveHandler(withStore))
	mux.HandleFunc("/api/geometries", geometriesHandler)
	if withStore {
		mux.HandleFunc("/api/puzzles", puzzlesHandler(ctx))
		mux.HandleFunc("/api/puzzles/", puzzleHandler(ctx))
	}

	// Heroku-style port sensing: a bare PORT means a real server,
	// no PORT means local development
	port := os.Getenv("PORT")
	if port == "" {
		port = "localhost:8080"
	} else {
		port = ":" + port
	}
	log.Printf("Listening on %s...", port)
	return http.ListenAndServe(port, mux)
}

// solveHandler solves grids, consulting the solution cache first
// when the stores are connected.
func solveHandler(withStore bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Printf("Handling %s %s...", r.Method, r.URL.Path)
		if r.Method != "POST" {
			writeBadRequest(w, "use POST to solve")
			return
		}
		if !withStore {
			if _, err := puzzle.SolveHandler(w, r); err != nil {
				log.Printf("Solve failed: %v", err)
			}
			return
		}
		cachedSolve(w, r)
	}
}

// cachedSolve is the cache-aside version of the solve endpoint:
// look the (geometry, grid) pair up in the cache, solve and cache
// on a miss.  Cache trouble is logged and worked around, never
// surfaced to the client.
func cachedSolve(w http.ResponseWriter, r *http.Request) {
	var req puzzle.SolveRequest
	if e := json.NewDecoder(r.Body).Decode(&req); e != nil {
		writeBadRequest(w, e.Error())
		return
	}
	if req.Geometry == "" {
		req.Geometry = puzzle.StandardGeometryName
	}

	solution, found, err := storage.CachedSolution(req.Geometry, req.Grid)
	if err != nil {
		log.Printf("Cache lookup failed: %v", err)
	}
	if found {
		log.Printf("Solution cache hit.")
		result := &puzzle.SolveResult{
			Geometry: req.Geometry,
			Grid:     req.Grid,
			Solved:   true,
			Solution: solution,
		}
		if geo, gerr := puzzle.GeometryByName(req.Geometry); gerr == nil {
			if b, perr := puzzle.Parse(geo, solution); perr == nil {
				result.Values = b.Values()
			}
		}
		puzzle.WriteJSON(result, http.StatusOK, w)
		return
	}

	result, err := puzzle.DoSolve(&req)
	if err != nil {
		writeRequestError(w, err)
		return
	}
	if result.Solved {
		if err := storage.CacheSolution(req.Geometry, req.Grid, result.Solution); err != nil {
			log.Printf("Couldn't cache solution: %v", err)
		}
	}
	puzzle.WriteJSON(result, http.StatusOK, w)
}

func geometriesHandler(w http.ResponseWriter, r *http.Request) {
	log.Printf("Handling %s %s...", r.Method, r.URL.Path)
	if err := puzzle.GeometriesHandler(w, r); err != nil {
		log.Printf("Geometry listing failed: %v", err)
	}
}

// A saveRequest asks for a puzzle to be solved and kept in the
// library.
type saveRequest struct {
	Name     string `json:"name"`
	Geometry string `json:"geometry,omitempty"`
	Grid     string `json:"grid"`
}

// puzzlesHandler lists the library on GET and adds to it on POST.
func puzzlesHandler(ctx context.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Printf("Handling %s %s...", r.Method, r.URL.Path)
		switch r.Method {
		case "GET":
			entries, err := storage.ListEntries(ctx)
			if err != nil {
				log.Printf("Listing failed: %v", err)
				writeInternalError(w, err)
				return
			}
			if entries == nil {
				entries = []*storage.Entry{}
			}
			puzzle.WriteJSON(entries, http.StatusOK, w)
		case "POST":
			savePuzzle(ctx, w, r)
		default:
			writeBadRequest(w, "use GET to list or POST to save")
		}
	}
}

// savePuzzle solves the submitted grid and stores grid and
// solution together.  An unsolvable grid can't be saved.
func savePuzzle(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	var req saveRequest
	if e := json.NewDecoder(r.Body).Decode(&req); e != nil {
		writeBadRequest(w, e.Error())
		return
	}
	if req.Geometry == "" {
		req.Geometry = puzzle.StandardGeometryName
	}
	solved, err := puzzle.Solve(req.Geometry, req.Grid)
	if err != nil {
		writeRequestError(w, err)
		return
	}
	entry := &storage.Entry{
		Name:     req.Name,
		Geometry: req.Geometry,
		Grid:     req.Grid,
		Solution: solved.Grid(),
	}
	if err := storage.SaveEntry(ctx, entry); err != nil {
		log.Printf("Save failed: %v", err)
		writeInternalError(w, err)
		return
	}
	log.Printf("Saved puzzle %q as %s.", entry.Name, entry.ID)
	puzzle.WriteJSON(entry, http.StatusCreated, w)
}

// puzzleHandler fetches one library entry by ID.
func puzzleHandler(ctx context.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Printf("Handling %s %s...", r.Method, r.URL.Path)
		id := strings.TrimPrefix(r.URL.Path, "/api/puzzles/")
		if r.Method != "GET" || id == "" {
			writeBadRequest(w, "use GET /api/puzzles/<id>")
			return
		}
		entry, err := storage.LoadEntry(ctx, id)
		if err == storage.ErrNotFound {
			puzzle.WriteError(puzzle.Error{
				Scope:     puzzle.RequestScope,
				Condition: puzzle.GeneralCondition,
				Values:    puzzle.ErrorData{"no puzzle with id " + id},
			}, http.StatusNotFound, w)
			return
		}
		if err != nil {
			log.Printf("Load failed: %v", err)
			writeInternalError(w, err)
			return
		}
		puzzle.WriteJSON(entry, http.StatusOK, w)
	}
}

/*

error responses

*/

func writeBadRequest(w http.ResponseWriter, detail string) {
	puzzle.WriteError(puzzle.Error{
		Scope:     puzzle.RequestScope,
		Condition: puzzle.GeneralCondition,
		Values:    puzzle.ErrorData{detail},
	}, http.StatusBadRequest, w)
}

func writeRequestError(w http.ResponseWriter, err error) {
	werr, ok := err.(puzzle.Error)
	if !ok {
		writeBadRequest(w, err.Error())
		return
	}
	status := http.StatusBadRequest
	if puzzle.IsNoSolution(err) {
		// an unsolvable save request is a client mistake, but the
		// distinguished condition still goes back in the body
		status = http.StatusUnprocessableEntity
	}
	puzzle.WriteError(werr, status, w)
}

func writeInternalError(w http.ResponseWriter, err error) {
	puzzle.WriteError(puzzle.Error{
		Scope:     puzzle.InternalScope,
		Condition: puzzle.GeneralCondition,
		Values:    puzzle.ErrorData{err.Error()},
	}, http.StatusInternalServerError, w)
}
