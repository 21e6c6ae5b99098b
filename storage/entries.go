// xudoku - a standard and diagonal Sudoku solving service.
// Licensed under the MIT license.  See the LICENSE file for details.

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrNotFound is returned when a lookup misses both the cache and
// the database.
var ErrNotFound = errors.New("no such puzzle")

/*

solution cache

The solver is deterministic, so a (geometry, grid) pair names its
solution forever.  Bare solutions are cached under that pair with
no database backing: losing the cache just means solving again.

*/

// solutionKey computes the cache key for a solved grid.
func solutionKey(geometry, grid string) string {
	return "SOL:" + geometry + ":" + grid
}

// CachedSolution looks up a previously cached solution, reporting
// whether one was found.
func CachedSolution(geometry, grid string) (string, bool, error) {
	var solution string
	found := false
	err := rdExecute(func(conn redis.Conn) error {
		s, err := redis.String(conn.Do("GET", solutionKey(geometry, grid)))
		if err == redis.ErrNil {
			return nil
		}
		if err != nil {
			return fmt.Errorf("cache failure loading solution: %v", err)
		}
		solution, found = s, true
		return nil
	})
	return solution, found, err
}

// CacheSolution records a solved grid for later lookups.
func CacheSolution(geometry, grid, solution string) error {
	return rdExecute(func(conn redis.Conn) error {
		if _, err := conn.Do("SET", solutionKey(geometry, grid), solution); err != nil {
			return fmt.Errorf("cache failure saving solution: %v", err)
		}
		return nil
	})
}

/*

puzzle entries

*/

// An Entry is the stored form of a solved puzzle: the starting
// grid, its solution, and the bookkeeping around them.  It is JSON
// serializable so it can go into the cache as well as the
// database.
type Entry struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Geometry string    `json:"geometry"`
	Grid     string    `json:"grid"`
	Solution string    `json:"solution"`
	Created  time.Time `json:"created"`
}

// key computes the cache key for an Entry.
func (e *Entry) key() string {
	return "ENT:" + e.ID
}

// SaveEntry stores a solved puzzle in the database and caches it.
// A missing ID gets a fresh one; a missing creation time gets now.
// Saving the same (geometry, grid) twice fails on the database's
// uniqueness constraint.
func SaveEntry(ctx context.Context, e *Entry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Created.IsZero() {
		e.Created = time.Now()
	}
	err := pgExecute(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			"INSERT INTO puzzles (puzzleId, name, geometry, grid, solution, created) "+
				"VALUES ($1, $2, $3, $4, $5, $6)",
			e.ID, e.Name, e.Geometry, e.Grid, e.Solution, e.Created)
		if err != nil {
			return fmt.Errorf("database error saving entry %q: %v", e.ID, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return e.cacheInsert()
}

// LoadEntry finds a stored puzzle by ID, checking the cache first
// and falling back to the database.  A database hit is cached for
// the next lookup.  Returns ErrNotFound when neither store has it.
func LoadEntry(ctx context.Context, id string) (*Entry, error) {
	e := &Entry{ID: id}
	found, err := e.cacheLoad()
	if err != nil {
		return nil, err
	}
	if found {
		return e, nil
	}
	if err := e.databaseLoad(ctx); err != nil {
		return nil, err
	}
	if err := e.cacheInsert(); err != nil {
		return nil, err
	}
	return e, nil
}

// ListEntries returns every stored puzzle, ordered by name.
func ListEntries(ctx context.Context) ([]*Entry, error) {
	var entries []*Entry
	err := pgExecute(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx,
			"SELECT puzzleId, name, geometry, trim(grid), trim(solution), created "+
				"FROM puzzles ORDER BY name")
		if err != nil {
			return fmt.Errorf("database error listing entries: %v", err)
		}
		defer rows.Close()
		for rows.Next() {
			e := &Entry{}
			if err := rows.Scan(&e.ID, &e.Name, &e.Geometry, &e.Grid, &e.Solution, &e.Created); err != nil {
				return fmt.Errorf("database error reading entry: %v", err)
			}
			entries = append(entries, e)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// cacheLoad fills the Entry from the cache, reporting whether it
// was found there.
func (e *Entry) cacheLoad() (bool, error) {
	var bytes []byte
	err := rdExecute(func(conn redis.Conn) error {
		b, err := redis.Bytes(conn.Do("GET", e.key()))
		if err == redis.ErrNil {
			return nil
		}
		if err != nil {
			return fmt.Errorf("cache failure loading entry %q: %v", e.ID, err)
		}
		bytes = b
		return nil
	})
	if err != nil || len(bytes) == 0 {
		return false, err
	}
	var cached Entry
	if err := json.Unmarshal(bytes, &cached); err != nil {
		return false, fmt.Errorf("failed to unmarshal entry %q: %v", e.ID, err)
	}
	if cached.ID != e.ID {
		return false, fmt.Errorf("cached entry %q found under key for %q", cached.ID, e.ID)
	}
	*e = cached
	return true, nil
}

// cacheInsert puts the Entry into the cache, replacing any
// existing entry with the same ID.
func (e *Entry) cacheInsert() error {
	bytes, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal entry %q: %v", e.ID, err)
	}
	return rdExecute(func(conn redis.Conn) error {
		if _, err := conn.Do("SET", e.key(), bytes); err != nil {
			return fmt.Errorf("cache failure saving entry %q: %v", e.ID, err)
		}
		return nil
	})
}

// databaseLoad fills the Entry from the database.  Returns
// ErrNotFound when no row has the Entry's ID.
func (e *Entry) databaseLoad(ctx context.Context) error {
	return pgExecute(ctx, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx,
			"SELECT name, geometry, trim(grid), trim(solution), created "+
				"FROM puzzles WHERE puzzleId = $1", e.ID)
		err := row.Scan(&e.Name, &e.Geometry, &e.Grid, &e.Solution, &e.Created)
		if err == pgx.ErrNoRows {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("database error loading entry %q: %v", e.ID, err)
		}
		return nil
	})
}
