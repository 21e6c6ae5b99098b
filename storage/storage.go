// xudoku - a standard and diagonal Sudoku solving service.
// Licensed under the MIT license.  See the LICENSE file for details.

// Package storage keeps solved puzzles.  Postgres is the system of
// record; Redis sits in front of it as a cache for entries and for
// bare solution lookups.  Connections are package-level, opened
// once by Connect and shared by every caller.
package storage

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gridkit/xudoku/dbprep"
)

// Connect prepares the database and opens both backing stores,
// returning the connection identifiers for the startup log.
func Connect(ctx context.Context) (cacheId, databaseId string, err error) {
	if err = dbprep.EnsureData(); err != nil {
		err = fmt.Errorf("couldn't initialize database: %v", err)
		return
	}

	rdInit()
	rdMutex.Lock()
	defer rdMutex.Unlock()
	if cacheId, err = rdConnect(); err != nil {
		return
	}

	pgInit()
	if databaseId, err = pgConnect(ctx); err != nil {
		return
	}
	return
}

// Close shuts both backing stores down.
func Close() {
	rdMutex.Lock()
	defer rdMutex.Unlock()
	pgClose()
	rdClose()
}

/*

cache using Redis

*/

// Redis connection data
var (
	rdc     redis.Conn // open connection, if any
	rdUrl   string     // URL for the open connection
	rdMutex sync.Mutex // prevent concurrent connection use
)

// rdInit looks up the Redis URL from the environment.
func rdInit() {
	if url := os.Getenv("REDIS_URL"); url != "" {
		rdUrl = url
	} else {
		rdUrl = "redis://localhost:6379/"
	}
}

// rdConnect dials the configured Redis URL, returning the
// connection id.
func rdConnect() (string, error) {
	conn, err := redis.DialURL(rdUrl)
	if err != nil {
		return "", fmt.Errorf("couldn't connect to cache at %q: %v", rdUrl, err)
	}
	rdc = conn
	return rdUrl, nil
}

// rdClose closes the Redis connection, if open.
func rdClose() {
	if rdc != nil {
		rdc.Close()
		rdc = nil
	}
}

// rdExecute runs the body holding the cache mutex and connection.
// Redis connections can go away without warning, so the wrapper
// pings first and reconnects if the ping fails.
func rdExecute(body func(conn redis.Conn) error) error {
	rdMutex.Lock()
	defer rdMutex.Unlock()
	if rdc == nil {
		return fmt.Errorf("cache is not connected")
	}
	if _, err := rdc.Do("PING"); err != nil {
		rdClose()
		if _, err := rdConnect(); err != nil {
			return fmt.Errorf("failed to reconnect to cache at %q: %v", rdUrl, err)
		}
	}
	return body(rdc)
}

/*

persistence using Postgres

*/

// Postgres connection data
var (
	pgPool *pgxpool.Pool // open pool, if any
	pgUrl  string        // URL for the open pool
)

// pgInit looks up the Postgres URL from the environment.
func pgInit() {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		pgUrl = url
	} else {
		pgUrl = "postgres://localhost/xudoku?sslmode=disable"
	}
}

// pgConnect opens a pool against the configured Postgres URL,
// returning the connection id.
func pgConnect(ctx context.Context) (string, error) {
	pool, err := pgxpool.New(ctx, pgUrl)
	if err != nil {
		return "", fmt.Errorf("couldn't connect to db at %q: %v", pgUrl, err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return "", fmt.Errorf("couldn't reach db at %q: %v", pgUrl, err)
	}
	pgPool = pool
	return pgUrl, nil
}

// pgClose closes the Postgres pool, if open.
func pgClose() {
	if pgPool != nil {
		pgPool.Close()
		pgPool = nil
	}
}

// pgExecute runs the body inside a single transaction: commit when
// the body succeeds, roll back when it errs.
func pgExecute(ctx context.Context, body func(tx pgx.Tx) error) error {
	if pgPool == nil {
		return fmt.Errorf("database is not connected")
	}
	tx, err := pgPool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("can't open a transaction: %v", err)
	}
	defer tx.Rollback(ctx)
	if err := body(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
