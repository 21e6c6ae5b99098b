// xudoku - a standard and diagonal Sudoku solving service.
// Licensed under the MIT license.  See the LICENSE file for details.

package dbprep

import (
	"os"

	"github.com/gomodule/redigo/redis"
)

// CacheURL gives the Redis URL to clear, from the environment or
// the development default.
func CacheURL() string {
	if url := os.Getenv("REDIS_URL"); url != "" {
		return url
	}
	return "redis://localhost:6379/"
}

// ClearCache flushes everything out of the cache.  Cached entries
// are rebuilt from the database on demand, so this is always safe.
func ClearCache() error {
	conn, err := redis.DialURL(CacheURL())
	if err != nil {
		return err
	}
	defer conn.Close()
	if _, err := conn.Do("FLUSHALL"); err != nil {
		return err
	}
	return nil
}
