// xudoku - a standard and diagonal Sudoku solving service.
// Licensed under the MIT license.  See the LICENSE file for details.

// Package dbprep prepares the backing stores: it migrates the
// database schema, loads the sample puzzle library, and clears the
// cache.  The storage package calls EnsureData on connect, so a
// fresh database comes up ready to serve.
package dbprep

import (
	"fmt"
)

// EnsureData brings the database schema up to date and, when the
// schema actually moved, loads the sample data.
func EnsureData() error {
	inVersion, err := SchemaVersion()
	if err != nil {
		return fmt.Errorf("couldn't get initial schema version: %v", err)
	}
	if err := SchemaUp(); err != nil {
		return fmt.Errorf("couldn't install schema: %v", err)
	}
	outVersion, err := SchemaVersion()
	if err != nil {
		return fmt.Errorf("couldn't get final schema version: %v", err)
	}
	if outVersion == 0 {
		return fmt.Errorf("schema still at version 0 after migration")
	}
	if inVersion != outVersion {
		if err := DataUp(); err != nil {
			return fmt.Errorf("couldn't load sample data: %v", err)
		}
	}
	return nil
}

// RemoveData tears the schema (and with it all stored puzzles)
// back down.
func RemoveData() error {
	version, err := SchemaVersion()
	if err != nil {
		return fmt.Errorf("couldn't get schema version: %v", err)
	}
	if version > 0 {
		if err := SchemaDown(); err != nil {
			return fmt.Errorf("couldn't remove tables: %v", err)
		}
	}
	return nil
}

// ReinitializeAll flushes the cache, drops the database content,
// and rebuilds both from scratch.
func ReinitializeAll() error {
	if err := ClearCache(); err != nil {
		return fmt.Errorf("couldn't clear cache: %v", err)
	}
	if err := RemoveData(); err != nil {
		return fmt.Errorf("couldn't clear database: %v", err)
	}
	if err := EnsureData(); err != nil {
		return fmt.Errorf("couldn't load database: %v", err)
	}
	return nil
}
