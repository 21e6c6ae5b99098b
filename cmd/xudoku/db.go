// xudoku - a standard and diagonal Sudoku solving service.
// Licensed under the MIT license.  See the LICENSE file for details.

package main

import (
	"github.com/spf13/cobra"

	"github.com/gridkit/xudoku/dbprep"
)

func newDbCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Prepare the backing stores",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "init",
			Short: "Migrate the database and load the sample library",
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := dbprep.EnsureData(); err != nil {
					return err
				}
				cmd.Printf("Database at %q is ready.\n", dbprep.DatabaseURL())
				return nil
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Flush the cache, drop all stored puzzles, and rebuild",
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := dbprep.ReinitializeAll(); err != nil {
					return err
				}
				cmd.Printf("Cache at %q and database at %q reinitialized.\n",
					dbprep.CacheURL(), dbprep.DatabaseURL())
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear-cache",
			Short: "Flush the solution cache",
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := dbprep.ClearCache(); err != nil {
					return err
				}
				cmd.Printf("Cache at %q flushed.\n", dbprep.CacheURL())
				return nil
			},
		},
	)
	return cmd
}
