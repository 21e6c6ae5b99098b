// xudoku - a standard and diagonal Sudoku solving service.
// Licensed under the MIT license.  See the LICENSE file for details.

// xudoku is the command-line face of the solver: solve grids from
// the shell, run the web service, or prepare the backing stores.
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// newRootCommand assembles the command tree.  Split out of main so
// tests can execute commands without spawning a process.
func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "xudoku",
		Short:         "A standard and diagonal Sudoku solver",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSolveCommand(), newServeCommand(), newDbCommand())
	return root
}

func main() {
	// a .env file is a development convenience, never a requirement
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Couldn't read .env file: %v", err)
	}
	if err := newRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}
