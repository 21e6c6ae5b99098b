// xudoku - a standard and diagonal Sudoku solving service.
// Licensed under the MIT license.  See the LICENSE file for details.

package main

import (
	"fmt"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/gridkit/xudoku/puzzle"
)

func newSolveCommand() *cobra.Command {
	var (
		geometry       string
		showCandidates bool
		cpuProfile     bool
	)
	cmd := &cobra.Command{
		Use:   "solve [grid ...]",
		Short: "Solve puzzle grids",
		Long: `Solve reads each argument as an 81-character grid string in
reading order, with '.' or '0' marking blank cells, and prints the
solved board.  A puzzle with no solution is reported, not an error.
With no arguments, the built-in sample puzzles are solved.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cpuProfile {
				defer profile.Start(profile.ProfilePath(".")).Stop()
			}
			if len(args) == 0 {
				return solveSamples(cmd, showCandidates)
			}
			for _, grid := range args {
				if err := solveOne(cmd, geometry, grid, showCandidates); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&geometry, "geometry", "g", puzzle.StandardGeometryName,
		"puzzle geometry (standard or diagonal)")
	cmd.Flags().BoolVar(&showCandidates, "candidates", false,
		"on failure, show the candidate sets where propagation got stuck")
	cmd.Flags().BoolVar(&cpuProfile, "cpuprofile", false,
		"write a CPU profile to the current directory")
	return cmd
}

// solveOne solves a single grid and prints the outcome.  Only
// malformed input is an error; an unsolvable puzzle just says so.
func solveOne(cmd *cobra.Command, geometry, grid string, showCandidates bool) error {
	solved, err := puzzle.Solve(geometry, grid)
	if err != nil {
		if !puzzle.IsNoSolution(err) {
			return err
		}
		cmd.Printf("%s\nhas no %s solution\n", grid, geometry)
		if showCandidates {
			showStuckBoard(cmd, geometry, grid)
		}
		return nil
	}
	cmd.Println(solved)
	return nil
}

// showStuckBoard reruns propagation alone on a failed grid and
// prints the candidate sets, which usually makes the conflict easy
// to spot.
func showStuckBoard(cmd *cobra.Command, geometry, grid string) {
	geo, err := puzzle.GeometryByName(geometry)
	if err != nil {
		return
	}
	b, err := puzzle.Parse(geo, grid)
	if err != nil {
		return
	}
	b.Reduce()
	cmd.Print(b.CandidatesString())
}

// solveSamples runs the built-in library, one puzzle per section.
func solveSamples(cmd *cobra.Command, showCandidates bool) error {
	for _, sample := range sampleGrids {
		cmd.Printf("%s (%s):\n", sample.Name, sample.Geometry)
		if err := solveOne(cmd, sample.Geometry, sample.Grid, showCandidates); err != nil {
			return fmt.Errorf("sample %q: %v", sample.Name, err)
		}
	}
	return nil
}
