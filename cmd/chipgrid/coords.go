// Copyright ©2020 BlinnikovAA. All rights reserved.
// This file is part of yagogame.
//
// yagogame is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// yagogame is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with yagogame.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yagoggame/chipgrid/game/grid"
)

func newCoordsCmd(a *app) *cobra.Command {
	var from int

	cmd := &cobra.Command{
		Use:   "coords",
		Short: "Print cell coordinates, or the targets reachable from one cell",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !cmd.Flags().Changed("from") {
				for i := 0; i < grid.Cells; i++ {
					c, err := grid.CoordinateOf(i)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "%2d %v\n", i, c)
				}
				return nil
			}

			offsets, err := grid.Neighbours(from)
			if err != nil {
				return err
			}
			a.logger.WithField("from", from).Debugf("%d valid targets", len(offsets))
			for _, o := range offsets {
				c, err := grid.CoordinateOf(from + o)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%+3d -> %2d %v\n", o, from+o, c)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&from, "from", 0, "list the valid target offsets from this cell")
	return cmd
}
