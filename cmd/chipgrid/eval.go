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

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yagoggame/chipgrid"
	"github.com/yagoggame/chipgrid/game/grid"
	"github.com/yagoggame/chipgrid/internal/config"
)

func newEvalCmd(a *app) *cobra.Command {
	var (
		places []string
		dump   bool
	)

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Place chips and print the value of the board",
		Example: `  chipgrid eval --place 0=2 --place 9=2
  chipgrid eval -c board.yaml --dump`,
		RunE: func(cmd *cobra.Command, args []string) error {
			placements, err := a.cfg.PlacementList()
			if err != nil {
				return err
			}
			for _, s := range places {
				p, err := config.ParsePlacement(s)
				if err != nil {
					return err
				}
				placements = append(placements, p)
			}

			board, err := chipgrid.NewBoard(a.boardOptions()...)
			if err != nil {
				return err
			}
			defer board.Release()

			for _, p := range placements {
				if err := board.Place(p.Index, p.Chip); err != nil {
					return err
				}
			}

			state, err := board.Recompute()
			if err != nil {
				return err
			}
			a.logger.WithFields(logrus.Fields{
				"placements": len(placements),
				"offense":    state.Offense,
				"defense":    state.Defense,
			}).Info("board evaluated")

			out := cmd.OutOrStdout()
			if dump {
				spew.Fdump(out, state)
				return nil
			}
			renderBoard(out, state.Values)
			_, err = fmt.Fprintln(out, state.Summary(printer))
			return err
		},
	}
	cmd.Flags().StringArrayVarP(&places, "place", "p", nil, "place a chip as index=chip, may be repeated")
	cmd.Flags().BoolVar(&dump, "dump", false, "dump every layer of the computed state")
	return cmd
}

func (a *app) boardOptions() []chipgrid.Option {
	opts := []chipgrid.Option{chipgrid.WithLogger(logrus.NewEntry(a.logger))}
	if a.cfg.Cache.Enabled {
		cacheCfg := grid.DefaultCacheConfig
		if a.cfg.Cache.Counters > 0 {
			cacheCfg.NumCounters = a.cfg.Cache.Counters
		}
		if a.cfg.Cache.MaxCost > 0 {
			cacheCfg.MaxCost = a.cfg.Cache.MaxCost
		}
		opts = append(opts, chipgrid.WithRangeCache(cacheCfg))
	}
	return opts
}
