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
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yagoggame/chipgrid/game/chip"
)

func newCatalogCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the chips that can be placed",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := chip.Default()
			a.logger.WithField("chips", catalog.Len()).Debug("listing catalog")

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTYPE\tVALUE\tINCREASE\tMORE\tADD\tEFF\tTARGETS")
			for _, id := range catalog.IDs() {
				def, err := catalog.DefinitionOf(id)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%d\t%s\t%v\t%d\t%g\t%g\t%g\t%g\t%v\n",
					def.ID, def.Name, def.Type, def.Value, def.Increase, def.More, def.Add, def.Eff, def.Targets)
			}
			return w.Flush()
		},
	}
}
