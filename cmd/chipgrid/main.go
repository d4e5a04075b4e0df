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

// Command chipgrid evaluates a board of chips from the command line.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yagoggame/chipgrid/internal/config"
	"github.com/yagoggame/chipgrid/internal/logging"
)

type app struct {
	cfgPath  string
	logLevel string
	cfg      *config.Config
	logger   *logrus.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "chipgrid",
		Short:         "Evaluate offense and defense of chips placed on a staggered board",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", "", "config file (default ./chipgrid.yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log.level")

	root.AddCommand(newEvalCmd(a), newCatalogCmd(a), newCoordsCmd(a))
	return root
}

func (a *app) init() error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	return nil
}
