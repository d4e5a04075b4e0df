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

// Package config loads the settings of the chipgrid command.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// ErrPlacement error occurs when a configured placement can't be parsed
var ErrPlacement = errors.New("malformed placement")

// Config holds all application configuration
type Config struct {
	Log   Log   `mapstructure:"log"`
	Cache Cache `mapstructure:"cache"`
	// Placements maps a cell index to a chip id, both written as strings
	// in the config file.
	Placements map[string]int `mapstructure:"placements"`
}

// Log holds logger settings
type Log struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// Cache holds range cache settings
type Cache struct {
	Enabled  bool  `mapstructure:"enabled"`
	Counters int64 `mapstructure:"counters"`
	MaxCost  int64 `mapstructure:"max_cost"`
}

// Placement is one configured chip on one cell.
type Placement struct {
	Index int
	Chip  int
}

// Load reads .env, the config file and CHIPGRID_* environment variables,
// later sources overriding earlier ones. An empty path looks for
// chipgrid.yaml in the working directory; a missing file is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("CHIPGRID")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("chipgrid")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.counters", 0)
	v.SetDefault("cache.max_cost", 0)
	v.SetDefault("placements", map[string]int{})
}

// PlacementList returns the configured placements ordered by cell index.
func (cfg *Config) PlacementList() ([]Placement, error) {
	list := make([]Placement, 0, len(cfg.Placements))
	for key, chipID := range cfg.Placements {
		index, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return nil, fmt.Errorf("%w: cell %q: %s", ErrPlacement, key, err)
		}
		list = append(list, Placement{Index: index, Chip: chipID})
	}
	slices.SortFunc(list, func(a, b Placement) int { return a.Index - b.Index })
	return list, nil
}

// ParsePlacement parses "index=chip".
func ParsePlacement(s string) (Placement, error) {
	idx, id, ok := strings.Cut(s, "=")
	if !ok {
		return Placement{}, fmt.Errorf("%w: %q, want index=chip", ErrPlacement, s)
	}
	index, err := strconv.Atoi(strings.TrimSpace(idx))
	if err != nil {
		return Placement{}, fmt.Errorf("%w: cell %q: %s", ErrPlacement, idx, err)
	}
	chipID, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil {
		return Placement{}, fmt.Errorf("%w: chip %q: %s", ErrPlacement, id, err)
	}
	return Placement{Index: index, Chip: chipID}, nil
}
