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

// Package chip holds the static definitions of the chips a player can place
// on the board.
package chip

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var (
	// ErrChipNotFound error occurs when a chip id was never registered in a Catalog
	ErrChipNotFound = errors.New("chip not found in catalog")
	// ErrDuplicateChip error occurs when NewCatalog gets two definitions with the same id
	ErrDuplicateChip = errors.New("chip id registered twice")
	// ErrEmptyTargets error occurs when the empty chip is given targets
	ErrEmptyTargets = errors.New("empty chip can't target cells")
)

// EmptyID is the id of the neutral chip every unoccupied cell holds.
const EmptyID = 0

// Type provides datatype of chip's kinds
type Type int

// Set of chip's kinds
const (
	Empty Type = iota
	Defensive
	Offensive
)

func (t Type) String() string {
	switch t {
	case Empty:
		return "Empty"
	case Defensive:
		return "Defensive"
	case Offensive:
		return "Offensive"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Definition describes a single chip.
//
// Value is the flat contribution to the chip's own cell. Increase, More and
// Add are projected onto every valid cell listed in Targets whose type
// matches the chip's Type. Eff multiplies the chip's own cell.
type Definition struct {
	ID       int
	Name     string
	Type     Type
	Value    int
	Increase float32
	More     float32
	Add      float32
	Eff      float32
	// Targets are signed linear offsets relative to the chip's cell.
	// nil means the chip never buffs other cells.
	Targets []int
}

// Catalog is an immutable set of chip definitions keyed by id.
// It is safe for concurrent reads.
type Catalog struct {
	defs map[int]Definition
}

// NewCatalog builds a Catalog from defs.
// The Empty chip (EmptyID) must be among them.
func NewCatalog(defs ...Definition) (*Catalog, error) {
	catalog := &Catalog{defs: make(map[int]Definition, len(defs))}
	for _, def := range defs {
		if _, ok := catalog.defs[def.ID]; ok {
			return nil, fmt.Errorf("failed to register chip %q: %w: id %d", def.Name, ErrDuplicateChip, def.ID)
		}
		def.Targets = slices.Clone(def.Targets)
		catalog.defs[def.ID] = def
	}

	empty, ok := catalog.defs[EmptyID]
	if !ok {
		return nil, fmt.Errorf("failed to build catalog: %w: empty chip id %d is required", ErrChipNotFound, EmptyID)
	}
	if len(empty.Targets) != 0 {
		return nil, fmt.Errorf("failed to build catalog: %w: %v", ErrEmptyTargets, empty.Targets)
	}
	return catalog, nil
}

// DefinitionOf returns the definition registered under id.
func (c *Catalog) DefinitionOf(id int) (Definition, error) {
	def, ok := c.defs[id]
	if !ok {
		return Definition{}, fmt.Errorf("failed to get definition of chip %d: %w", id, ErrChipNotFound)
	}
	def.Targets = slices.Clone(def.Targets)
	return def, nil
}

// IDs returns all registered ids in ascending order.
func (c *Catalog) IDs() []int {
	ids := maps.Keys(c.defs)
	slices.Sort(ids)
	return ids
}

// Len returns the number of registered chips.
func (c *Catalog) Len() int {
	return len(c.defs)
}
