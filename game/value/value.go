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

// Package value turns a board of placed chips into per-cell values and the
// offense and defense totals.
package value

import (
	"fmt"
	"math"

	"golang.org/x/text/message"

	"github.com/yagoggame/chipgrid/game/chip"
	"github.com/yagoggame/chipgrid/game/interfaces"
)

// State is the value of a board. It is rebuilt from scratch by Recompute
// and never updated in place.
//
// Layers are single precision, the floor of a cell near an integer boundary
// depends on it.
type State struct {
	Flat     []float32
	Increase []float32
	More     []float32
	Effect   []float32
	Types    []chip.Type
	// Values holds floor(Flat*Increase*More*Effect) of every cell.
	Values []int

	Offense int
	Defense int
}

// newState makes a State of size cells with every layer at its identity.
func newState(size int) *State {
	state := &State{
		Flat:     make([]float32, size),
		Increase: make([]float32, size),
		More:     make([]float32, size),
		Effect:   make([]float32, size),
		Types:    make([]chip.Type, size),
		Values:   make([]int, size),
	}
	for i := 0; i < size; i++ {
		state.Increase[i] = 1
		state.More[i] = 1
		state.Effect[i] = 1
	}
	return state
}

// Summary formats the totals as "offense : defense" with the number
// formatting of p.
func (s *State) Summary(p *message.Printer) string {
	return p.Sprintf("%d : %d", s.Offense, s.Defense)
}

// Recompute calculates the State of placements.
//
// Every cell first contributes its own chip (flat value, type and effect).
// Only after all cells are done, every placed chip with targets buffs the valid
// target cells whose type equals the chip's type: increase adds up, more
// compounds as a product of (1+more), add goes to the flat layer.
// Each cell value is floored before it is summed into a total.
func Recompute(placements interfaces.Placements, catalog interfaces.Catalog, resolver interfaces.Resolver) (*State, error) {
	size := placements.Size()
	state := newState(size)

	defs := make([]chip.Definition, size)
	for c := 0; c < size; c++ {
		id, err := placements.ChipAt(c)
		if err != nil {
			return nil, fmt.Errorf("failed to recompute cell %d: %w", c, err)
		}
		def, err := catalog.DefinitionOf(id)
		if err != nil {
			return nil, fmt.Errorf("failed to recompute cell %d: %w", c, err)
		}
		defs[c] = def

		state.Flat[c] += float32(def.Value)
		state.Types[c] = def.Type
		state.Effect[c] = def.Eff
	}

	// the empty chip never has targets
	for _, c := range placements.Occupied() {
		if c < 0 || c >= size {
			return nil, fmt.Errorf("failed to project from cell %d: outside of %d placements", c, size)
		}
		if err := project(state, c, defs[c], resolver); err != nil {
			return nil, err
		}
	}

	for c := 0; c < size; c++ {
		product := state.Flat[c] * state.Increase[c] * state.More[c] * state.Effect[c]
		v := int(math.Floor(float64(product)))
		state.Values[c] = v
		switch state.Types[c] {
		case chip.Offensive:
			state.Offense += v
		case chip.Defensive:
			state.Defense += v
		}
	}
	return state, nil
}

// project applies the buffs of def, placed on cell origin, to its targets.
func project(state *State, origin int, def chip.Definition, resolver interfaces.Resolver) error {
	for _, offset := range def.Targets {
		ok, err := resolver.IsValidTarget(origin, offset)
		if err != nil {
			return fmt.Errorf("failed to project chip %d from cell %d: %w", def.ID, origin, err)
		}
		if !ok {
			continue
		}

		t := origin + offset
		if t < 0 || t >= len(state.Types) {
			return fmt.Errorf("failed to project chip %d from cell %d: target %d is outside of %d placements", def.ID, origin, t, len(state.Types))
		}
		if state.Types[t] != def.Type {
			continue
		}
		state.Increase[t] += def.Increase
		state.More[t] *= 1 + def.More
		state.Flat[t] += def.Add
	}
	return nil
}

// Clone returns a deep copy of s.
func (s *State) Clone() *State {
	return &State{
		Flat:     append([]float32(nil), s.Flat...),
		Increase: append([]float32(nil), s.Increase...),
		More:     append([]float32(nil), s.More...),
		Effect:   append([]float32(nil), s.Effect...),
		Types:    append([]chip.Type(nil), s.Types...),
		Values:   append([]int(nil), s.Values...),
		Offense:  s.Offense,
		Defense:  s.Defense,
	}
}
