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

package grid

import "fmt"

// Resolver decides whether a relative offset from a cell lands on the cell
// it is meant to.
type Resolver struct{}

// NewResolver returns a Resolver over the package tables.
func NewResolver() Resolver {
	return Resolver{}
}

// IsValidTarget reports whether origin+offset is on the board and is the
// cell the offset table claims for origin's column parity. Index arithmetic
// alone would accept targets that wrap onto the next or previous row.
//
// A target outside of the grid is false before anything else is checked,
// even for an origin outside of the grid. An offset missing from the
// parity table is ErrInvalidRange.
func (Resolver) IsValidTarget(origin, offset int) (bool, error) {
	target := origin + offset
	if !InGrid(target) {
		return false, nil
	}

	from, err := CoordinateOf(origin)
	if err != nil {
		return false, fmt.Errorf("failed to resolve offset %d: %w", offset, err)
	}

	delta, err := DeltaOf(from.Col, offset)
	if err != nil {
		return false, fmt.Errorf("failed to resolve target of cell %d: %w", origin, err)
	}

	claimed, err := IndexOf(Coord{Col: from.Col + delta.Col, Row: from.Row + delta.Row})
	if err != nil {
		// the table points off the board from here
		return false, nil
	}
	return claimed == target, nil
}

// Neighbours returns the offsets that are valid targets from origin, in
// table order.
func Neighbours(origin int) ([]int, error) {
	from, err := CoordinateOf(origin)
	if err != nil {
		return nil, err
	}

	var resolver Resolver
	offsets := make([]int, 0, len(evenOffsets))
	for _, o := range Offsets(from.Col) {
		ok, err := resolver.IsValidTarget(origin, o.Offset)
		if err != nil {
			return nil, err
		}
		if ok {
			offsets = append(offsets, o.Offset)
		}
	}
	return offsets, nil
}
