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

// Package interfaces holds the contracts the value engine works against.
package interfaces

import "github.com/yagoggame/chipgrid/game/chip"

// Catalog wraps lookup of chip definitions by id.
type Catalog interface {
	DefinitionOf(id int) (chip.Definition, error)
}

// Resolver wraps the range check of a relative offset from a cell.
type Resolver interface {
	IsValidTarget(origin, offset int) (bool, error)
}

// Placements exposes the chip placed on every cell of the board.
// Occupied lists the cells holding anything but the empty chip.
type Placements interface {
	Size() int
	ChipAt(index int) (int, error)
	Occupied() []int
}
