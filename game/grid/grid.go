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

// Package grid describes the staggered board: how a linear cell index maps to
// a column and row, and which relative offsets a chip may reach from a cell.
//
// Odd columns are drawn half a cell higher than even ones, so the same linear
// offset does not reach the same set of cells from both column parities.
package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfGrid error occurs when an index is outside of [0, Cells)
	ErrIndexOutOfGrid = errors.New("index is out of grid")
	// ErrInvalidRange error occurs when an offset is not a legal relative position
	ErrInvalidRange = errors.New("invalid range")
)

// Board dimensions.
const (
	Width  = 9
	Height = 6
	Cells  = Width * Height
)

// Coord is a cell position on the board.
type Coord struct {
	Col, Row int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// coords maps a cell index to its coordinate. It is filled once and never
// changed afterwards.
var coords = buildCoords()

func buildCoords() [Cells]Coord {
	var table [Cells]Coord
	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			table[col+row*Width] = Coord{Col: col, Row: row}
		}
	}
	return table
}

// CoordinateOf returns the coordinate of the cell with the given index.
func CoordinateOf(index int) (Coord, error) {
	if !InGrid(index) {
		return Coord{}, fmt.Errorf("failed to get coordinate of cell %d: %w", index, ErrIndexOutOfGrid)
	}
	return coords[index], nil
}

// IndexOf is the inverse of CoordinateOf.
func IndexOf(c Coord) (int, error) {
	if c.Col < 0 || c.Col >= Width || c.Row < 0 || c.Row >= Height {
		return 0, fmt.Errorf("failed to get index of %v: %w", c, ErrIndexOutOfGrid)
	}
	return c.Col + c.Row*Width, nil
}

// InGrid reports whether index addresses a board cell.
func InGrid(index int) bool {
	return index >= 0 && index < Cells
}
