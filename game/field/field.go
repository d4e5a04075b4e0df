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

package field

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/yagoggame/chipgrid/game/chip"
	"github.com/yagoggame/chipgrid/game/grid"
)

// Cell is the chip placed on one board position.
// Col and Row are derived from Index and kept for renderers.
type Cell struct {
	Index int
	Col   int
	Row   int
	Chip  int
}

// Field holds the chip placed on every cell of the board.
type Field struct {
	cells []Cell
}

// New generates a Field with every cell holding the Empty chip.
func New() *Field {
	field := &Field{cells: make([]Cell, grid.Cells)}
	for i := range field.cells {
		// never fails for an index in range
		c, _ := grid.CoordinateOf(i)
		field.cells[i] = Cell{Index: i, Col: c.Col, Row: c.Row, Chip: chip.EmptyID}
	}
	return field
}

// Size returns the number of cells.
func (field *Field) Size() int {
	return len(field.cells)
}

// Place puts chipID on the cell with the given index, replacing whatever was there.
// Chip existence is not checked here.
func (field *Field) Place(index, chipID int) error {
	if err := field.checkIndex(index); err != nil {
		return fmt.Errorf("failed to place chip %d: %w", chipID, err)
	}
	field.cells[index].Chip = chipID
	return nil
}

// ChipAt returns the id of the chip on the cell with the given index.
func (field *Field) ChipAt(index int) (int, error) {
	if err := field.checkIndex(index); err != nil {
		return 0, fmt.Errorf("failed to get chip: %w", err)
	}
	return field.cells[index].Chip, nil
}

// Cell returns a copy of the cell with the given index.
func (field *Field) Cell(index int) (Cell, error) {
	if err := field.checkIndex(index); err != nil {
		return Cell{}, fmt.Errorf("failed to get cell: %w", err)
	}
	return field.cells[index], nil
}

// Cells returns a copy of all cells in index order.
func (field *Field) Cells() []Cell {
	return slices.Clone(field.cells)
}

// Occupied returns the indices of cells holding something other than Empty.
func (field *Field) Occupied() []int {
	indices := make([]int, 0)
	for _, c := range field.cells {
		if c.Chip != chip.EmptyID {
			indices = append(indices, c.Index)
		}
	}
	return indices
}

// Clear puts the Empty chip back on every cell.
func (field *Field) Clear() {
	for i := range field.cells {
		field.cells[i].Chip = chip.EmptyID
	}
}

// Clone returns an independent copy of field.
func (field *Field) Clone() *Field {
	return &Field{cells: slices.Clone(field.cells)}
}

func (field *Field) checkIndex(index int) error {
	if index < 0 || index >= len(field.cells) {
		return fmt.Errorf("%w: got index: %d", grid.ErrIndexOutOfGrid, index)
	}
	return nil
}
