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

package field_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/yagoggame/chipgrid/game/chip"
	. "github.com/yagoggame/chipgrid/game/field"
	"github.com/yagoggame/chipgrid/game/grid"
	"github.com/yagoggame/chipgrid/game/interfaces"
)

var placeTests = []struct {
	name  string
	index int
	chip  int
	want  error
}{
	{
		name:  "negative index",
		index: -1,
		chip:  chip.StrikeID,
		want:  grid.ErrIndexOutOfGrid,
	},
	{
		name:  "index past the end",
		index: grid.Cells,
		chip:  chip.StrikeID,
		want:  grid.ErrIndexOutOfGrid,
	},
	{
		name:  "first cell",
		index: 0,
		chip:  chip.StrikeID,
		want:  nil,
	},
	{
		name:  "last cell",
		index: grid.Cells - 1,
		chip:  chip.DefendID,
		want:  nil,
	},
	{
		name:  "replace",
		index: 0,
		chip:  chip.DefendID,
		want:  nil,
	},
	{
		name:  "unknown chip is stored",
		index: 10,
		chip:  99,
		want:  nil,
	},
}

func TestNew(t *testing.T) {
	var field interfaces.Placements = New()

	if field.Size() != grid.Cells {
		t.Errorf("Unexpected Size:\nwant: %d,\ngot: %d.", grid.Cells, field.Size())
	}

	for i, cell := range New().Cells() {
		c, _ := grid.CoordinateOf(i)
		want := Cell{Index: i, Col: c.Col, Row: c.Row, Chip: chip.EmptyID}
		if cell != want {
			t.Errorf("Unexpected cell %d of a new field:\nwant: %+v,\ngot: %+v.", i, want, cell)
		}
	}
}

func TestPlace(t *testing.T) {
	field := New()

	for _, test := range placeTests {
		t.Run(test.name, func(t *testing.T) {
			pre := field.Cells()
			err := field.Place(test.index, test.chip)

			if !errors.Is(err, test.want) {
				t.Errorf("Unexpected Place() err:\nwant: %v,\ngot: %v.", test.want, err)
			}

			if err != nil {
				if !reflect.DeepEqual(pre, field.Cells()) {
					t.Errorf("Unexpected change of the field after failed Place()")
				}
				return
			}

			got, err := field.ChipAt(test.index)
			if err != nil || got != test.chip {
				t.Errorf("Unexpected ChipAt(%d) after Place():\nwant: %d,\ngot: %d, err: %v.", test.index, test.chip, got, err)
			}
			cell, _ := field.Cell(test.index)
			c, _ := grid.CoordinateOf(test.index)
			if cell.Col != c.Col || cell.Row != c.Row {
				t.Errorf("Unexpected coordinate of cell %d after Place():\nwant: %v,\ngot: (%d,%d).", test.index, c, cell.Col, cell.Row)
			}
		})
	}
}

func TestChipAtOutOfGrid(t *testing.T) {
	field := New()
	for _, index := range []int{-1, grid.Cells} {
		if _, err := field.ChipAt(index); !errors.Is(err, grid.ErrIndexOutOfGrid) {
			t.Errorf("Unexpected ChipAt(%d) err:\nwant: %v,\ngot: %v.", index, grid.ErrIndexOutOfGrid, err)
		}
		if _, err := field.Cell(index); !errors.Is(err, grid.ErrIndexOutOfGrid) {
			t.Errorf("Unexpected Cell(%d) err:\nwant: %v,\ngot: %v.", index, grid.ErrIndexOutOfGrid, err)
		}
	}
}

func TestOccupiedAndClear(t *testing.T) {
	field := New()
	for _, index := range []int{40, 3, 17} {
		if err := field.Place(index, chip.StrikeID); err != nil {
			t.Fatalf("Unexpected Place() error: %v", err)
		}
	}
	if err := field.Place(3, chip.EmptyID); err != nil {
		t.Fatalf("Unexpected Place() error: %v", err)
	}

	want := []int{17, 40}
	if got := field.Occupied(); !reflect.DeepEqual(got, want) {
		t.Errorf("Unexpected Occupied:\nwant: %v,\ngot: %v.", want, got)
	}

	field.Clear()
	if got := field.Occupied(); len(got) != 0 {
		t.Errorf("Unexpected Occupied after Clear:\nwant: [],\ngot: %v.", got)
	}
}

func TestCopies(t *testing.T) {
	field := New()
	if err := field.Place(5, chip.StrikeID); err != nil {
		t.Fatalf("Unexpected Place() error: %v", err)
	}

	clone := field.Clone()
	if err := clone.Place(5, chip.DefendID); err != nil {
		t.Fatalf("Unexpected Place() error: %v", err)
	}
	if got, _ := field.ChipAt(5); got != chip.StrikeID {
		t.Errorf("Unexpected change of the field through its clone:\nwant: %d,\ngot: %d.", chip.StrikeID, got)
	}

	cells := field.Cells()
	cells[5].Chip = chip.DefendID
	if got, _ := field.ChipAt(5); got != chip.StrikeID {
		t.Errorf("Unexpected change of the field through Cells():\nwant: %d,\ngot: %d.", chip.StrikeID, got)
	}
}
