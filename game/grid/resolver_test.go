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

import (
	"errors"
	"testing"
)

var isValidTargetTests = []struct {
	name   string
	origin int
	offset int
	want   bool
	err    error
}{
	{name: "right neighbour", origin: 0, offset: 1, want: true},
	{name: "self", origin: 31, offset: 0, want: true},
	{name: "up", origin: 0, offset: 9, want: true},
	{name: "wraps to next row", origin: 8, offset: 1, want: false},
	{name: "wraps to previous row", origin: 9, offset: -1, want: false},
	{name: "two left from second column", origin: 1, offset: -2, want: false},
	{name: "target below the board", origin: 0, offset: -1, want: false},
	{name: "target above the board", origin: 53, offset: 1, want: false},
	{name: "target out of grid skips table lookup", origin: 50, offset: 17, want: false},
	{name: "odd column reaches up left", origin: 1, offset: 17, want: true},
	{name: "even column reaches down right", origin: 18, offset: -17, want: true},
	{name: "even column has no up left", origin: 0, offset: 17, err: ErrInvalidRange},
	{name: "odd column has no down right", origin: 19, offset: -17, err: ErrInvalidRange},
	{name: "offset in no table", origin: 20, offset: 3, err: ErrInvalidRange},
	{name: "origin out of grid", origin: Cells, offset: -1, err: ErrIndexOutOfGrid},
	{name: "negative origin", origin: -1, offset: 5, err: ErrIndexOutOfGrid},
	{name: "both out of grid", origin: -5, offset: 2, want: false},
}

func TestIsValidTarget(t *testing.T) {
	resolver := NewResolver()
	for _, test := range isValidTargetTests {
		t.Run(test.name, func(t *testing.T) {
			got, err := resolver.IsValidTarget(test.origin, test.offset)
			if !errors.Is(err, test.err) {
				t.Errorf("Unexpected IsValidTarget(%d, %d) err:\nwant: %v,\ngot: %v.", test.origin, test.offset, test.err, err)
			}
			if got != test.want {
				t.Errorf("Unexpected IsValidTarget(%d, %d):\nwant: %v,\ngot: %v.", test.origin, test.offset, test.want, got)
			}
		})
	}
}

func TestIsValidTargetOutOfGridIsFalse(t *testing.T) {
	resolver := NewResolver()
	for origin := 0; origin < Cells; origin++ {
		for offset := -2 * Cells; offset <= 2*Cells; offset++ {
			if InGrid(origin + offset) {
				continue
			}
			ok, err := resolver.IsValidTarget(origin, offset)
			if ok || err != nil {
				t.Fatalf("Unexpected IsValidTarget(%d, %d) for a target out of grid: %v, %v", origin, offset, ok, err)
			}
		}
	}
}

func TestIsValidTargetMatchesCoordinates(t *testing.T) {
	resolver := NewResolver()
	for origin := 0; origin < Cells; origin++ {
		from, _ := CoordinateOf(origin)
		for _, o := range Offsets(from.Col) {
			ok, err := resolver.IsValidTarget(origin, o.Offset)
			if err != nil {
				t.Fatalf("Unexpected IsValidTarget(%d, %d) error: %v", origin, o.Offset, err)
			}

			to := Coord{Col: from.Col + o.Delta.Col, Row: from.Row + o.Delta.Row}
			index, errIndex := IndexOf(to)
			want := errIndex == nil && index == origin+o.Offset
			if ok != want {
				t.Errorf("Unexpected IsValidTarget(%d, %d):\nwant: %v,\ngot: %v.", origin, o.Offset, want, ok)
			}
		}
	}
}
