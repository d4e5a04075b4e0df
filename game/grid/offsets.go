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

// Delta is the column and row displacement a relative offset stands for.
type Delta struct {
	Col, Row int
}

// Offset is a relative offset with the displacement it represents.
type Offset struct {
	Offset int
	Delta  Delta
}

// evenOffsets lists the relative positions reachable from an even column.
// Rows read top to bottom, the way the cells sit on screen.
var evenOffsets = [...]Offset{
	{18, Delta{0, 2}},
	{7, Delta{-2, 1}}, {8, Delta{-1, 1}}, {9, Delta{0, 1}}, {10, Delta{1, 1}}, {11, Delta{2, 1}},
	{2, Delta{2, 0}}, {1, Delta{1, 0}}, {0, Delta{0, 0}}, {-1, Delta{-1, 0}}, {-2, Delta{-2, 0}},
	{-11, Delta{-2, -1}}, {-10, Delta{-1, -1}}, {-9, Delta{0, -1}}, {-8, Delta{1, -1}}, {-7, Delta{2, -1}},
	{-17, Delta{1, -2}}, {-18, Delta{0, -2}}, {-19, Delta{-1, -2}},
}

// oddOffsets lists the relative positions reachable from an odd column.
var oddOffsets = [...]Offset{
	{17, Delta{-1, 2}}, {18, Delta{0, 2}}, {19, Delta{1, 2}},
	{7, Delta{-2, 1}}, {8, Delta{-1, 1}}, {9, Delta{0, 1}}, {10, Delta{1, 1}}, {11, Delta{2, 1}},
	{2, Delta{2, 0}}, {1, Delta{1, 0}}, {0, Delta{0, 0}}, {-1, Delta{-1, 0}}, {-2, Delta{-2, 0}},
	{-11, Delta{-2, -1}}, {-10, Delta{-1, -1}}, {-9, Delta{0, -1}}, {-8, Delta{1, -1}}, {-7, Delta{2, -1}},
	{-18, Delta{0, -2}},
}

var (
	evenTable = indexOffsets(evenOffsets[:])
	oddTable  = indexOffsets(oddOffsets[:])
)

func indexOffsets(list []Offset) map[int]Delta {
	table := make(map[int]Delta, len(list))
	for _, o := range list {
		table[o.Offset] = o.Delta
	}
	return table
}

// Offsets returns a copy of the offset table used for origins in the given
// column, in table order.
func Offsets(col int) []Offset {
	if col%2 == 0 {
		return append([]Offset(nil), evenOffsets[:]...)
	}
	return append([]Offset(nil), oddOffsets[:]...)
}

// DeltaOf looks up offset in the table selected by the parity of col.
func DeltaOf(col, offset int) (Delta, error) {
	table := oddTable
	if col%2 == 0 {
		table = evenTable
	}
	delta, ok := table[offset]
	if !ok {
		return Delta{}, fmt.Errorf("failed to get delta of offset %d from column %d: %w", offset, col, ErrInvalidRange)
	}
	return delta, nil
}

// CheckOffset returns ErrInvalidRange when offset is in neither parity
// table. An offset known to one parity only is legal, it fails later for a
// chip placed on a column of the other parity.
func CheckOffset(offset int) error {
	_, even := evenTable[offset]
	_, odd := oddTable[offset]
	if !even && !odd {
		return fmt.Errorf("failed to check offset %d: %w", offset, ErrInvalidRange)
	}
	return nil
}
