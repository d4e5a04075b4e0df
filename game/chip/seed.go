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

package chip

// Seed ids of the default catalog.
const (
	DefendID = 1
	StrikeID = 2
)

// Seed returns the definitions the default catalog is built from.
func Seed() []Definition {
	return []Definition{
		{
			ID:   EmptyID,
			Name: "Empty",
			Type: Empty,
			Eff:  1.0,
		},
		{
			ID:    DefendID,
			Name:  "Defend",
			Type:  Defensive,
			Value: 1,
			Add:   1.0,
			Eff:   1.0,
		},
		{
			ID:    StrikeID,
			Name:  "Strike",
			Type:  Offensive,
			Value: 1,
			Eff:   1.0,
		},
	}
}

// Default returns the catalog every board starts with.
func Default() *Catalog {
	catalog, err := NewCatalog(Seed()...)
	if err != nil {
		panic("chip: broken seed catalog: " + err.Error())
	}
	return catalog
}
