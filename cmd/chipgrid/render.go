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

package main

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/yagoggame/chipgrid/game/grid"
)

const cellWidth = 4

var printer = message.NewPrinter(language.English)

// renderBoard writes values the way the board is drawn: top row first, with
// odd columns half a row above even ones. Every board row takes two lines.
func renderBoard(w io.Writer, values []int) {
	for row := grid.Height - 1; row >= 0; row-- {
		var upper, lower strings.Builder
		for col := 0; col < grid.Width; col++ {
			cell := fmt.Sprintf("%*s", cellWidth, printer.Sprint(values[col+row*grid.Width]))
			blank := strings.Repeat(" ", cellWidth)
			if col%2 == 1 {
				upper.WriteString(cell)
				lower.WriteString(blank)
			} else {
				upper.WriteString(blank)
				lower.WriteString(cell)
			}
		}
		fmt.Fprintln(w, strings.TrimRight(upper.String(), " "))
		fmt.Fprintln(w, strings.TrimRight(lower.String(), " "))
	}
}
