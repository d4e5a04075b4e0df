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

package chipgrid

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"github.com/yagoggame/chipgrid/game/chip"
	"github.com/yagoggame/chipgrid/game/field"
	"github.com/yagoggame/chipgrid/game/interfaces"
	"github.com/yagoggame/chipgrid/game/value"
)

// action is a type with actions values.
type action int

// set of actions values of Board object.
const (
	place     action = iota // put a chip on a cell
	clr                     // empty every cell
	recompute               // calculate the value of the board
	lst                     // get list of cells
	getC                    // get chip definition
	waitV                   // wait for the next recompute
	dropW                   // forget a cancelled waiter
	rel                     // release all data
)

// command is a type to hold a command to a Board.
type command struct {
	act   action
	index int
	chip  int
	rez   chan<- interface{}
}

// boardState is owned by the goroutine of run and never shared.
type boardState struct {
	field    *field.Field
	catalog  *chip.Catalog
	resolver interfaces.Resolver
	logger   *logrus.Entry
	closer   func()
	// delayed inform for WaitValue's clients
	waiters []chan<- interface{}
}

func recoverAsErr(err *error) {
	r := recover()
	if r == nil {
		return
	}

	errR, ok := r.(error)
	if !ok || errR.Error() != "send on closed channel" {
		panic(r)
	}
	*err = ErrBoardReleased
}

// placeChip implements concurrently safe processing of query of
// Place function
func placeChip(bs *boardState, cmd *command) {
	defer close(cmd.rez)

	if err := bs.field.Place(cmd.index, cmd.chip); err != nil {
		bs.logger.WithError(err).Error("failed to place chip")
		cmd.rez <- err
		return
	}
	bs.logger.WithFields(logrus.Fields{"index": cmd.index, "chip": cmd.chip}).Debug("chip placed")
}

// clearField implements concurrently safe processing of query of
// Clear function
func clearField(bs *boardState, rezChan chan<- interface{}) {
	defer close(rezChan)

	bs.field.Clear()
	bs.logger.Debug("board cleared")
}

// recomputeValue implements concurrently safe processing of query of
// Recompute function
func recomputeValue(bs *boardState, rezChan chan<- interface{}) {
	defer close(rezChan)

	state, err := value.Recompute(bs.field, bs.catalog, bs.resolver)
	if err != nil {
		bs.logger.WithError(err).Error("failed to recompute board value")
		rezChan <- err
		return
	}
	bs.logger.WithFields(logrus.Fields{"offense": state.Offense, "defense": state.Defense}).Debug("board value recomputed")

	for i := range bs.waiters {
		reportOnChan(&bs.waiters[i], state.Clone())
	}
	bs.waiters = bs.waiters[:0]

	rezChan <- state
}

// listCells implements concurrently safe processing of query of
// Placements function
func listCells(bs *boardState, rezChan chan<- interface{}) {
	defer close(rezChan)

	rezChan <- bs.field.Cells()
}

// getDefinition implements concurrently safe processing of query of
// DefinitionOf function
func getDefinition(bs *boardState, cmd *command) {
	defer close(cmd.rez)

	def, err := bs.catalog.DefinitionOf(cmd.chip)
	if err != nil {
		cmd.rez <- err
		return
	}
	cmd.rez <- def
}

// dropWaiter forgets the waiter listening on rezChan, if it is still pending.
func dropWaiter(bs *boardState, rezChan chan<- interface{}) {
	for i := range bs.waiters {
		if bs.waiters[i] == rezChan {
			reportOnChan(&bs.waiters[i], nil)
			bs.waiters = slices.Delete(bs.waiters, i, i+1)
			return
		}
	}
}

func reportOnChan(rezChan *chan<- interface{}, val interface{}) {
	if *rezChan != nil {
		if val != nil {
			*rezChan <- val
		}
		close(*rezChan)
		*rezChan = nil
	}
}

func (bs *boardState) release() {
	for i := range bs.waiters {
		reportOnChan(&bs.waiters[i], ErrBoardReleased)
	}
	bs.waiters = nil
	if bs.closer != nil {
		bs.closer()
	}
}

// run processes commands for thread safe operations on board.
func (b Board) run(bs *boardState) {
	go func(b Board) {
		for cmd := range b {
			switch cmd.act {
			case rel:
				close(b)
				close(cmd.rez)

			case place:
				placeChip(bs, cmd)
			case clr:
				clearField(bs, cmd.rez)
			case recompute:
				recomputeValue(bs, cmd.rez)
			case lst:
				listCells(bs, cmd.rez)
			case getC:
				getDefinition(bs, cmd)
			case waitV:
				bs.waiters = append(bs.waiters, cmd.rez)
			case dropW:
				dropWaiter(bs, cmd.rez)
			}
		}
		bs.release()
	}(b)
}
