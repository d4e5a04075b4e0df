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
	"context"
	"testing"
	"time"

	"github.com/yagoggame/chipgrid/game/chip"
	"github.com/yagoggame/chipgrid/game/value"
)

const rallyID = 10

func newTestBoard(t *testing.T, opts ...Option) Board {
	t.Helper()
	board, err := NewBoard(opts...)
	if err != nil {
		t.Fatalf("Unexpected NewBoard() error: %v", err)
	}
	t.Cleanup(board.Release)
	return board
}

func rallyCatalog(t *testing.T, targets ...int) *chip.Catalog {
	t.Helper()
	defs := append(chip.Seed(), chip.Definition{
		ID:       rallyID,
		Name:     "Rally",
		Type:     chip.Offensive,
		Value:    1,
		Increase: 1.0,
		Eff:      1,
		Targets:  targets,
	})
	catalog, err := chip.NewCatalog(defs...)
	if err != nil {
		t.Fatalf("Unexpected NewCatalog() error: %v", err)
	}
	return catalog
}

func placeAll(t *testing.T, board Board, placements map[int]int) {
	t.Helper()
	for index, id := range placements {
		if err := board.Place(index, id); err != nil {
			t.Fatalf("Unexpected Place(%d, %d) error: %v", index, id, err)
		}
	}
}

func checkTotals(t *testing.T, state *value.State, offense, defense int) {
	t.Helper()
	if state.Offense != offense || state.Defense != defense {
		t.Errorf("Unexpected totals:\nwant: %d : %d,\ngot: %d : %d.", offense, defense, state.Offense, state.Defense)
	}
}

// asyncWaitValue runs WaitValue in its own goroutine.
func asyncWaitValue(ctx context.Context, board Board) <-chan waitResult {
	c := make(chan waitResult, 1)
	go func() {
		state, err := board.WaitValue(ctx)
		c <- waitResult{state: state, err: err}
		close(c)
	}()
	return c
}

type waitResult struct {
	state *value.State
	err   error
}

// recomputeUntil recomputes board until the waiter reports or dur passes.
func recomputeUntil(t *testing.T, board Board, waiter <-chan waitResult, dur time.Duration) waitResult {
	t.Helper()
	deadline := time.After(dur)
	for {
		if _, err := board.Recompute(); err != nil {
			t.Fatalf("Unexpected Recompute() error: %v", err)
		}
		select {
		case rez := <-waiter:
			return rez
		case <-deadline:
			t.Fatalf("WaitValue did not return in %v", dur)
		case <-time.After(10 * time.Millisecond):
		}
	}
}
