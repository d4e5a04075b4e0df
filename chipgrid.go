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

// Package chipgrid provides a thread safe board of chips which values can be
// recomputed on demand.
package chipgrid

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/yagoggame/chipgrid/game/chip"
	"github.com/yagoggame/chipgrid/game/field"
	"github.com/yagoggame/chipgrid/game/grid"
	"github.com/yagoggame/chipgrid/game/interfaces"
	"github.com/yagoggame/chipgrid/game/value"
)

var (
	// ErrBoardReleased error occurs when a board is used after Release
	ErrBoardReleased = errors.New("board is released")
	// ErrNilCatalog error occurs when NewBoard gets a nil catalog
	ErrNilCatalog = errors.New("failed to operate on nil catalog")
)

// Board is a datatype based on chanel, to provide a thread safe board of chips.
// Placements and recomputations are processed one at a time, so a
// recomputation never sees a half applied placement.
type Board chan *command

type options struct {
	catalog  *chip.Catalog
	resolver interfaces.Resolver
	cache    *grid.CacheConfig
	logger   *logrus.Entry
	field    *field.Field
}

// Option configures NewBoard.
type Option func(*options)

// WithCatalog replaces the default chip catalog.
func WithCatalog(catalog *chip.Catalog) Option {
	return func(o *options) {
		o.catalog = catalog
	}
}

// WithResolver replaces the range resolver.
func WithResolver(resolver interfaces.Resolver) Option {
	return func(o *options) {
		o.resolver = resolver
	}
}

// WithRangeCache memoizes range checks with a cache sized by cfg.
func WithRangeCache(cfg grid.CacheConfig) Option {
	return func(o *options) {
		o.cache = &cfg
	}
}

// WithLogger sets the logger of the board. By default nothing is logged.
func WithLogger(logger *logrus.Entry) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithField starts the board from a copy of f instead of an empty one.
func WithField(f *field.Field) Option {
	return func(o *options) {
		o.field = f.Clone()
	}
}

// NewBoard creates a board with every cell Empty.
// Board must be destroyed after using by call of Release() method.
//
// Every target offset of every catalog chip must be in at least one parity
// table, otherwise NewBoard fails with grid.ErrInvalidRange. An offset only
// one parity knows fails in Recompute, once its chip sits on the other one.
func NewBoard(opts ...Option) (Board, error) {
	o := &options{
		catalog:  chip.Default(),
		resolver: grid.NewResolver(),
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.catalog == nil {
		return nil, ErrNilCatalog
	}
	if err := validateCatalog(o.catalog); err != nil {
		return nil, err
	}
	if o.logger == nil {
		silent := logrus.New()
		silent.SetOutput(io.Discard)
		o.logger = logrus.NewEntry(silent)
	}
	if o.field == nil {
		o.field = field.New()
	}

	var closer func()
	if o.cache != nil {
		cached, err := grid.NewCachedResolver(o.resolver, *o.cache)
		if err != nil {
			return nil, err
		}
		o.resolver = cached
		closer = cached.Close
	}

	b := make(Board)
	b.run(&boardState{
		field:    o.field,
		catalog:  o.catalog,
		resolver: o.resolver,
		logger:   o.logger,
		closer:   closer,
	})
	return b, nil
}

// Place puts chipID on the cell with the given index.
// Whether chipID exists in the catalog is checked by Recompute.
func (b Board) Place(index, chipID int) (err error) {
	defer recoverAsErr(&err)

	c := make(chan interface{})
	b <- &command{act: place, index: index, chip: chipID, rez: c}

	if err, ok := (<-c).(error); ok {
		return err
	}
	return nil
}

// Clear puts the Empty chip on every cell.
func (b Board) Clear() (err error) {
	defer recoverAsErr(&err)

	c := make(chan interface{})
	b <- &command{act: clr, rez: c}
	<-c
	return nil
}

// Recompute calculates the value of the current placements and reports it
// to everybody waiting in WaitValue.
func (b Board) Recompute() (state *value.State, err error) {
	defer recoverAsErr(&err)

	c := make(chan interface{})
	b <- &command{act: recompute, rez: c}

	switch rez := (<-c).(type) {
	case error:
		return nil, rez
	case *value.State:
		return rez, nil
	}
	return nil, fmt.Errorf("failed to recompute: %w", ErrBoardReleased)
}

// Placements returns a copy of every cell of the board.
func (b Board) Placements() (cells []field.Cell, err error) {
	defer recoverAsErr(&err)

	c := make(chan interface{})
	b <- &command{act: lst, rez: c}

	cells, ok := (<-c).([]field.Cell)
	if !ok {
		return nil, fmt.Errorf("failed to list placements: %w", ErrBoardReleased)
	}
	return cells, nil
}

// DefinitionOf returns the catalog definition of the chip with the given id.
func (b Board) DefinitionOf(id int) (def chip.Definition, err error) {
	defer recoverAsErr(&err)

	c := make(chan interface{})
	b <- &command{act: getC, chip: id, rez: c}

	switch rez := (<-c).(type) {
	case error:
		return chip.Definition{}, rez
	case chip.Definition:
		return rez, nil
	}
	return chip.Definition{}, fmt.Errorf("failed to get definition of chip %d: %w", id, ErrBoardReleased)
}

// CoordinateOf returns the column and row of the cell with the given index.
func (b Board) CoordinateOf(index int) (grid.Coord, error) {
	return grid.CoordinateOf(index)
}

// WaitValue waits for the next successful Recompute and returns its result.
func (b Board) WaitValue(ctx context.Context) (state *value.State, err error) {
	defer recoverAsErr(&err)

	// buffered: a cancelled waiter must not block the board when it reports later
	c := make(chan interface{}, 1)
	b <- &command{act: waitV, rez: c}

	select {
	case rez, ok := <-c:
		if !ok {
			return nil, ErrBoardReleased
		}
		switch rez := rez.(type) {
		case error:
			return nil, rez
		case *value.State:
			return rez, nil
		}
		return nil, fmt.Errorf("unknown type of value returned: %T: %v", rez, rez)
	case <-ctx.Done():
		b.forget(c)
		return nil, fmt.Errorf("failed to wait value: %w", ctx.Err())
	}
}

// forget removes the waiter listening on c. A released board has no waiters
// left to remove.
func (b Board) forget(c chan interface{}) {
	defer recoverAsErr(new(error))

	b <- &command{act: dropW, rez: c}
}

// Release releases the board. Every pending WaitValue gets ErrBoardReleased.
func (b Board) Release() {
	defer recoverAsErr(new(error))

	c := make(chan interface{})
	b <- &command{act: rel, rez: c}
	<-c
}

func validateCatalog(catalog *chip.Catalog) error {
	for _, id := range catalog.IDs() {
		def, err := catalog.DefinitionOf(id)
		if err != nil {
			return err
		}
		for _, offset := range def.Targets {
			if err := grid.CheckOffset(offset); err != nil {
				return fmt.Errorf("failed to validate chip %d (%s): %w", def.ID, def.Name, err)
			}
		}
	}
	return nil
}
