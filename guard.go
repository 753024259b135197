// Copyright 2021 The tokensafe Authors
// This file is part of the tokensafe library.
//
// The tokensafe library is free software: you can redistribute it and/or modify
// it under the terms of the MIT Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The tokensafe library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// MIT Lesser General Public License for more details.
//
// You should have received a copy of the MIT Lesser General Public License
// along with the tokensafe library. If not, see <https://mit-license.org/>.

package tokensafe

import "sync/atomic"

// ReentrancyGuard is the scoped lock that composition code must hold around
// any sequence pairing an external call with a subsequent ledger mutation.
// The external call can run arbitrary counterpart logic before returning,
// and neither SafeCaller nor Ledger defends against that logic re-entering
// the composed sequence; the guard is where that defense lives.
//
// Unlike a mutex it does not block: a second Acquire while held fails with
// ErrReentrantCall, which is exactly the re-entry signal.
type ReentrancyGuard struct {
	entered uint32
}

func (g *ReentrancyGuard) Acquire() error {
	if !atomic.CompareAndSwapUint32(&g.entered, 0, 1) {
		return ErrReentrantCall
	}
	return nil
}

func (g *ReentrancyGuard) Release() {
	atomic.StoreUint32(&g.entered, 0)
}

// Do runs fn with the guard held.
func (g *ReentrancyGuard) Do(fn func() error) error {
	if err := g.Acquire(); err != nil {
		return err
	}
	defer g.Release()
	return fn()
}
