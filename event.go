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

import (
	"reflect"
	"sync"
)

const subscriptionBuffer = 128

// EventBus dispatches ledger notifications to registered receivers.
// Receivers are registered against a concrete event type. Delivery is
// synchronous into a buffered channel; a receiver that has fallen
// subscriptionBuffer events behind misses further ones rather than
// stalling ledger mutation.
type EventBus struct {
	subs map[reflect.Type][]chan interface{}
	rw   sync.RWMutex
}

type Subscription struct {
	eb    *EventBus
	typ   reflect.Type
	index int
	c     chan interface{}
}

func (s *Subscription) Chan() chan interface{} {
	return s.c
}

func (s *Subscription) Unsubscribe() {
	s.eb.unsubscribe(s.typ, s.index)
}

func NewEventBus() *EventBus {
	return &EventBus{
		subs: make(map[reflect.Type][]chan interface{}),
	}
}

// Subscribe registers a receiver for events of the same concrete type as t.
func (e *EventBus) Subscribe(t interface{}) *Subscription {
	e.rw.Lock()
	defer e.rw.Unlock()
	rtyp := reflect.TypeOf(t)
	sub := &Subscription{
		typ: rtyp,
		c:   make(chan interface{}, subscriptionBuffer),
		eb:  e,
	}
	sub.index = len(e.subs[rtyp])
	e.subs[rtyp] = append(e.subs[rtyp], sub.c)
	return sub
}

func (e *EventBus) Publish(data interface{}) {
	e.rw.RLock()
	defer e.rw.RUnlock()
	rtyp := reflect.TypeOf(data)
	for _, ch := range e.subs[rtyp] {
		if ch == nil {
			continue
		}
		select {
		case ch <- data:
		default:
		}
	}
}

func (e *EventBus) unsubscribe(t reflect.Type, index int) {
	e.rw.Lock()
	defer e.rw.Unlock()
	cs, found := e.subs[t]
	if !found || index >= len(cs) || cs[index] == nil {
		return
	}
	close(cs[index])
	cs[index] = nil
}
