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
	"sync"
	"tokensafe/common"
	"tokensafe/log"

	"github.com/holiman/uint256"
	"github.com/sirupsen/logrus"
)

// UnlimitedAllowance is the allowance sentinel that SpendAllowance never
// decrements.
var UnlimitedAllowance = new(uint256.Int).SetAllOne()

type allowanceKey struct {
	owner   common.Address
	spender common.Address
}

// Ledger is the in-memory bookkeeping for one accounting domain: balances,
// allowances and the running total supply. Absent entries read as zero and a
// drained entry is never deleted, so a zero balance cannot be told apart
// from a never-touched account.
//
// The design contract is sum(balances) == totalSupply. Credit and Debit
// maintain it; UnsafeCredit exists to break it on purpose. Every operation
// is atomic: preconditions are checked before the first write, so a failed
// operation leaves no partial mutation behind. No ledger operation performs
// an external call, and separate Ledger instances share nothing.
type Ledger struct {
	mu          sync.RWMutex
	balances    map[common.Address]*uint256.Int
	allowances  map[allowanceKey]*uint256.Int
	totalSupply *uint256.Int
	eventBus    *EventBus
	config      Config
	logger      log.Logger
}

func NewLedger(config Config) *Ledger {
	logger := config.Logger
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Ledger{
		balances:    make(map[common.Address]*uint256.Int),
		allowances:  make(map[allowanceKey]*uint256.Int),
		totalSupply: new(uint256.Int),
		eventBus:    NewEventBus(),
		config:      config,
		logger:      logger,
	}
}

// EventBus exposes the ledger's notification bus for subscription.
func (l *Ledger) EventBus() *EventBus {
	return l.eventBus
}

func (l *Ledger) balance(addr common.Address) *uint256.Int {
	if b, ok := l.balances[addr]; ok {
		return b
	}
	return new(uint256.Int)
}

// BalanceOf returns a copy of the account balance.
func (l *Ledger) BalanceOf(addr common.Address) *uint256.Int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return new(uint256.Int).Set(l.balance(addr))
}

// TotalSupply returns a copy of the running supply counter.
func (l *Ledger) TotalSupply() *uint256.Int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return new(uint256.Int).Set(l.totalSupply)
}

// Allowance returns a copy of the remaining spend for (owner, spender).
func (l *Ledger) Allowance(owner, spender common.Address) *uint256.Int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if a, ok := l.allowances[allowanceKey{owner, spender}]; ok {
		return new(uint256.Int).Set(a)
	}
	return new(uint256.Int)
}

// Credit mints amount to account: balance and total supply both rise, or
// neither does. ErrOverflow if either 256-bit addition carries out.
func (l *Ledger) Credit(account common.Address, amount *uint256.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	newBalance, carry := new(uint256.Int).AddOverflow(l.balance(account), amount)
	if carry {
		return ErrOverflow
	}
	newSupply, carry := new(uint256.Int).AddOverflow(l.totalSupply, amount)
	if carry {
		return ErrOverflow
	}
	l.balances[account] = newBalance
	l.totalSupply = newSupply
	l.eventBus.Publish(CreditEvent{Account: account, Amount: new(uint256.Int).Set(amount)})
	return nil
}

// Debit burns amount from account: balance and total supply both fall, or
// neither does. ErrInsufficientBalance if the account cannot cover it;
// ErrOverflow if the supply counter would underflow, which only happens
// after the invariant has already been broken by UnsafeCredit.
func (l *Ledger) Debit(account common.Address, amount *uint256.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	balance := l.balance(account)
	if balance.Lt(amount) {
		return ErrInsufficientBalance
	}
	newSupply, borrow := new(uint256.Int).SubOverflow(l.totalSupply, amount)
	if borrow {
		return ErrOverflow
	}
	l.balances[account] = new(uint256.Int).Sub(balance, amount)
	l.totalSupply = newSupply
	l.eventBus.Publish(DebitEvent{Account: account, Amount: new(uint256.Int).Set(amount)})
	return nil
}

// Transfer moves amount between accounts; total supply is untouched.
// from == to and zero amounts are successful no-ops.
func (l *Ledger) Transfer(from, to common.Address, amount *uint256.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	fromBalance := l.balance(from)
	if fromBalance.Lt(amount) {
		return ErrInsufficientBalance
	}
	if !from.Equals(to) && !amount.IsZero() {
		newTo, carry := new(uint256.Int).AddOverflow(l.balance(to), amount)
		if carry {
			return ErrOverflow
		}
		l.balances[from] = new(uint256.Int).Sub(fromBalance, amount)
		l.balances[to] = newTo
	}
	l.eventBus.Publish(TransferEvent{From: from, To: to, Amount: new(uint256.Int).Set(amount)})
	return nil
}

// Approve sets the (owner, spender) allowance to amount outright. It does
// not add. When the ledger is configured with SentinelViaApprove=false the
// unlimited sentinel is refused here and only ApproveUnlimited may set it.
func (l *Ledger) Approve(owner, spender common.Address, amount *uint256.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.config.SentinelViaApprove && amount.Eq(UnlimitedAllowance) {
		return ErrSentinelReserved
	}
	l.setAllowance(owner, spender, amount)
	return nil
}

// ApproveUnlimited sets the (owner, spender) allowance to the unlimited
// sentinel regardless of configuration.
func (l *Ledger) ApproveUnlimited(owner, spender common.Address) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.setAllowance(owner, spender, UnlimitedAllowance)
}

func (l *Ledger) setAllowance(owner, spender common.Address, amount *uint256.Int) {
	value := new(uint256.Int).Set(amount)
	l.allowances[allowanceKey{owner, spender}] = value
	l.eventBus.Publish(ApprovalEvent{
		Owner:     owner,
		Spender:   spender,
		Amount:    new(uint256.Int).Set(value),
		Unlimited: value.Eq(UnlimitedAllowance),
	})
}

// SpendAllowance consumes amount from the (owner, spender) allowance. The
// unlimited sentinel is never decremented. ErrInsufficientAllowance if the
// remaining spend cannot cover amount.
func (l *Ledger) SpendAllowance(owner, spender common.Address, amount *uint256.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	key := allowanceKey{owner, spender}
	current, ok := l.allowances[key]
	if !ok {
		current = new(uint256.Int)
	}
	if current.Eq(UnlimitedAllowance) {
		return nil
	}
	if current.Lt(amount) {
		return ErrInsufficientAllowance
	}
	l.allowances[key] = new(uint256.Int).Sub(current, amount)
	return nil
}

// UnsafeCredit raises the account balance WITHOUT touching total supply,
// leaving sum(balances) above the supply counter by exactly amount. It
// exists so the broken-invariant condition stays demonstrable and
// regression-testable; it publishes its own event type so an observer can
// always tell it apart from Credit.
func (l *Ledger) UnsafeCredit(account common.Address, amount *uint256.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	newBalance, carry := new(uint256.Int).AddOverflow(l.balance(account), amount)
	if carry {
		return ErrOverflow
	}
	l.balances[account] = newBalance
	l.logger.WithFields(logrus.Fields{
		"account": account.Hex(),
		"amount":  amount,
	}).Warnf("unsafe credit bypasses total supply")
	l.eventBus.Publish(UnsafeCreditEvent{Account: account, Amount: new(uint256.Int).Set(amount)})
	return nil
}

// BalanceSum walks every balance entry and adds them up. It exists for
// invariant auditing: on a healthy ledger it equals TotalSupply.
func (l *Ledger) BalanceSum() *uint256.Int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	sum := new(uint256.Int)
	for _, b := range l.balances {
		sum.Add(sum, b)
	}
	return sum
}
