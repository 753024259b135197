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
	"fmt"
	"math/big"
	"tokensafe/common"
	"tokensafe/log"

	"github.com/holiman/uint256"
	"github.com/sirupsen/logrus"
)

// Backend is the raw call primitive. Implementations must forward all
// available execution budget to the call: capping it is a caller error for
// this package's use case, since a starved legitimate recipient shows up as
// a false failure. A nil value means no native currency travels with the
// call. ok reports normal termination; ret is whatever the target returned,
// verbatim.
//
// The primitive reports ok=true with empty ret when the target has no
// executable code at all. SafeCaller does not compensate for that: callers
// must consult a CodeChecker before trusting a success verdict against an
// unknown target. Probing for code here instead would change the cost
// profile of every single call for the sake of targets the caller is
// required to have vetted already.
type Backend interface {
	Call(target common.Address, value *uint256.Int, input []byte) (ok bool, ret []byte)
}

// CodeChecker is the code-existence predicate callers are obliged to consult
// before invoking SafeCaller against an unvetted target.
type CodeChecker interface {
	HasCode(addr common.Address) bool
}

// Authority is the external gate deciding who may invoke which operation.
// Enforcement lives with the host, not here.
type Authority interface {
	CanCall(subject common.Address, op string) bool
}

// SafeCaller issues value-transfer-shaped calls and reduces each raw outcome
// to a single error. Exactly one external call per invocation, synchronous,
// no timeout, no retry: a second attempt after an ambiguous first one is how
// funds get moved twice.
type SafeCaller struct {
	backend Backend
	logger  log.Logger
}

func NewSafeCaller(backend Backend) *SafeCaller {
	return &SafeCaller{
		backend: backend,
		logger:  log.DefaultLogger(),
	}
}

func (c *SafeCaller) call(target common.Address, value *uint256.Int, input []byte) Verdict {
	ok, ret := c.backend.Call(target, value, input)
	verdict := Classify(ok, ret)
	c.logger.WithFields(logrus.Fields{
		"target":  target.Hex(),
		"datalen": len(input),
		"retlen":  len(ret),
		"verdict": verdict,
	}).Debugf("external call")
	return verdict
}

// SendValue transmits amount as native currency to target with zero-length
// call data. Failure surfaces as ErrNativeTransferFailed.
func (c *SafeCaller) SendValue(target common.Address, amount *big.Int) error {
	value, err := amountWord(amount)
	if err != nil {
		return err
	}
	if v := c.call(target, value, nil); !v.Ok() {
		return fmt.Errorf("%w: to=%s", ErrNativeTransferFailed, target.Hex())
	}
	return nil
}

// Transfer issues transfer(to, amount) against the token at target.
// Failure surfaces as ErrTransferFailed.
func (c *SafeCaller) Transfer(target, to common.Address, amount *big.Int) error {
	input, err := PackTransfer(to, amount)
	if err != nil {
		return err
	}
	if v := c.call(target, nil, input); !v.Ok() {
		return fmt.Errorf("%w: token=%s to=%s", ErrTransferFailed, target.Hex(), to.Hex())
	}
	return nil
}

// TransferFrom issues transfer(from, to, amount) against the token at
// target. Failure surfaces as ErrTransferFromFailed.
func (c *SafeCaller) TransferFrom(target, from, to common.Address, amount *big.Int) error {
	input, err := PackTransferFrom(from, to, amount)
	if err != nil {
		return err
	}
	if v := c.call(target, nil, input); !v.Ok() {
		return fmt.Errorf("%w: token=%s from=%s to=%s", ErrTransferFromFailed, target.Hex(), from.Hex(), to.Hex())
	}
	return nil
}

// Approve issues approve(spender, amount) against the token at target.
// Failure surfaces as ErrApproveFailed.
func (c *SafeCaller) Approve(target, spender common.Address, amount *big.Int) error {
	input, err := PackApprove(spender, amount)
	if err != nil {
		return err
	}
	if v := c.call(target, nil, input); !v.Ok() {
		return fmt.Errorf("%w: token=%s spender=%s", ErrApproveFailed, target.Hex(), spender.Hex())
	}
	return nil
}
