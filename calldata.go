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
	"math/big"
	"tokensafe/common"

	"github.com/holiman/uint256"
)

const (
	// SelectorLen is the fixed operation-identifier prefix length.
	SelectorLen = 4
	// WordLen is the fixed argument field width.
	WordLen = 32
)

// Selector is the 4-byte operation identifier prefixed to a call payload.
type Selector [SelectorLen]byte

// The three fixed call shapes this package can produce.
var (
	SelTransferFrom = Selector{0x23, 0xb8, 0x72, 0xdd} // transferFrom(address,address,uint256)
	SelTransfer     = Selector{0xa9, 0x05, 0x9c, 0xbb} // transfer(address,uint256)
	SelApprove      = Selector{0x09, 0x5e, 0xa7, 0xb3} // approve(address,uint256)
)

// amountWord converts amount to a fixed-width word. A nil, negative or
// over-width amount is a caller error, never truncated.
func amountWord(amount *big.Int) (*uint256.Int, error) {
	if amount == nil || amount.Sign() < 0 {
		return nil, ErrArgumentOverflow
	}
	n, overflow := uint256.FromBig(amount)
	if overflow {
		return nil, ErrArgumentOverflow
	}
	return n, nil
}

func appendAddrWord(buf []byte, addr common.Address) []byte {
	var word [WordLen]byte
	copy(word[WordLen-common.AddrLen:], addr[:])
	return append(buf, word[:]...)
}

func appendAmountWord(buf []byte, n *uint256.Int) []byte {
	word := n.Bytes32()
	return append(buf, word[:]...)
}

// PackTransfer builds the 68-byte transfer(to, amount) payload.
func PackTransfer(to common.Address, amount *big.Int) ([]byte, error) {
	n, err := amountWord(amount)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 0, SelectorLen+2*WordLen)
	buf = append(buf, SelTransfer[:]...)
	buf = appendAddrWord(buf, to)
	buf = appendAmountWord(buf, n)
	return buf, nil
}

// PackTransferFrom builds the 100-byte transfer(from, to, amount) payload.
func PackTransferFrom(from, to common.Address, amount *big.Int) ([]byte, error) {
	n, err := amountWord(amount)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 0, SelectorLen+3*WordLen)
	buf = append(buf, SelTransferFrom[:]...)
	buf = appendAddrWord(buf, from)
	buf = appendAddrWord(buf, to)
	buf = appendAmountWord(buf, n)
	return buf, nil
}

// PackApprove builds the 68-byte approve(spender, amount) payload.
func PackApprove(spender common.Address, amount *big.Int) ([]byte, error) {
	n, err := amountWord(amount)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 0, SelectorLen+2*WordLen)
	buf = append(buf, SelApprove[:]...)
	buf = appendAddrWord(buf, spender)
	buf = appendAmountWord(buf, n)
	return buf, nil
}
