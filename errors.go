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

import "errors"

// Every error below is terminal for the operation that raised it. Nothing in
// this library retries, queues, or falls back to another call shape; the
// error surfaces synchronously to the immediate caller and the ledger is
// left exactly as it was before the failed operation started.
var (
	// ErrArgumentOverflow reports a call argument that does not fit the
	// 256-bit word width. Arguments are never truncated.
	ErrArgumentOverflow = errors.New("argument exceeds 256-bit word")

	// ErrNativeTransferFailed reports a failed native-currency send.
	ErrNativeTransferFailed = errors.New("native transfer failed")

	// ErrTransferFailed reports a failed two-argument token transfer.
	ErrTransferFailed = errors.New("token transfer failed")

	// ErrTransferFromFailed reports a failed three-argument token transfer.
	ErrTransferFromFailed = errors.New("token transferFrom failed")

	// ErrApproveFailed reports a failed approval call.
	ErrApproveFailed = errors.New("token approve failed")

	// ErrOverflow reports 256-bit arithmetic leaving the representable
	// range during a ledger mutation.
	ErrOverflow = errors.New("balance arithmetic overflow")

	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrInsufficientAllowance = errors.New("insufficient allowance")

	// ErrSentinelReserved reports an ordinary Approve carrying the
	// unlimited-allowance sentinel while the ledger is configured to
	// accept the sentinel only through ApproveUnlimited.
	ErrSentinelReserved = errors.New("unlimited allowance sentinel reserved")

	// ErrReentrantCall reports a guard acquisition while the guard is
	// already held.
	ErrReentrantCall = errors.New("reentrant call")
)
