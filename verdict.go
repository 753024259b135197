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

import "github.com/holiman/uint256"

// Verdict is the three-way classification of a raw call outcome. Two raw
// signals exist: whether the call terminated normally, and what bytes it
// returned. Compliant counterparts return a full-width word holding 1;
// older counterparts return nothing on success; anything else is a failure.
type Verdict uint8

const (
	VerdictFailure Verdict = iota

	// VerdictSuccess: normal termination and a canonical-true return word.
	VerdictSuccess

	// VerdictEmptySuccess: normal termination with zero returned bytes.
	// Treated as success. Note a target with no executable code at all
	// also lands here - the raw call primitive cannot tell the two apart,
	// and this package does not try to (see CodeChecker).
	VerdictEmptySuccess
)

var canonicalTrue = uint256.NewInt(1)

func (v Verdict) Ok() bool {
	return v != VerdictFailure
}

func (v Verdict) String() string {
	switch v {
	case VerdictSuccess:
		return "success"
	case VerdictEmptySuccess:
		return "success(no-return)"
	default:
		return "failure"
	}
}

// Classify maps a raw call outcome to a Verdict. It is pure and total:
//
//	ok=false, any return        -> VerdictFailure
//	ok=true,  0 bytes           -> VerdictEmptySuccess
//	ok=true,  word == 1         -> VerdictSuccess
//	ok=true,  anything else     -> VerdictFailure
//
// A non-empty return shorter than one word is malformed and therefore a
// failure; extra bytes past the first word are ignored.
func Classify(ok bool, ret []byte) Verdict {
	if !ok {
		return VerdictFailure
	}
	if len(ret) == 0 {
		return VerdictEmptySuccess
	}
	if len(ret) < WordLen {
		return VerdictFailure
	}
	word := new(uint256.Int).SetBytes(ret[:WordLen])
	if word.Eq(canonicalTrue) {
		return VerdictSuccess
	}
	return VerdictFailure
}
