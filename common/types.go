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

package common

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
)

const (
	AddrLen = 20
)

// Address identifies an account. It is opaque to this library: the only
// operations ever performed on it are comparison and map keying.
type Address [AddrLen]byte

var ZeroAddr = Address{}

func Hex2bytes(s string) []byte {
	if len(s) > 1 {
		if s[0:2] == "0x" {
			s = s[2:]
		}
		if len(s)%2 == 1 {
			s = "0" + s
		}
		bs, err := hex.DecodeString(s)
		if err != nil {
			return nil
		}
		return bs
	}
	return nil
}

func Bytes2Address(b []byte) Address {
	var a Address
	a.SetBytes(b)
	return a
}

func Hex2Address(s string) Address {
	return Bytes2Address(Hex2bytes(s))
}

func (a *Address) SetBytes(b []byte) {
	if len(b) > len(a) {
		b = b[len(b)-AddrLen:]
	}
	copy(a[AddrLen-len(b):], b)
}

func (a *Address) Hex() string {
	return "0x" + hex.EncodeToString(a[:])
}

func (a *Address) Bytes() []byte {
	return a[:]
}

func (a *Address) String() string {
	return a.Hex()
}

func (a *Address) Equals(b Address) bool {
	return bytes.Equal(a[:], b[:])
}

func (a *Address) IsZero() bool {
	return bytes.Equal(a[:], ZeroAddr[:])
}

func (a *Address) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("\"%s\"", a.Hex())), nil
}

func (a *Address) UnmarshalJSON(data []byte) error {
	if len(data) < 2 {
		return errors.New("short address literal")
	}
	*a = Hex2Address(string(data[1 : len(data)-1]))
	return nil
}

func AddrCalibrator(val string) error {
	addr := Hex2bytes(val)
	if len(addr) != AddrLen {
		return errors.New("parameter byte length rule failed")
	}
	return nil
}
