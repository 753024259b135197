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

package main

import "tokensafe/cmd/tokensafe/sub"

func main() {
	sub.Execute()
}
