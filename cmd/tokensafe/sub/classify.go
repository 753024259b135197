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

package sub

import (
	"encoding/hex"
	"fmt"
	"strings"
	"tokensafe"

	"github.com/spf13/cobra"
)

var (
	classifyFail    bool
	classifyCommand = &cobra.Command{
		Use:                   "classify [<hexreturndata>] [options]",
		DisableFlagsInUseLine: true,
		Short:                 "classify a raw call outcome",
		Args:                  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ret []byte
			if len(args) == 1 && args[0] != "" {
				s := strings.TrimPrefix(args[0], "0x")
				bs, err := hex.DecodeString(s)
				if err != nil {
					return fmt.Errorf("bad return data %q: %s", args[0], err)
				}
				ret = bs
			}
			verdict := tokensafe.Classify(!classifyFail, ret)
			fmt.Println(verdict)
			return nil
		},
	}
)

func init() {
	classifyflags := classifyCommand.Flags()
	classifyflags.BoolVarP(&classifyFail, "fail", "", false, "Treat the call as abnormally terminated")
}
