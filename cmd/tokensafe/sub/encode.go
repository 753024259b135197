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
	"errors"
	"fmt"
	"math/big"
	"tokensafe"
	"tokensafe/common"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	encodeDecimals int32
	encodeCommand  = &cobra.Command{
		Use:                   "encode <command> [options]",
		DisableFlagsInUseLine: true,
		Short:                 "build hex call payloads",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	encodeTransferCommand = &cobra.Command{
		Use:                   "transfer <to> <amount> [options]",
		DisableFlagsInUseLine: true,
		Short:                 "encode transfer(to, amount)",
		Args:                  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			to, err := parseAddr(args[0])
			if err != nil {
				return err
			}
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			data, err := tokensafe.PackTransfer(to, amount)
			if err != nil {
				return err
			}
			fmt.Printf("0x%s\n", hex.EncodeToString(data))
			return nil
		},
	}
	encodeTransferFromCommand = &cobra.Command{
		Use:                   "transferfrom <from> <to> <amount> [options]",
		DisableFlagsInUseLine: true,
		Short:                 "encode transfer(from, to, amount)",
		Args:                  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseAddr(args[0])
			if err != nil {
				return err
			}
			to, err := parseAddr(args[1])
			if err != nil {
				return err
			}
			amount, err := parseAmount(args[2])
			if err != nil {
				return err
			}
			data, err := tokensafe.PackTransferFrom(from, to, amount)
			if err != nil {
				return err
			}
			fmt.Printf("0x%s\n", hex.EncodeToString(data))
			return nil
		},
	}
	encodeApproveCommand = &cobra.Command{
		Use:                   "approve <spender> <amount> [options]",
		DisableFlagsInUseLine: true,
		Short:                 "encode approve(spender, amount)",
		Args:                  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			spender, err := parseAddr(args[0])
			if err != nil {
				return err
			}
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			data, err := tokensafe.PackApprove(spender, amount)
			if err != nil {
				return err
			}
			fmt.Printf("0x%s\n", hex.EncodeToString(data))
			return nil
		},
	}
)

func parseAddr(s string) (common.Address, error) {
	if err := common.AddrCalibrator(s); err != nil {
		return common.ZeroAddr, fmt.Errorf("bad address %q: %s", s, err)
	}
	return common.Hex2Address(s), nil
}

// parseAmount reads a decimal token amount and scales it into base units by
// the configured decimals.
func parseAmount(s string) (*big.Int, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("bad amount %q: %s", s, err)
	}
	scaled := d.Shift(encodeDecimals)
	if !scaled.IsInteger() {
		return nil, errors.New("amount has more decimal places than the token")
	}
	if scaled.Sign() < 0 {
		return nil, errors.New("amount must not be negative")
	}
	return scaled.BigInt(), nil
}

func init() {
	encodeflags := encodeCommand.PersistentFlags()
	encodeflags.Int32VarP(&encodeDecimals, "decimals", "d", defaultDecimals, "Scale amounts by 10^decimals")
	encodeCommand.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("decimals") {
			return nil
		}
		config, err := readConfig()
		if err != nil {
			return err
		}
		encodeDecimals = config.decimals
		return nil
	}
	encodeCommand.AddCommand(encodeTransferCommand)
	encodeCommand.AddCommand(encodeTransferFromCommand)
	encodeCommand.AddCommand(encodeApproveCommand)
}
