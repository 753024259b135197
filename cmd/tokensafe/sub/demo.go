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
	"fmt"
	"math/big"
	"tokensafe"
	"tokensafe/common"

	"github.com/davecgh/go-spew/spew"
	"github.com/holiman/uint256"
	"github.com/spf13/cobra"
)

var demoCommand = &cobra.Command{
	Use:                   "demo [options]",
	DisableFlagsInUseLine: true,
	Short:                 "run a scripted ledger and caller session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo()
	},
}

// counterpart scripts one external target: whether it has code, whether the
// call terminates normally, and what it returns.
type counterpart struct {
	hasCode bool
	ok      bool
	ret     []byte
}

type demoBackend struct {
	targets map[common.Address]counterpart
}

func (b *demoBackend) Call(target common.Address, value *uint256.Int, input []byte) (bool, []byte) {
	cp, found := b.targets[target]
	if !found || !cp.hasCode {
		// The raw call primitive reports success against empty targets.
		return true, nil
	}
	return cp.ok, cp.ret
}

func (b *demoBackend) HasCode(addr common.Address) bool {
	cp, found := b.targets[addr]
	return found && cp.hasCode
}

func word(n uint64) []byte {
	w := uint256.NewInt(n).Bytes32()
	return w[:]
}

type demoSummary struct {
	TotalSupply *uint256.Int
	BalanceSum  *uint256.Int
	Balances    map[string]*uint256.Int
}

func runDemo() error {
	config, err := readConfig()
	if err != nil {
		return err
	}
	ledger := tokensafe.NewLedger(config.ledgerConfig())
	unsafeSub := ledger.EventBus().Subscribe(tokensafe.UnsafeCreditEvent{})
	defer unsafeSub.Unsubscribe()

	alice := common.Hex2Address("0x0000000000000000000000000000000000000a01")
	bob := common.Hex2Address("0x0000000000000000000000000000000000000b02")
	mallory := common.Hex2Address("0x0000000000000000000000000000000000000c03")

	fmt.Println("== ledger: safe path")
	if err := ledger.Credit(alice, uint256.NewInt(1000)); err != nil {
		return err
	}
	if err := ledger.Transfer(alice, bob, uint256.NewInt(250)); err != nil {
		return err
	}
	if err := ledger.Debit(bob, uint256.NewInt(50)); err != nil {
		return err
	}
	fmt.Printf("supply=%s sum=%s\n", ledger.TotalSupply(), ledger.BalanceSum())

	fmt.Println("== ledger: unsafe path")
	if err := ledger.UnsafeCredit(mallory, uint256.NewInt(500)); err != nil {
		return err
	}
	select {
	case ev := <-unsafeSub.Chan():
		fmt.Printf("observed %T\n", ev)
	default:
	}
	fmt.Printf("supply=%s sum=%s (broken by 500)\n", ledger.TotalSupply(), ledger.BalanceSum())

	fmt.Println("== caller: counterpart zoo")
	compliant := common.Hex2Address("0x0000000000000000000000000000000000000001")
	legacy := common.Hex2Address("0x0000000000000000000000000000000000000002")
	liar := common.Hex2Address("0x0000000000000000000000000000000000000003")
	garbage := common.Hex2Address("0x0000000000000000000000000000000000000004")
	reverting := common.Hex2Address("0x0000000000000000000000000000000000000005")
	codeless := common.Hex2Address("0x0000000000000000000000000000000000000006")
	backend := &demoBackend{targets: map[common.Address]counterpart{
		compliant: {hasCode: true, ok: true, ret: word(1)},
		legacy:    {hasCode: true, ok: true, ret: nil},
		liar:      {hasCode: true, ok: true, ret: word(0)},
		garbage:   {hasCode: true, ok: true, ret: []byte{0x01}},
		reverting: {hasCode: true, ok: false, ret: nil},
		codeless:  {hasCode: false},
	}}
	caller := tokensafe.NewSafeCaller(backend)
	for _, target := range []common.Address{compliant, legacy, liar, garbage, reverting, codeless} {
		if !backend.HasCode(target) {
			fmt.Printf("%s: skipped, no code at target\n", target.Hex())
			continue
		}
		err := caller.Transfer(target, bob, big.NewInt(3))
		if err != nil {
			fmt.Printf("%s: %s\n", target.Hex(), err)
			continue
		}
		fmt.Printf("%s: transfer accepted\n", target.Hex())
	}

	summary := demoSummary{
		TotalSupply: ledger.TotalSupply(),
		BalanceSum:  ledger.BalanceSum(),
		Balances: map[string]*uint256.Int{
			alice.Hex():   ledger.BalanceOf(alice),
			bob.Hex():     ledger.BalanceOf(bob),
			mallory.Hex(): ledger.BalanceOf(mallory),
		},
	}
	fmt.Print(spew.Sdump(summary))
	return nil
}
