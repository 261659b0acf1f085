// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/storycommitd/account"
	"github.com/bitmark-inc/storycommitd/derive"
)

type derivedAddress struct {
	ProgramId account.Address  `json:"programId"`
	Mint      *account.Address `json:"mint,omitempty"`
	Address   account.Address  `json:"address"`
	Bump      uint8            `json:"bump"`
}

// these run offline, the node is not contacted
func runBankAddress(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	programId, err := account.AddressFromBase58(m.programId)
	if nil != err {
		return err
	}

	address, bump, err := derive.FindAddress(derive.BankSeeds(), programId)
	if nil != err {
		return err
	}

	return printJson(m.w, derivedAddress{
		ProgramId: programId,
		Address:   address,
		Bump:      bump,
	})
}

func runCommitAddress(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	programId, err := account.AddressFromBase58(m.programId)
	if nil != err {
		return err
	}
	mint, err := requiredAddress(c, "mint")
	if nil != err {
		return err
	}

	address, bump, err := derive.FindAddress(derive.CommitSeeds(mint), programId)
	if nil != err {
		return err
	}

	return printJson(m.w, derivedAddress{
		ProgramId: programId,
		Mint:      &mint,
		Address:   address,
		Bump:      bump,
	})
}
