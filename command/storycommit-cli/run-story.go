// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/storycommitd/command/storycommit-cli/rpccalls"
	"github.com/bitmark-inc/storycommitd/record"
)

func runInitialiseBank(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	payer, err := signer(m)
	if nil != err {
		return err
	}
	creator, err := optionalAddress(c, "creator")
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "payer: %s\n", payer.Address)
		if nil != creator {
			fmt.Fprintf(m.e, "creator: %s\n", creator)
		}
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.InitialiseBank(&rpccalls.InitialiseBankData{
		Payer:   payer,
		Creator: creator,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runInitialise(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	caller, err := signer(m)
	if nil != err {
		return err
	}
	holding, err := requiredAddress(c, "holding")
	if nil != err {
		return err
	}
	mint, err := requiredAddress(c, "mint")
	if nil != err {
		return err
	}
	metadataAddress, err := optionalAddress(c, "metadata")
	if nil != err {
		return err
	}
	traits, err := record.ParseTraits(c.StringSlice("trait"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "caller: %s\n", caller.Address)
		fmt.Fprintf(m.e, "mint: %s\n", mint)
		fmt.Fprintf(m.e, "traits: %s\n", traits)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Initialise(&rpccalls.InitialiseData{
		Caller:   caller,
		Holding:  holding,
		Mint:     mint,
		Metadata: metadataAddress,
		Traits:   traits,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runCommit(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	caller, err := signer(m)
	if nil != err {
		return err
	}
	holding, err := requiredAddress(c, "holding")
	if nil != err {
		return err
	}
	mint, err := requiredAddress(c, "mint")
	if nil != err {
		return err
	}
	traits, err := record.ParseTraits(c.StringSlice("trait"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "caller: %s\n", caller.Address)
		fmt.Fprintf(m.e, "mint: %s\n", mint)
		fmt.Fprintf(m.e, "traits: %s\n", traits)
		fmt.Fprintf(m.e, "sequence: %d\n", c.Uint64("sequence"))
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Commit(&rpccalls.CommitData{
		Caller:   caller,
		Holding:  holding,
		Mint:     mint,
		Traits:   traits,
		Sequence: c.Uint64("sequence"),
	})
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
