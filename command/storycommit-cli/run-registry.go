// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/storycommitd/registry"
)

func runBalance(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	address, err := addressOrSelf(c, m, "address")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetBalance(address)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runAirdrop(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	to, err := addressOrSelf(c, m, "to")
	if nil != err {
		return err
	}
	amount := c.Uint64("amount")
	if 0 == amount {
		return ErrInvalidAmount
	}

	if m.verbose {
		fmt.Fprintf(m.e, "airdrop: %d to: %s\n", amount, to)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Airdrop(to, amount)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runPutHolding(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	address, err := requiredAddress(c, "address")
	if nil != err {
		return err
	}
	owner, err := addressOrSelf(c, m, "owner")
	if nil != err {
		return err
	}
	mint, err := requiredAddress(c, "mint")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.PutHolding(address, &registry.Holding{
		Owner:  owner,
		Mint:   mint,
		Amount: c.Uint64("amount"),
	})
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runPutMetadata(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	mint, err := requiredAddress(c, "mint")
	if nil != err {
		return err
	}
	authority, err := addressOrSelf(c, m, "authority")
	if nil != err {
		return err
	}

	entry := &registry.Metadata{
		Mint:            mint,
		UpdateAuthority: authority,
	}
	for _, s := range c.StringSlice("creator") {
		creator, err := parseCreator(s)
		if nil != err {
			return fmt.Errorf("creator: %q  error: %s", s, err)
		}
		entry.Creators = append(entry.Creators, creator)
	}
	if err := entry.Validate(); nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.PutMetadata(entry)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
