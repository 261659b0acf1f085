// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runBank(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	bank, err := client.GetBank()
	if nil != err {
		return err
	}

	return printJson(m.w, bank)
}

func runShow(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	mint, err := requiredAddress(c, "mint")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	state, err := client.GetCommit(mint)
	if nil != err {
		return err
	}

	return printJson(m.w, state)
}

func runList(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	start, err := optionalAddress(c, "start")
	if nil != err {
		return err
	}
	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("invalid count: %d", count)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	page, err := client.ListCommits(start, count)
	if nil != err {
		return err
	}

	return printJson(m.w, page)
}
