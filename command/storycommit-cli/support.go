// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/storycommitd/account"
	"github.com/bitmark-inc/storycommitd/command/storycommit-cli/rpccalls"
	"github.com/bitmark-inc/storycommitd/keypair"
	"github.com/bitmark-inc/storycommitd/registry"
)

func printJson(handle io.Writer, message interface{}) error {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

// open a connection to the configured node
func connect(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.connect, m.verbose, m.e)
}

// the signing identity, its network must match the selected one
func signer(m *metadata) (*keypair.KeyPair, error) {
	if "" == m.seed {
		return nil, ErrMissingSeed
	}
	kp, err := keypair.FromSeed(m.seed)
	if nil != err {
		return nil, err
	}
	if kp.Test != m.testnet {
		return nil, ErrWrongNetwork
	}
	return kp, nil
}

// decode a required address option
func requiredAddress(c *cli.Context, name string) (account.Address, error) {
	s := strings.TrimSpace(c.String(name))
	if "" == s {
		return account.Address{}, fmt.Errorf("%s: %s", name, ErrRequiredAddress)
	}
	a, err := account.AddressFromBase58(s)
	if nil != err {
		return account.Address{}, fmt.Errorf("%s: %q  error: %s", name, s, err)
	}
	return a, nil
}

// decode an optional address option, nil if absent
func optionalAddress(c *cli.Context, name string) (*account.Address, error) {
	if "" == strings.TrimSpace(c.String(name)) {
		return nil, nil
	}
	a, err := requiredAddress(c, name)
	if nil != err {
		return nil, err
	}
	return &a, nil
}

// decode an address option falling back to the seed identity
func addressOrSelf(c *cli.Context, m *metadata, name string) (account.Address, error) {
	a, err := optionalAddress(c, name)
	if nil != err {
		return account.Address{}, err
	}
	if nil != a {
		return *a, nil
	}
	kp, err := signer(m)
	if nil != err {
		return account.Address{}, err
	}
	return kp.Address, nil
}

// decode ADDRESS:SHARE[:verified]
func parseCreator(s string) (registry.Creator, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return registry.Creator{}, ErrInvalidCreator
	}
	a, err := account.AddressFromBase58(parts[0])
	if nil != err {
		return registry.Creator{}, err
	}
	share, err := strconv.ParseUint(parts[1], 10, 8)
	if nil != err {
		return registry.Creator{}, ErrInvalidCreator
	}
	verified := false
	if 3 == len(parts) {
		if "verified" != parts[2] {
			return registry.Creator{}, ErrInvalidCreator
		}
		verified = true
	}
	return registry.Creator{
		Address:  a,
		Verified: verified,
		Share:    uint8(share),
	}, nil
}
