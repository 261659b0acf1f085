// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - the networks a daemon can serve and the properties
// that differ between them
package chain

import (
	"strings"
)

// canonical chain names
const (
	Live    = "live"
	Testing = "testing"
	Local   = "local"
)

type properties struct {
	aliases []string
	seeding bool // ledger and registries writable through RPC
}

var chains = map[string]properties{
	Live:    {aliases: []string{"main", "mainnet"}},
	Testing: {aliases: []string{"test", "testnet"}, seeding: true},
	Local:   {aliases: []string{"regression", "localnet"}, seeding: true},
}

// Valid - true only for a canonical chain name
func Valid(name string) bool {
	_, ok := chains[name]
	return ok
}

// Canonical - resolve a user supplied name or alias, case is ignored
func Canonical(name string) (string, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if Valid(name) {
		return name, true
	}
	for canonical, p := range chains {
		for _, alias := range p.aliases {
			if alias == name {
				return canonical, true
			}
		}
	}
	return "", false
}

// AllowsSeeding - true if value and registry entries may be created
// directly through RPC
func AllowsSeeding(name string) bool {
	return chains[name].seeding
}

// DatabaseName - default LevelDB directory name for a chain
func DatabaseName(name string) string {
	return name + ".leveldb"
}
