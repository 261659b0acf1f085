// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mode - process run state and the chain it serves
package mode

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/storycommitd/chain"
	"github.com/bitmark-inc/storycommitd/fault"
)

// Mode - daemon run state
type Mode int

// run states in the order the daemon passes through them
const (
	Stopped Mode = iota
	Starting
	Serving
	maximum
)

var names = [maximum]string{
	Stopped:  "Stopped",
	Starting: "Starting",
	Serving:  "Serving",
}

type state struct {
	sync.RWMutex
	log     *logger.L
	current Mode
	chain   string
	seeding bool
	active  bool
}

var process state

// Initialise - select the chain, the mode becomes Starting
func Initialise(chainName string) error {
	process.Lock()
	defer process.Unlock()

	if process.active {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("mode")
	if !chain.Valid(chainName) {
		log.Criticalf("unsupported chain: %q", chainName)
		return fault.ErrInvalidChain
	}

	process.log = log
	process.chain = chainName
	process.seeding = chain.AllowsSeeding(chainName)
	process.current = Starting
	process.active = true

	log.Infof("chain: %s  seeding allowed: %t", chainName, process.seeding)
	return nil
}

// Finalise - return to Stopped and release the chain selection
func Finalise() error {
	process.Lock()
	defer process.Unlock()

	if !process.active {
		return fault.ErrNotInitialised
	}

	process.log.Infof("finalise from: %s", process.current)
	process.log.Flush()

	process.current = Stopped
	process.active = false
	return nil
}

// Set - move to another run state, invalid values are logged and ignored
func Set(m Mode) {
	process.Lock()
	defer process.Unlock()

	if m < Stopped || m >= maximum {
		if nil != process.log {
			process.log.Errorf("ignore invalid mode: %d", m)
		}
		return
	}

	previous := process.current
	process.current = m
	if nil != process.log {
		process.log.Infof("%s -> %s", previous, m)
	}
}

// Is - true if the daemon is in run state m
func Is(m Mode) bool {
	process.RLock()
	defer process.RUnlock()
	return m == process.current
}

// IsTesting - true on chains where ledger and registries may be
// seeded directly
func IsTesting() bool {
	process.RLock()
	defer process.RUnlock()
	return process.seeding
}

// ChainName - the chain selected by Initialise
func ChainName() string {
	process.RLock()
	defer process.RUnlock()
	return process.chain
}

// String - the current run state
func String() string {
	process.RLock()
	defer process.RUnlock()
	return process.current.String()
}

func (m Mode) String() string {
	if m < Stopped || m >= maximum {
		return "*Unknown*"
	}
	return names[m]
}
