// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/storycommitd/rpc"
	"github.com/bitmark-inc/storycommitd/storycommit"
)

const mega = 1048576

// periodic log of the bank balance, client connections and
// optionally memory use
type monitor struct {
	log         *logger.L
	program     *storycommit.Program
	interval    time.Duration
	memoryStats bool
}

func (m *monitor) Run(args interface{}, shutdown <-chan struct{}) {
	m.log.Info("starting…")

	timer := time.NewTimer(m.interval)
	defer timer.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-timer.C:
			m.report()
			timer.Reset(m.interval)
		}
	}

	m.log.Info("stopped")
}

func (m *monitor) report() {
	state, err := m.program.Bank()
	if nil != err {
		m.log.Warnf("bank: %s", err)
	} else {
		m.log.Infof("bank: %s  balance: %d", state.Address, state.Balance)
	}
	m.log.Infof("rpc connections: %d", rpc.ConnectionCount())

	if !m.memoryStats {
		return
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	text, err := json.Marshal(ms)
	if nil != err {
		m.log.Errorf("marshal error: %s", err)
	} else {
		m.log.Debugf("stats: %s", text)
	}
	m.log.Infof("allocated: %d M  cumulative: %d M  OS virtual: %d M", ms.Alloc/mega, ms.TotalAlloc/mega, ms.Sys/mega)
}
