// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON RPC over TLS for clients of the story commit program
//
// services: StoryCommit (signed requests and queries), Node, Ledger
// and Registry; the last two only seed data on testing and local chains
package rpc

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/storycommitd/counter"
	"github.com/bitmark-inc/storycommitd/fault"
	"github.com/bitmark-inc/storycommitd/rpc/certificate"
	"github.com/bitmark-inc/storycommitd/rpc/listeners"
	"github.com/bitmark-inc/storycommitd/rpc/server"
)

const (
	tlsName = "client_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex

	log      *logger.L
	listener listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// connection count for the client listener
var connectionCountRPC counter.Counter

// Initialise - start the client listener
func Initialise(configuration *listeners.RPCConfiguration, version string, services server.Services) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, fingerprint, err := certificate.Get(log, tlsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}

	listener, err := listeners.NewRPC(
		configuration,
		log,
		&connectionCountRPC,
		server.Create(log, version, &connectionCountRPC, services),
		tlsConfig,
		fingerprint,
	)
	if nil != err {
		return err
	}
	if err := listener.Serve(); nil != err {
		listener.Close()
		return err
	}
	globalData.listener = listener

	globalData.initialised = true

	return nil
}

// Finalise - stop accepting connections
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.listener.Close()
	globalData.listener = nil

	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// ConnectionCount - clients currently connected
func ConnectionCount() uint64 {
	return connectionCountRPC.Uint64()
}
