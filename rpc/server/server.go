// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/storycommitd/counter"
	valueledger "github.com/bitmark-inc/storycommitd/ledger"
	"github.com/bitmark-inc/storycommitd/mode"
	tokenregistry "github.com/bitmark-inc/storycommitd/registry"
	"github.com/bitmark-inc/storycommitd/rpc/ledger"
	"github.com/bitmark-inc/storycommitd/rpc/node"
	"github.com/bitmark-inc/storycommitd/rpc/registry"
	"github.com/bitmark-inc/storycommitd/rpc/story"
	"github.com/bitmark-inc/storycommitd/storycommit"
)

// Services - daemon state exposed over RPC
type Services struct {
	Program  *storycommit.Program
	Ledger   *valueledger.Ledger
	Registry *tokenregistry.Registry
}

// Create - an RPC server with every service registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, services Services) *rpc.Server {
	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.RegisterName(story.ServiceName, story.New(log, services.Program))
	_ = server.RegisterName(node.ServiceName, node.New(log, start, version, rpcCount, services.Program))
	_ = server.RegisterName(ledger.ServiceName, ledger.New(log, services.Program, services.Ledger, mode.IsTesting))
	_ = server.RegisterName(registry.ServiceName, registry.New(log, services.Program, services.Registry, mode.IsTesting))

	return server
}
