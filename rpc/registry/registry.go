// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/storycommitd/account"
	"github.com/bitmark-inc/storycommitd/fault"
	tokenregistry "github.com/bitmark-inc/storycommitd/registry"
	"github.com/bitmark-inc/storycommitd/rpc/ratelimit"
	"github.com/bitmark-inc/storycommitd/storage"
)

const (
	rateLimitRegistry = 50
	rateBurstRegistry = 100

	// ServiceName - name registered with the RPC server
	ServiceName = "Registry"
)

// Executor - serialises storage access with the program
type Executor interface {
	Execute(func(storage.Transaction) error) error
}

// Entries - holding and metadata registries
type Entries interface {
	Holding(storage.Transaction, account.Address) (*tokenregistry.Holding, error)
	PutHolding(storage.Transaction, account.Address, *tokenregistry.Holding) error
	MetadataAddress(account.Address) (account.Address, error)
	Metadata(storage.Transaction, account.Address) (*tokenregistry.Metadata, error)
	PutMetadata(storage.Transaction, *tokenregistry.Metadata) (account.Address, error)
}

// Registry - type for RPC calls
type Registry struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	executor  Executor
	entries   Entries
	isTesting func() bool
}

// New - create the registry service
func New(log *logger.L, executor Executor, entries Entries, isTesting func() bool) *Registry {
	return &Registry{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitRegistry, rateBurstRegistry),
		executor:  executor,
		entries:   entries,
		isTesting: isTesting,
	}
}

// ---

// HoldingArguments - a holding account and its contents
type HoldingArguments struct {
	Address account.Address        `json:"address"`
	Holding *tokenregistry.Holding `json:"holding,omitempty"`
}

// HoldingReply - a holding account
type HoldingReply struct {
	Address account.Address        `json:"address"`
	Holding *tokenregistry.Holding `json:"holding"`
}

// PutHolding - create or replace a holding account, testing and
// local chains only
func (r *Registry) PutHolding(arguments *HoldingArguments, reply *HoldingReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}
	if !r.isTesting() {
		return fault.ErrNotAvailableOnChain
	}
	if nil == arguments || nil == arguments.Holding {
		return fault.ErrMissingParameters
	}

	err := r.executor.Execute(func(trx storage.Transaction) error {
		return r.entries.PutHolding(trx, arguments.Address, arguments.Holding)
	})
	if nil != err {
		return err
	}

	reply.Address = arguments.Address
	reply.Holding = arguments.Holding
	return nil
}

// GetHolding - read a holding account
func (r *Registry) GetHolding(arguments *HoldingArguments, reply *HoldingReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}
	if nil == arguments || arguments.Address.IsZero() {
		return fault.ErrMissingParameters
	}

	return r.executor.Execute(func(trx storage.Transaction) error {
		holding, err := r.entries.Holding(trx, arguments.Address)
		if nil != err {
			return err
		}
		reply.Address = arguments.Address
		reply.Holding = holding
		return nil
	})
}

// MetadataArguments - the mint to look up
type MetadataArguments struct {
	Mint account.Address `json:"mint"`
}

// MetadataReply - a metadata entry at its derived address
type MetadataReply struct {
	Address  account.Address         `json:"address"`
	Metadata *tokenregistry.Metadata `json:"metadata"`
}

// PutMetadata - create or replace the metadata entry of a mint,
// testing and local chains only
func (r *Registry) PutMetadata(arguments *tokenregistry.Metadata, reply *MetadataReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}
	if !r.isTesting() {
		return fault.ErrNotAvailableOnChain
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	return r.executor.Execute(func(trx storage.Transaction) error {
		address, err := r.entries.PutMetadata(trx, arguments)
		if nil != err {
			return err
		}
		reply.Address = address
		reply.Metadata = arguments
		return nil
	})
}

// GetMetadata - read the metadata entry of a mint
func (r *Registry) GetMetadata(arguments *MetadataArguments, reply *MetadataReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}
	if nil == arguments || arguments.Mint.IsZero() {
		return fault.ErrMissingParameters
	}

	address, err := r.entries.MetadataAddress(arguments.Mint)
	if nil != err {
		return err
	}

	return r.executor.Execute(func(trx storage.Transaction) error {
		metadata, err := r.entries.Metadata(trx, address)
		if nil != err {
			return err
		}
		reply.Address = address
		reply.Metadata = metadata
		return nil
	})
}
