// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/storycommitd/account"
	"github.com/bitmark-inc/storycommitd/fault"
	"github.com/bitmark-inc/storycommitd/rpc/ratelimit"
	"github.com/bitmark-inc/storycommitd/storage"
)

const (
	rateLimitLedger = 100
	rateBurstLedger = 100

	// ServiceName - name registered with the RPC server
	ServiceName = "Ledger"
)

// Executor - serialises storage access with the program
type Executor interface {
	Execute(func(storage.Transaction) error) error
}

// Balances - the value ledger
type Balances interface {
	Balance(storage.Transaction, account.Address) uint64
	Airdrop(storage.Transaction, account.Address, uint64) error
}

// Ledger - type for RPC calls
type Ledger struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	executor  Executor
	balances  Balances
	isTesting func() bool
}

// New - create the ledger service
func New(log *logger.L, executor Executor, balances Balances, isTesting func() bool) *Ledger {
	return &Ledger{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitLedger, rateBurstLedger),
		executor:  executor,
		balances:  balances,
		isTesting: isTesting,
	}
}

// ---

// BalanceArguments - address to read
type BalanceArguments struct {
	Address account.Address `json:"address"`
}

// BalanceReply - value held at an address
type BalanceReply struct {
	Address account.Address `json:"address"`
	Balance uint64          `json:"balance,string"`
}

// Balance - read the balance of an address
func (l *Ledger) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}
	if nil == arguments || arguments.Address.IsZero() {
		return fault.ErrMissingParameters
	}

	return l.executor.Execute(func(trx storage.Transaction) error {
		reply.Address = arguments.Address
		reply.Balance = l.balances.Balance(trx, arguments.Address)
		return nil
	})
}

// AirdropArguments - value to create
type AirdropArguments struct {
	To     account.Address `json:"to"`
	Amount uint64          `json:"amount,string"`
}

// Airdrop - create value at an address, testing and local chains only
func (l *Ledger) Airdrop(arguments *AirdropArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}
	if !l.isTesting() {
		return fault.ErrNotAvailableOnChain
	}
	if nil == arguments || arguments.To.IsZero() || 0 == arguments.Amount {
		return fault.ErrMissingParameters
	}

	return l.executor.Execute(func(trx storage.Transaction) error {
		if err := l.balances.Airdrop(trx, arguments.To, arguments.Amount); nil != err {
			return err
		}
		reply.Address = arguments.To
		reply.Balance = l.balances.Balance(trx, arguments.To)
		return nil
	})
}
