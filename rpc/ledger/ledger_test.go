// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/storycommitd/fault"
	"github.com/bitmark-inc/storycommitd/fixtures"
	valueledger "github.com/bitmark-inc/storycommitd/ledger"
	"github.com/bitmark-inc/storycommitd/rpc/ledger"
	"github.com/bitmark-inc/storycommitd/storage"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

type executor struct{}

func (executor) Execute(f func(storage.Transaction) error) error {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	if err := f(trx); nil != err {
		trx.Abort()
		return err
	}
	return trx.Commit()
}

func newService(seeding bool) *ledger.Ledger {
	log := logger.New(fixtures.LogCategory)
	balances := valueledger.New(log, storage.Pool.Balances, valueledger.DefaultRent)
	return ledger.New(log, executor{}, balances, func() bool { return seeding })
}

func TestAirdrop(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	l := newService(true)
	to := fixtures.NewAddress(t)

	var reply ledger.BalanceReply
	err := l.Airdrop(&ledger.AirdropArguments{To: to, Amount: 500}, &reply)
	assert.Nil(t, err, "wrong Airdrop")
	assert.Equal(t, uint64(500), reply.Balance, "wrong balance after airdrop")

	err = l.Airdrop(&ledger.AirdropArguments{To: to, Amount: 250}, &reply)
	assert.Nil(t, err, "wrong Airdrop")
	assert.Equal(t, uint64(750), reply.Balance, "airdrop did not accumulate")

	var balance ledger.BalanceReply
	err = l.Balance(&ledger.BalanceArguments{Address: to}, &balance)
	assert.Nil(t, err, "wrong Balance")
	assert.Equal(t, to, balance.Address, "wrong address")
	assert.Equal(t, uint64(750), balance.Balance, "wrong committed balance")
}

func TestAirdropOverflow(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	l := newService(true)
	to := fixtures.NewAddress(t)

	var reply ledger.BalanceReply
	err := l.Airdrop(&ledger.AirdropArguments{To: to, Amount: math.MaxUint64}, &reply)
	assert.Nil(t, err, "wrong Airdrop")

	err = l.Airdrop(&ledger.AirdropArguments{To: to, Amount: 1}, &reply)
	assert.Equal(t, fault.ErrValueOverflow, err, "overflow accepted")
}

func TestAirdropLiveChain(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	l := newService(false)

	var reply ledger.BalanceReply
	err := l.Airdrop(&ledger.AirdropArguments{To: fixtures.NewAddress(t), Amount: 1}, &reply)
	assert.Equal(t, fault.ErrNotAvailableOnChain, err, "airdrop allowed on live chain")
}

func TestMissingParameters(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	l := newService(true)

	var reply ledger.BalanceReply
	assert.Equal(t, fault.ErrMissingParameters, l.Airdrop(&ledger.AirdropArguments{Amount: 1}, &reply), "zero address accepted")
	assert.Equal(t, fault.ErrMissingParameters, l.Airdrop(&ledger.AirdropArguments{To: fixtures.NewAddress(t)}, &reply), "zero amount accepted")
	assert.Equal(t, fault.ErrMissingParameters, l.Balance(&ledger.BalanceArguments{}, &reply), "zero address accepted")
}
