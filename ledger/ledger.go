// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - native value balances
//
// provides the debit/credit primitive and the funding of newly
// allocated storage.  A balance can never go negative: a debit larger
// than the balance fails with fault.ErrInsufficientFunds.
package ledger

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/storycommitd/account"
	"github.com/bitmark-inc/storycommitd/fault"
	"github.com/bitmark-inc/storycommitd/storage"
)

// Ledger - balances held in a storage pool
type Ledger struct {
	log      *logger.L
	balances storage.Handle
	rent     Rent
}

// New - create a ledger over the balances pool
func New(log *logger.L, balances storage.Handle, rent Rent) *Ledger {
	return &Ledger{
		log:      log,
		balances: balances,
		rent:     rent,
	}
}

// Rent - the rent schedule in use
func (l *Ledger) Rent() Rent {
	return l.rent
}

// Balance - current balance of an address
//
// a nil transaction reads committed state
func (l *Ledger) Balance(trx storage.Transaction, address account.Address) uint64 {
	var value uint64
	if nil == trx {
		value, _ = l.balances.GetN(address[:])
	} else {
		value, _ = trx.GetN(l.balances, address[:])
	}
	return value
}

// Transfer - debit one address and credit another by exactly amount
func (l *Ledger) Transfer(trx storage.Transaction, from account.Address, to account.Address, amount uint64) error {
	if 0 == amount {
		return nil
	}

	fromBalance := l.Balance(trx, from)
	if fromBalance < amount {
		l.log.Debugf("transfer: %s has: %d  needs: %d", from, fromBalance, amount)
		return fault.ErrInsufficientFunds
	}

	if from == to {
		return nil
	}

	toBalance := l.Balance(trx, to)
	if toBalance+amount < toBalance {
		return fault.ErrValueOverflow
	}

	trx.PutN(l.balances, from[:], fromBalance-amount)
	trx.PutN(l.balances, to[:], toBalance+amount)

	l.log.Debugf("transfer: %d from: %s to: %s", amount, from, to)
	return nil
}

// Allocate - ensure a new storage address holds the rent exempt
// minimum for its size, the payer covers any shortfall
func (l *Ledger) Allocate(trx storage.Transaction, payer account.Address, address account.Address, size int) error {
	minimum := l.rent.MinimumBalance(size)
	current := l.Balance(trx, address)
	if current >= minimum {
		return nil
	}
	return l.Transfer(trx, payer, address, minimum-current)
}

// Airdrop - create value at an address, only for testing chains
func (l *Ledger) Airdrop(trx storage.Transaction, to account.Address, amount uint64) error {
	balance := l.Balance(trx, to)
	if balance+amount < balance {
		return fault.ErrValueOverflow
	}
	trx.PutN(l.balances, to[:], balance+amount)

	l.log.Infof("airdrop: %d to: %s", amount, to)
	return nil
}
