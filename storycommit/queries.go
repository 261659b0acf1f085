// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storycommit

import (
	"github.com/bitmark-inc/storycommitd/account"
	"github.com/bitmark-inc/storycommitd/fault"
	"github.com/bitmark-inc/storycommitd/record"
	"github.com/bitmark-inc/storycommitd/store"
)

// BankState - the bank record with its address and balance
type BankState struct {
	Address account.Address `json:"address"`
	Bank    *record.Bank    `json:"bank"`
	Balance uint64          `json:"balance,string"`
}

// CommitState - a commit record with its address
type CommitState struct {
	Mint    account.Address `json:"mint"`
	Address account.Address `json:"address"`
	Commit  *record.Commit  `json:"commit"`
}

// Bank - read the bank record
func (p *Program) Bank() (*BankState, error) {
	p.Lock()
	defer p.Unlock()

	r, err := p.store.Read(nil, record.BankKind, p.bankAddress)
	if fault.ErrRecordNotFound == err {
		return nil, fault.ErrBankNotFound
	}
	if nil != err {
		return nil, err
	}

	return &BankState{
		Address: p.bankAddress,
		Bank:    r.(*record.Bank),
		Balance: p.collaborators.Balances.Balance(nil, p.bankAddress),
	}, nil
}

// GetCommit - read the commit record of a mint
func (p *Program) GetCommit(mint account.Address) (*CommitState, error) {
	commitAddress, _, err := p.CommitAddress(mint)
	if nil != err {
		return nil, err
	}

	p.Lock()
	defer p.Unlock()

	r, err := p.store.Read(nil, record.CommitKind, commitAddress)
	if nil != err {
		return nil, err
	}
	return &CommitState{
		Mint:    mint,
		Address: commitAddress,
		Commit:  r.(*record.Commit),
	}, nil
}

// ListCommits - page through commit records in address order
func (p *Program) ListCommits(start account.Address, count int) ([]store.Entry, *account.Address, error) {
	p.Lock()
	defer p.Unlock()

	return p.store.List(record.CommitKind, start, count)
}
