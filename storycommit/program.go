// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storycommit - the story commit program
//
// a single Bank record holds the fee pool; each collectible mint has
// one Commit record carrying its eight trait slots.  The owner of a
// collectible opens its record with Initialise, being paid the
// service fee from the bank, and then rewrites the traits with Commit.
//
// every operation runs under the program lock inside one storage
// transaction that is either committed whole or aborted
package storycommit

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/storycommitd/account"
	"github.com/bitmark-inc/storycommitd/derive"
	"github.com/bitmark-inc/storycommitd/storage"
	"github.com/bitmark-inc/storycommitd/store"
	"github.com/bitmark-inc/storycommitd/validator"
)

// Options - program settings
type Options struct {
	ProgramId         account.Address
	MetadataProgramId account.Address

	// extended revision: the bank carries a trusted creator and every
	// initialise must prove the collectible's first creator matches it
	VerifyCreator bool
}

// TransactionFunc - obtain a begun storage transaction
type TransactionFunc func() (storage.Transaction, error)

// Program - the story commit program state
type Program struct {
	sync.Mutex

	log            *logger.L
	options        Options
	collaborators  Collaborators
	newTransaction TransactionFunc
	store          *store.Store
	validator      *validator.Validator

	bankAddress account.Address
	bankBump    uint8
}

// New - create the program over the records pool
func New(log *logger.L, records storage.Handle, newTransaction TransactionFunc, options Options, collaborators Collaborators) (*Program, error) {
	bankAddress, bankBump, err := derive.FindAddress(derive.BankSeeds(), options.ProgramId)
	if nil != err {
		return nil, err
	}

	log.Infof("program: %s  bank: %s  bump: %d", options.ProgramId, bankAddress, bankBump)
	log.Infof("verify creator: %t  service fee: %d", options.VerifyCreator, ServiceFee)

	return &Program{
		log:            log,
		options:        options,
		collaborators:  collaborators,
		newTransaction: newTransaction,
		store:          store.New(log, records, collaborators.Allocator),
		validator:      validator.New(log, collaborators.Holdings, collaborators.Metadata, options.MetadataProgramId),
		bankAddress:    bankAddress,
		bankBump:       bankBump,
	}, nil
}

// ProgramId - the id records are derived under
func (p *Program) ProgramId() account.Address {
	return p.options.ProgramId
}

// VerifyCreator - true if running the extended revision
func (p *Program) VerifyCreator() bool {
	return p.options.VerifyCreator
}

// ServiceFee - amount paid on each initialise
func (p *Program) ServiceFee() uint64 {
	return ServiceFee
}

// BankAddress - derived address and canonical bump of the bank
func (p *Program) BankAddress() (account.Address, uint8) {
	return p.bankAddress, p.bankBump
}

// CommitAddress - derived address and canonical bump of a mint's commit
func (p *Program) CommitAddress(mint account.Address) (account.Address, uint8, error) {
	return derive.FindAddress(derive.CommitSeeds(mint), p.options.ProgramId)
}

// run f inside a transaction, commit on success or abort on any error
func (p *Program) execute(f func(storage.Transaction) error) error {
	trx, err := p.newTransaction()
	if nil != err {
		return err
	}

	err = f(trx)
	if nil != err {
		trx.Abort()
		return err
	}
	return trx.Commit()
}

// Execute - run f under the program lock inside one transaction
//
// lets ledger and registry entries be seeded without racing an
// in-flight operation
func (p *Program) Execute(f func(storage.Transaction) error) error {
	p.Lock()
	defer p.Unlock()

	return p.execute(f)
}
