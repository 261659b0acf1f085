// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storycommit

import (
	"github.com/bitmark-inc/storycommitd/account"
	"github.com/bitmark-inc/storycommitd/derive"
	"github.com/bitmark-inc/storycommitd/fault"
	"github.com/bitmark-inc/storycommitd/record"
	"github.com/bitmark-inc/storycommitd/storage"
)

// InitialiseBankArguments - set up the singleton bank
type InitialiseBankArguments struct {
	Payer   account.Address
	Bump    uint8
	Creator *account.Address
}

// InitialiseArguments - open the commit record of a collectible
type InitialiseArguments struct {
	Caller   account.Address
	Holding  account.Address
	Mint     account.Address
	Metadata *account.Address // required when verifying creators
	Bump     uint8
	Traits   record.Traits
}

// CommitArguments - overwrite the traits of a collectible
//
// Sequence must be one more than the stored commit sequence
type CommitArguments struct {
	Caller   account.Address
	Holding  account.Address
	Mint     account.Address
	Traits   record.Traits
	Sequence uint64
}

// InitialiseBank - create the bank record, callable once
func (p *Program) InitialiseBank(arguments *InitialiseBankArguments) (account.Address, error) {
	if nil == arguments || arguments.Payer.IsZero() {
		return account.Address{}, fault.ErrMissingParameters
	}

	bank := &record.Bank{
		Bump: arguments.Bump,
	}
	if nil != arguments.Creator {
		bank.Creator = *arguments.Creator
	}
	if p.options.VerifyCreator && !bank.HasCreator() {
		return account.Address{}, fault.ErrMissingCreator
	}

	if arguments.Bump != p.bankBump {
		return account.Address{}, fault.ErrInvalidBump
	}

	p.Lock()
	defer p.Unlock()

	err := p.execute(func(trx storage.Transaction) error {
		err := p.store.Create(trx, bank, p.bankAddress, arguments.Payer)
		if fault.ErrRecordAlreadyExists == err {
			return fault.ErrBankAlreadyExists
		}
		return err
	})
	if nil != err {
		return account.Address{}, err
	}

	p.log.Infof("bank initialised: %s  payer: %s  creator: %s", p.bankAddress, arguments.Payer, bank.Creator)
	return p.bankAddress, nil
}

// Initialise - validate the caller, pay the fee and create the commit
// record for the mint
func (p *Program) Initialise(arguments *InitialiseArguments) (account.Address, error) {
	if nil == arguments || arguments.Caller.IsZero() || arguments.Mint.IsZero() {
		return account.Address{}, fault.ErrMissingParameters
	}
	if p.options.VerifyCreator && nil == arguments.Metadata {
		return account.Address{}, fault.ErrMissingMetadata
	}

	commitAddress, err := derive.VerifyBump(derive.CommitSeeds(arguments.Mint), p.options.ProgramId, arguments.Bump)
	if nil != err {
		return account.Address{}, err
	}

	p.Lock()
	defer p.Unlock()

	err = p.execute(func(trx storage.Transaction) error {
		err := p.validator.CheckOwnership(trx, arguments.Caller, arguments.Holding, arguments.Mint)
		if nil != err {
			return err
		}

		r, err := p.store.Read(trx, record.BankKind, p.bankAddress)
		if fault.ErrRecordNotFound == err {
			return fault.ErrBankNotFound
		}
		if nil != err {
			return err
		}
		bank := r.(*record.Bank)

		if p.options.VerifyCreator {
			if !bank.HasCreator() {
				return fault.ErrMissingCreator
			}
			err = p.validator.CheckCreator(trx, arguments.Mint, *arguments.Metadata, bank.Creator)
			if nil != err {
				return err
			}
		}

		err = p.extractFee(trx, p.bankAddress, arguments.Caller)
		if nil != err {
			return err
		}

		commit := &record.Commit{
			Traits: arguments.Traits,
			Bump:   arguments.Bump,
		}
		return p.store.Create(trx, commit, commitAddress, arguments.Caller)
	})
	if nil != err {
		p.log.Warnf("initialise: mint: %s  caller: %s  error: %s", arguments.Mint, arguments.Caller, err)
		return account.Address{}, err
	}

	p.log.Infof("initialise: mint: %s  commit: %s  traits: %s", arguments.Mint, commitAddress, arguments.Traits)
	return commitAddress, nil
}

// Commit - validate the caller and overwrite the traits of an
// initialised commit record
func (p *Program) Commit(arguments *CommitArguments) (account.Address, error) {
	if nil == arguments || arguments.Caller.IsZero() || arguments.Mint.IsZero() {
		return account.Address{}, fault.ErrMissingParameters
	}

	commitAddress, _, err := p.CommitAddress(arguments.Mint)
	if nil != err {
		return account.Address{}, err
	}

	p.Lock()
	defer p.Unlock()

	err = p.execute(func(trx storage.Transaction) error {
		err := p.validator.CheckOwnership(trx, arguments.Caller, arguments.Holding, arguments.Mint)
		if nil != err {
			return err
		}

		w, err := p.store.OpenForWrite(trx, record.CommitKind, commitAddress)
		if nil != err {
			return err
		}
		commit := w.Record.(*record.Commit)
		if commit.Sequence+1 != arguments.Sequence {
			return fault.ErrSequenceMismatch
		}
		commit.Traits = arguments.Traits
		commit.Sequence = arguments.Sequence
		w.Save()
		return nil
	})
	if nil != err {
		p.log.Warnf("commit: mint: %s  caller: %s  error: %s", arguments.Mint, arguments.Caller, err)
		return account.Address{}, err
	}

	p.log.Infof("commit: mint: %s  commit: %s  sequence: %d  traits: %s", arguments.Mint, commitAddress, arguments.Sequence, arguments.Traits)
	return commitAddress, nil
}
