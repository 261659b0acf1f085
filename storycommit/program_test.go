// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storycommit_test

import (
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/storycommitd/account"
	"github.com/bitmark-inc/storycommitd/derive"
	"github.com/bitmark-inc/storycommitd/fault"
	"github.com/bitmark-inc/storycommitd/fixtures"
	"github.com/bitmark-inc/storycommitd/record"
	"github.com/bitmark-inc/storycommitd/registry"
	"github.com/bitmark-inc/storycommitd/storage"
	"github.com/bitmark-inc/storycommitd/storycommit"
	"github.com/bitmark-inc/storycommitd/storycommit/mocks"
	validatormocks "github.com/bitmark-inc/storycommitd/validator/mocks"
)

const (
	programId       = "2HV1ywovUQmKbVkadpBPpb9fSAE4sYfhpPxCUFg26FCp"
	metadataProgram = "metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

type mocked struct {
	ctl       *gomock.Controller
	transfer  *mocks.MockValueTransfer
	balances  *mocks.MockBalanceReader
	allocator *mocks.MockAllocator
	holdings  *validatormocks.MockHoldingReader
	metadata  *validatormocks.MockMetadataReader
	program   *storycommit.Program
}

func options(t *testing.T, verifyCreator bool) storycommit.Options {
	return storycommit.Options{
		ProgramId:         fixtures.MustAddress(t, programId),
		MetadataProgramId: fixtures.MustAddress(t, metadataProgram),
		VerifyCreator:     verifyCreator,
	}
}

func setupMocked(t *testing.T, verifyCreator bool) *mocked {
	ctl := gomock.NewController(t)
	m := &mocked{
		ctl:       ctl,
		transfer:  mocks.NewMockValueTransfer(ctl),
		balances:  mocks.NewMockBalanceReader(ctl),
		allocator: mocks.NewMockAllocator(ctl),
		holdings:  validatormocks.NewMockHoldingReader(ctl),
		metadata:  validatormocks.NewMockMetadataReader(ctl),
	}

	p, err := storycommit.New(
		logger.New(fixtures.LogCategory),
		storage.Pool.Records,
		storage.NewDBTransaction,
		options(t, verifyCreator),
		storycommit.Collaborators{
			Transfer:  m.transfer,
			Balances:  m.balances,
			Allocator: m.allocator,
			Holdings:  m.holdings,
			Metadata:  m.metadata,
		},
	)
	if nil != err {
		t.Fatalf("program error: %s", err)
	}
	m.program = p
	return m
}

// create the bank with an optional creator
func (m *mocked) initialiseBank(t *testing.T, creator *account.Address) account.Address {
	payer := fixtures.NewAddress(t)
	bankAddress, bump := m.program.BankAddress()

	m.allocator.EXPECT().Allocate(gomock.Any(), payer, bankAddress, record.BankKind.Size()).Return(nil).Times(1)

	actual, err := m.program.InitialiseBank(&storycommit.InitialiseBankArguments{
		Payer:   payer,
		Bump:    bump,
		Creator: creator,
	})
	assert.Nil(t, err, "initialise bank error")
	assert.Equal(t, bankAddress, actual, "wrong bank address")
	return bankAddress
}

func TestInitialiseBank(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	m := setupMocked(t, false)
	defer m.ctl.Finish()

	bankAddress, bump := m.program.BankAddress()
	expected, expectedBump, err := derive.FindAddress(derive.BankSeeds(), fixtures.MustAddress(t, programId))
	assert.Nil(t, err, "derive error")
	assert.Equal(t, expected, bankAddress, "wrong bank address")
	assert.Equal(t, expectedBump, bump, "wrong bank bump")

	_, err = m.program.InitialiseBank(&storycommit.InitialiseBankArguments{
		Payer: fixtures.NewAddress(t),
		Bump:  bump - 1,
	})
	assert.Equal(t, fault.ErrInvalidBump, err, "non-canonical bump accepted")

	_, err = m.program.Bank()
	assert.Equal(t, fault.ErrBankNotFound, err, "bank before initialise")

	m.initialiseBank(t, nil)

	_, err = m.program.InitialiseBank(&storycommit.InitialiseBankArguments{
		Payer: fixtures.NewAddress(t),
		Bump:  bump,
	})
	assert.Equal(t, fault.ErrBankAlreadyExists, err, "second bank created")

	m.balances.EXPECT().Balance(nil, bankAddress).Return(uint64(12345)).Times(1)

	state, err := m.program.Bank()
	assert.Nil(t, err, "bank error")
	assert.Equal(t, bankAddress, state.Address, "wrong address")
	assert.Equal(t, bump, state.Bank.Bump, "wrong bump")
	assert.False(t, state.Bank.HasCreator(), "unexpected creator")
	assert.Equal(t, uint64(12345), state.Balance, "wrong balance")
}

func TestInitialiseBankRequiresCreator(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	m := setupMocked(t, true)
	defer m.ctl.Finish()

	_, bump := m.program.BankAddress()
	_, err := m.program.InitialiseBank(&storycommit.InitialiseBankArguments{
		Payer: fixtures.NewAddress(t),
		Bump:  bump,
	})
	assert.Equal(t, fault.ErrMissingCreator, err, "bank without creator accepted")

	creator := fixtures.NewAddress(t)
	m.initialiseBank(t, &creator)
}

func TestInitialise(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	m := setupMocked(t, false)
	defer m.ctl.Finish()

	bankAddress := m.initialiseBank(t, nil)

	caller := fixtures.NewAddress(t)
	mint := fixtures.NewAddress(t)
	holding := fixtures.NewAddress(t)
	commitAddress, bump, err := m.program.CommitAddress(mint)
	assert.Nil(t, err, "derive error")

	traits := record.Traits{Background: 1, Hats: 8}

	m.holdings.EXPECT().Holding(gomock.Any(), holding).Return(&registry.Holding{Owner: caller, Mint: mint, Amount: 1}, nil).Times(2)
	m.transfer.EXPECT().Transfer(gomock.Any(), bankAddress, caller, uint64(storycommit.ServiceFee)).Return(nil).Times(2)
	m.allocator.EXPECT().Allocate(gomock.Any(), caller, commitAddress, record.CommitKind.Size()).Return(nil).Times(1)

	arguments := &storycommit.InitialiseArguments{
		Caller:  caller,
		Holding: holding,
		Mint:    mint,
		Bump:    bump,
		Traits:  traits,
	}
	actual, err := m.program.Initialise(arguments)
	assert.Nil(t, err, "initialise error")
	assert.Equal(t, commitAddress, actual, "wrong commit address")

	state, err := m.program.GetCommit(mint)
	assert.Nil(t, err, "get error")
	assert.Equal(t, traits, state.Commit.Traits, "wrong traits")
	assert.Equal(t, bump, state.Commit.Bump, "wrong bump")

	// the fee transfer is staged and then discarded with the failure
	_, err = m.program.Initialise(arguments)
	assert.Equal(t, fault.ErrRecordAlreadyExists, err, "second initialise succeeded")
	assert.True(t, fault.IsErrExists(err), "not an exists error")
}

func TestInitialiseInvalidBump(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	m := setupMocked(t, false)
	defer m.ctl.Finish()

	mint := fixtures.NewAddress(t)
	_, bump, err := m.program.CommitAddress(mint)
	assert.Nil(t, err, "derive error")

	_, err = m.program.Initialise(&storycommit.InitialiseArguments{
		Caller:  fixtures.NewAddress(t),
		Holding: fixtures.NewAddress(t),
		Mint:    mint,
		Bump:    bump + 1,
	})
	assert.Equal(t, fault.ErrInvalidBump, err, "non-canonical bump accepted")
}

func TestInitialiseWithoutBank(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	m := setupMocked(t, false)
	defer m.ctl.Finish()

	caller := fixtures.NewAddress(t)
	mint := fixtures.NewAddress(t)
	holding := fixtures.NewAddress(t)
	_, bump, _ := m.program.CommitAddress(mint)

	m.holdings.EXPECT().Holding(gomock.Any(), holding).Return(&registry.Holding{Owner: caller, Mint: mint, Amount: 1}, nil).Times(1)

	_, err := m.program.Initialise(&storycommit.InitialiseArguments{
		Caller:  caller,
		Holding: holding,
		Mint:    mint,
		Bump:    bump,
	})
	assert.Equal(t, fault.ErrBankNotFound, err, "initialise without bank")
}

func TestInitialiseFeeFailure(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	m := setupMocked(t, false)
	defer m.ctl.Finish()

	bankAddress := m.initialiseBank(t, nil)

	caller := fixtures.NewAddress(t)
	mint := fixtures.NewAddress(t)
	holding := fixtures.NewAddress(t)
	_, bump, _ := m.program.CommitAddress(mint)

	m.holdings.EXPECT().Holding(gomock.Any(), holding).Return(&registry.Holding{Owner: caller, Mint: mint, Amount: 1}, nil).Times(1)
	m.transfer.EXPECT().Transfer(gomock.Any(), bankAddress, caller, uint64(storycommit.ServiceFee)).Return(fault.ErrInsufficientFunds).Times(1)

	_, err := m.program.Initialise(&storycommit.InitialiseArguments{
		Caller:  caller,
		Holding: holding,
		Mint:    mint,
		Bump:    bump,
	})
	assert.Equal(t, fault.ErrInsufficientFunds, err, "initialise with empty bank")

	_, err = m.program.GetCommit(mint)
	assert.Equal(t, fault.ErrRecordNotFound, err, "record created without fee")
}

func TestInitialiseNotOwner(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	m := setupMocked(t, false)
	defer m.ctl.Finish()

	m.initialiseBank(t, nil)

	caller := fixtures.NewAddress(t)
	mint := fixtures.NewAddress(t)
	holding := fixtures.NewAddress(t)
	_, bump, _ := m.program.CommitAddress(mint)

	// no transfer or allocation is expected
	m.holdings.EXPECT().Holding(gomock.Any(), holding).Return(&registry.Holding{Owner: fixtures.NewAddress(t), Mint: mint, Amount: 1}, nil).Times(1)

	_, err := m.program.Initialise(&storycommit.InitialiseArguments{
		Caller:  caller,
		Holding: holding,
		Mint:    mint,
		Bump:    bump,
	})
	assert.Equal(t, fault.ErrNotHoldingOwner, err, "non-owner accepted")
	assert.True(t, fault.IsErrAuthorisation(err), "not an authorisation error")
}

func TestInitialiseVerifyCreator(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	m := setupMocked(t, true)
	defer m.ctl.Finish()

	creator := fixtures.NewAddress(t)
	bankAddress := m.initialiseBank(t, &creator)

	caller := fixtures.NewAddress(t)
	mint := fixtures.NewAddress(t)
	holding := fixtures.NewAddress(t)
	commitAddress, bump, _ := m.program.CommitAddress(mint)

	metadataProgramId := fixtures.MustAddress(t, metadataProgram)
	metadataAddress, _, err := derive.FindAddress(derive.MetadataSeeds(metadataProgramId, mint), metadataProgramId)
	assert.Nil(t, err, "derive error")

	arguments := &storycommit.InitialiseArguments{
		Caller:  caller,
		Holding: holding,
		Mint:    mint,
		Bump:    bump,
	}
	_, err = m.program.Initialise(arguments)
	assert.Equal(t, fault.ErrMissingMetadata, err, "initialise without metadata")

	// forged metadata account: never read from the registry
	forged := fixtures.NewAddress(t)
	arguments.Metadata = &forged
	m.holdings.EXPECT().Holding(gomock.Any(), holding).Return(&registry.Holding{Owner: caller, Mint: mint, Amount: 1}, nil).Times(2)

	_, err = m.program.Initialise(arguments)
	assert.Equal(t, fault.ErrMetadataAddressMismatch, err, "forged metadata accepted")

	arguments.Metadata = &metadataAddress
	m.metadata.EXPECT().Metadata(gomock.Any(), metadataAddress).Return(&registry.Metadata{
		Mint:     mint,
		Creators: []registry.Creator{{Address: creator, Verified: true, Share: 100}},
	}, nil).Times(1)
	m.transfer.EXPECT().Transfer(gomock.Any(), bankAddress, caller, uint64(storycommit.ServiceFee)).Return(nil).Times(1)
	m.allocator.EXPECT().Allocate(gomock.Any(), caller, commitAddress, record.CommitKind.Size()).Return(nil).Times(1)

	_, err = m.program.Initialise(arguments)
	assert.Nil(t, err, "initialise error")
}

func TestCommit(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	m := setupMocked(t, false)
	defer m.ctl.Finish()

	bankAddress := m.initialiseBank(t, nil)

	caller := fixtures.NewAddress(t)
	mint := fixtures.NewAddress(t)
	holding := fixtures.NewAddress(t)
	commitAddress, bump, _ := m.program.CommitAddress(mint)

	m.holdings.EXPECT().Holding(gomock.Any(), holding).Return(&registry.Holding{Owner: caller, Mint: mint, Amount: 1}, nil).AnyTimes()

	_, err := m.program.Commit(&storycommit.CommitArguments{
		Caller:  caller,
		Holding: holding,
		Mint:    mint,
	})
	assert.Equal(t, fault.ErrRecordNotFound, err, "commit before initialise")
	assert.True(t, fault.IsErrNotFound(err), "not a not found error")

	m.transfer.EXPECT().Transfer(gomock.Any(), bankAddress, caller, uint64(storycommit.ServiceFee)).Return(nil).Times(1)
	m.allocator.EXPECT().Allocate(gomock.Any(), caller, commitAddress, record.CommitKind.Size()).Return(nil).Times(1)

	_, err = m.program.Initialise(&storycommit.InitialiseArguments{
		Caller:  caller,
		Holding: holding,
		Mint:    mint,
		Bump:    bump,
	})
	assert.Nil(t, err, "initialise error")

	state, err := m.program.GetCommit(mint)
	assert.Nil(t, err, "get error")
	assert.Equal(t, uint64(0), state.Commit.Sequence, "initial sequence")

	// no further fee on commit
	for i, traits := range []record.Traits{
		{},
		{Background: 1, Body: 2, Clothes: 3, Head: 4, InsideHead: 5, Eyes: 6, Mouths: 7, Hats: 8},
		{Background: 255, Body: 255, Clothes: 255, Head: 255, InsideHead: 255, Eyes: 255, Mouths: 255, Hats: 255},
	} {
		sequence := uint64(i + 1)
		actual, err := m.program.Commit(&storycommit.CommitArguments{
			Caller:   caller,
			Holding:  holding,
			Mint:     mint,
			Traits:   traits,
			Sequence: sequence,
		})
		assert.Nil(t, err, "%d: commit error", i)
		assert.Equal(t, commitAddress, actual, "%d: wrong commit address", i)

		state, err := m.program.GetCommit(mint)
		assert.Nil(t, err, "%d: get error", i)
		assert.Equal(t, traits, state.Commit.Traits, "%d: traits did not round trip", i)
		assert.Equal(t, bump, state.Commit.Bump, "%d: bump changed", i)
		assert.Equal(t, sequence, state.Commit.Sequence, "%d: sequence not stored", i)
	}

	for _, sequence := range []uint64{0, 1, 3, 5, ^uint64(0)} {
		_, err := m.program.Commit(&storycommit.CommitArguments{
			Caller:   caller,
			Holding:  holding,
			Mint:     mint,
			Traits:   record.Traits{Hats: 9},
			Sequence: sequence,
		})
		assert.Equal(t, fault.ErrSequenceMismatch, err, "sequence: %d accepted", sequence)
	}

	state, err = m.program.GetCommit(mint)
	assert.Nil(t, err, "get error")
	assert.Equal(t, uint64(3), state.Commit.Sequence, "sequence moved on rejection")
	assert.Equal(t, uint8(255), state.Commit.Traits.Hats, "traits changed on rejection")
}

func TestServiceFeeIsFixed(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	for _, verifyCreator := range []bool{false, true} {
		m := setupMocked(t, verifyCreator)
		assert.Equal(t, uint64(100000000), m.program.ServiceFee(), "verify creator: %t  wrong fee", verifyCreator)
		m.ctl.Finish()
	}
}

func TestMissingParameters(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	m := setupMocked(t, false)
	defer m.ctl.Finish()

	_, err := m.program.InitialiseBank(nil)
	assert.Equal(t, fault.ErrMissingParameters, err, "nil bank arguments")

	_, err = m.program.Initialise(&storycommit.InitialiseArguments{Mint: fixtures.NewAddress(t)})
	assert.Equal(t, fault.ErrMissingParameters, err, "zero caller")

	_, err = m.program.Commit(&storycommit.CommitArguments{Caller: fixtures.NewAddress(t)})
	assert.Equal(t, fault.ErrMissingParameters, err, "zero mint")
}

func TestExecuteAborts(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	m := setupMocked(t, false)
	defer m.ctl.Finish()

	key := []byte("seed")
	err := m.program.Execute(func(trx storage.Transaction) error {
		trx.Put(storage.Pool.TestData, key, []byte{1})
		return fault.ErrInsufficientFunds
	})
	assert.Equal(t, fault.ErrInsufficientFunds, err, "wrong error")
	assert.False(t, storage.Pool.TestData.Has(key), "aborted write persisted")

	err = m.program.Execute(func(trx storage.Transaction) error {
		trx.Put(storage.Pool.TestData, key, []byte{2})
		return nil
	})
	assert.Nil(t, err, "execute error")
	assert.Equal(t, []byte{2}, storage.Pool.TestData.Get(key), "write not committed")
}
