// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package validator - proves a caller may act on a collectible
//
// every failure is returned as a fault.AuthorisationError so callers
// can abort the surrounding transaction and report it
package validator

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/storycommitd/account"
	"github.com/bitmark-inc/storycommitd/derive"
	"github.com/bitmark-inc/storycommitd/fault"
	"github.com/bitmark-inc/storycommitd/storage"
)

// Validator - checks against the external registries
type Validator struct {
	log               *logger.L
	holdings          HoldingReader
	metadata          MetadataReader
	metadataProgramId account.Address
}

// New - create a validator
func New(log *logger.L, holdings HoldingReader, metadata MetadataReader, metadataProgramId account.Address) *Validator {
	return &Validator{
		log:               log,
		holdings:          holdings,
		metadata:          metadata,
		metadataProgramId: metadataProgramId,
	}
}

// CheckOwnership - the caller must hold exactly one unit of mint in the
// holding account
func (v *Validator) CheckOwnership(trx storage.Transaction, caller account.Address, holdingAddress account.Address, mint account.Address) error {
	holding, err := v.holdings.Holding(trx, holdingAddress)
	if fault.ErrRecordNotFound == err {
		return fault.ErrHoldingNotFound
	}
	if nil != err {
		return err
	}

	if !holding.Owner.Equal(caller) {
		v.log.Warnf("holding: %s  owner: %s  caller: %s", holdingAddress, holding.Owner, caller)
		return fault.ErrNotHoldingOwner
	}
	if !holding.Mint.Equal(mint) {
		v.log.Warnf("holding: %s  mint: %s  expected: %s", holdingAddress, holding.Mint, mint)
		return fault.ErrHoldingMintMismatch
	}

	// a balance above one would be a fungible token
	if 1 != holding.Amount {
		v.log.Warnf("holding: %s  amount: %d", holdingAddress, holding.Amount)
		return fault.ErrHoldingAmountNotOne
	}
	return nil
}

// CheckCreator - the metadata entry supplied for mint must be the one
// at the derived address and its first creator must be trustedCreator
// and have verified the entry
func (v *Validator) CheckCreator(trx storage.Transaction, mint account.Address, metadataAddress account.Address, trustedCreator account.Address) error {
	expected, _, err := derive.FindAddress(derive.MetadataSeeds(v.metadataProgramId, mint), v.metadataProgramId)
	if nil != err {
		return err
	}
	if !expected.Equal(metadataAddress) {
		v.log.Warnf("metadata: %s  expected: %s", metadataAddress, expected)
		return fault.ErrMetadataAddressMismatch
	}

	metadata, err := v.metadata.Metadata(trx, metadataAddress)
	if fault.ErrRecordNotFound == err {
		return fault.ErrMetadataNotFound
	}
	if nil != err {
		return err
	}

	if !metadata.Mint.Equal(mint) {
		return fault.ErrMetadataMintMismatch
	}
	if 0 == len(metadata.Creators) {
		return fault.ErrNoCreators
	}
	if !metadata.Creators[0].Address.Equal(trustedCreator) {
		v.log.Warnf("metadata: %s  creator: %s  trusted: %s", metadataAddress, metadata.Creators[0].Address, trustedCreator)
		return fault.ErrCreatorMismatch
	}
	if !metadata.Creators[0].Verified {
		v.log.Warnf("metadata: %s  creator: %s  not verified", metadataAddress, trustedCreator)
		return fault.ErrCreatorNotVerified
	}
	return nil
}
