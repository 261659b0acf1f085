// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - token holding and collectible metadata registries
//
// the program only reads these; writes come from the registry owners,
// which on testing chains is the Registry RPC
package registry

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/storycommitd/account"
	"github.com/bitmark-inc/storycommitd/derive"
	"github.com/bitmark-inc/storycommitd/fault"
	"github.com/bitmark-inc/storycommitd/storage"
)

// Registry - both registries over their storage pools
type Registry struct {
	log               *logger.L
	holdings          storage.Handle
	metadata          storage.Handle
	metadataProgramId account.Address
}

// New - create the registries
func New(log *logger.L, holdings storage.Handle, metadata storage.Handle, metadataProgramId account.Address) *Registry {
	return &Registry{
		log:               log,
		holdings:          holdings,
		metadata:          metadata,
		metadataProgramId: metadataProgramId,
	}
}

// MetadataProgramId - program under which metadata addresses are derived
func (r *Registry) MetadataProgramId() account.Address {
	return r.metadataProgramId
}

func get(trx storage.Transaction, handle storage.Handle, key []byte) []byte {
	if nil == trx {
		return handle.Get(key)
	}
	return trx.Get(handle, key)
}

// Holding - read a holding account
func (r *Registry) Holding(trx storage.Transaction, address account.Address) (*Holding, error) {
	packed := get(trx, r.holdings, address[:])
	if nil == packed {
		return nil, fault.ErrRecordNotFound
	}
	return UnpackHolding(packed)
}

// PutHolding - create or replace a holding account
func (r *Registry) PutHolding(trx storage.Transaction, address account.Address, holding *Holding) error {
	if address.IsZero() || holding.Owner.IsZero() || holding.Mint.IsZero() {
		return fault.ErrZeroAddress
	}
	trx.Put(r.holdings, address[:], holding.Pack())

	r.log.Infof("holding: %s  owner: %s  mint: %s  amount: %d", address, holding.Owner, holding.Mint, holding.Amount)
	return nil
}

// MetadataAddress - the address of the metadata entry for a mint
func (r *Registry) MetadataAddress(mint account.Address) (account.Address, error) {
	a, _, err := derive.FindAddress(derive.MetadataSeeds(r.metadataProgramId, mint), r.metadataProgramId)
	return a, err
}

// Metadata - read a metadata entry
func (r *Registry) Metadata(trx storage.Transaction, address account.Address) (*Metadata, error) {
	packed := get(trx, r.metadata, address[:])
	if nil == packed {
		return nil, fault.ErrRecordNotFound
	}
	return UnpackMetadata(packed)
}

// PutMetadata - create or replace the metadata entry for its mint,
// stored at the derived address which is returned
func (r *Registry) PutMetadata(trx storage.Transaction, metadata *Metadata) (account.Address, error) {
	if err := metadata.Validate(); nil != err {
		return account.Address{}, err
	}
	address, err := r.MetadataAddress(metadata.Mint)
	if nil != err {
		return account.Address{}, err
	}
	trx.Put(r.metadata, address[:], metadata.Pack())

	r.log.Infof("metadata: %s  mint: %s  creators: %d", address, metadata.Mint, len(metadata.Creators))
	return address, nil
}
