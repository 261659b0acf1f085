// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package store - creation and mutation of program records
//
// records live in a single pool keyed by their derived address; a
// record is created once, never deleted and only changed through a
// Writable obtained inside a transaction
package store

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/storycommitd/account"
	"github.com/bitmark-inc/storycommitd/fault"
	"github.com/bitmark-inc/storycommitd/record"
	"github.com/bitmark-inc/storycommitd/storage"
)

// Allocator - funds the storage cost of a new record
type Allocator interface {
	Allocate(trx storage.Transaction, payer account.Address, address account.Address, size int) error
}

// Store - program record store
type Store struct {
	log       *logger.L
	records   storage.Handle
	allocator Allocator
}

// New - create a store over the records pool
func New(log *logger.L, records storage.Handle, allocator Allocator) *Store {
	return &Store{
		log:       log,
		records:   records,
		allocator: allocator,
	}
}

// Create - place a new record at its derived address, the payer funds
// its storage
func (s *Store) Create(trx storage.Transaction, r record.Record, address account.Address, payer account.Address) error {
	if address.IsZero() {
		return fault.ErrZeroAddress
	}
	if trx.Has(s.records, address[:]) {
		return fault.ErrRecordAlreadyExists
	}

	packed := r.Pack()
	err := s.allocator.Allocate(trx, payer, address, len(packed))
	if nil != err {
		return err
	}
	trx.Put(s.records, address[:], packed)

	s.log.Infof("create: %s at: %s  payer: %s", r.Kind(), address, payer)
	return nil
}

// Writable - a record opened for update
type Writable struct {
	trx     storage.Transaction
	records storage.Handle
	address account.Address
	Record  record.Record
}

// OpenForWrite - load an existing record of the given kind for update
func (s *Store) OpenForWrite(trx storage.Transaction, kind record.Kind, address account.Address) (*Writable, error) {
	r, err := unpack(kind, trx.Get(s.records, address[:]))
	if nil != err {
		return nil, err
	}
	return &Writable{
		trx:     trx,
		records: s.records,
		address: address,
		Record:  r,
	}, nil
}

// Address - where the record is stored
func (w *Writable) Address() account.Address {
	return w.address
}

// Save - write the current record back into the transaction
func (w *Writable) Save() {
	w.trx.Put(w.records, w.address[:], w.Record.Pack())
}

// Read - load a record, a nil transaction reads committed state
func (s *Store) Read(trx storage.Transaction, kind record.Kind, address account.Address) (record.Record, error) {
	var packed []byte
	if nil == trx {
		packed = s.records.Get(address[:])
	} else {
		packed = trx.Get(s.records, address[:])
	}
	return unpack(kind, packed)
}

func unpack(kind record.Kind, packed []byte) (record.Record, error) {
	if nil == packed {
		return nil, fault.ErrRecordNotFound
	}
	r, err := record.Unpack(packed)
	if nil != err {
		return nil, err
	}
	if kind != r.Kind() {
		return nil, fault.ErrWrongRecordKind
	}
	return r, nil
}
