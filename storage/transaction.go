// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - all or nothing unit of work over the pools
type Transaction interface {
	Abort()
	Begin() error
	Commit() error
	Delete(Handle, []byte)
	Get(Handle, []byte) []byte
	GetN(Handle, []byte) (uint64, bool)
	Has(Handle, []byte) bool
	InUse() bool
	Put(Handle, []byte, []byte)
	PutN(Handle, []byte, uint64)
}

type transactionData struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &transactionData{
		access: access,
	}
}

func (t *transactionData) Begin() error {
	return t.access.Begin()
}

func (t *transactionData) Abort() {
	t.access.Abort()
}

func (t *transactionData) Commit() error {
	return t.access.Commit()
}

func (t *transactionData) InUse() bool {
	return t.access.InUse()
}

func (t *transactionData) Put(handle Handle, key []byte, value []byte) {
	handle.put(key, value)
}

func (t *transactionData) PutN(handle Handle, key []byte, value uint64) {
	handle.putN(key, value)
}

func (t *transactionData) Delete(handle Handle, key []byte) {
	handle.remove(key)
}

func (t *transactionData) Get(handle Handle, key []byte) []byte {
	return handle.Get(key)
}

func (t *transactionData) GetN(handle Handle, key []byte) (uint64, bool) {
	return handle.GetN(key)
}

func (t *transactionData) Has(handle Handle, key []byte) bool {
	return handle.Has(key)
}
