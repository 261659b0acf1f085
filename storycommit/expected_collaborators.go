// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storycommit

import (
	"github.com/bitmark-inc/storycommitd/account"
	"github.com/bitmark-inc/storycommitd/storage"
	"github.com/bitmark-inc/storycommitd/validator"
)

// ValueTransfer - debit and credit by an exact amount
//
// must fail rather than leave a negative balance
type ValueTransfer interface {
	Transfer(trx storage.Transaction, from account.Address, to account.Address, amount uint64) error
}

// BalanceReader - current balance of an address
type BalanceReader interface {
	Balance(trx storage.Transaction, address account.Address) uint64
}

// Allocator - funds the storage of a newly created record
type Allocator interface {
	Allocate(trx storage.Transaction, payer account.Address, address account.Address, size int) error
}

// Collaborators - the external services the program consumes
type Collaborators struct {
	Transfer  ValueTransfer
	Balances  BalanceReader
	Allocator Allocator
	Holdings  validator.HoldingReader
	Metadata  validator.MetadataReader
}
