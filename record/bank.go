// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/storycommitd/account"
)

// discriminator ++ bump ++ creator
const bankSize = DiscriminatorLength + 1 + account.AddressLength

// Bank - the singleton fee pool record
//
// a zero creator means the bank was set up without a trusted creator
type Bank struct {
	Bump    uint8           `json:"bump"`
	Creator account.Address `json:"creator"`
}

// Kind - BankKind
func (bank *Bank) Kind() Kind {
	return BankKind
}

// HasCreator - true if a trusted creator was recorded
func (bank *Bank) HasCreator() bool {
	return !bank.Creator.IsZero()
}

// Pack - binary form of the bank
func (bank *Bank) Pack() []byte {
	buffer := header(BankKind)
	buffer = append(buffer, bank.Bump)
	return append(buffer, bank.Creator[:]...)
}

// UnpackBank - decode a packed bank
func UnpackBank(buffer []byte) (*Bank, error) {
	data, err := fields(BankKind, buffer)
	if nil != err {
		return nil, err
	}
	bank := &Bank{
		Bump: data[0],
	}
	copy(bank.Creator[:], data[1:])
	return bank, nil
}
