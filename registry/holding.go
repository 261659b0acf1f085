// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"encoding/binary"

	"github.com/bitmark-inc/storycommitd/account"
	"github.com/bitmark-inc/storycommitd/fault"
)

// owner ++ mint ++ amount
const holdingSize = 2*account.AddressLength + 8

// Holding - a token holding account: owner holds amount units of mint
type Holding struct {
	Owner  account.Address `json:"owner"`
	Mint   account.Address `json:"mint"`
	Amount uint64          `json:"amount,string"`
}

// Pack - binary form
func (holding *Holding) Pack() []byte {
	buffer := make([]byte, 0, holdingSize)
	buffer = append(buffer, holding.Owner[:]...)
	buffer = append(buffer, holding.Mint[:]...)
	amount := make([]byte, 8)
	binary.BigEndian.PutUint64(amount, holding.Amount)
	return append(buffer, amount...)
}

// UnpackHolding - decode a packed holding
func UnpackHolding(buffer []byte) (*Holding, error) {
	if holdingSize != len(buffer) {
		return nil, fault.ErrRecordLength
	}
	holding := &Holding{}
	n := copy(holding.Owner[:], buffer)
	n += copy(holding.Mint[:], buffer[n:])
	holding.Amount = binary.BigEndian.Uint64(buffer[n:])
	return holding, nil
}
