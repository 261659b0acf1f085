// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/storycommitd/account"
	"github.com/bitmark-inc/storycommitd/rpc/ledger"
)

// GetBalance - value held at an address
func (client *Client) GetBalance(address account.Address) (*ledger.BalanceReply, error) {
	var reply ledger.BalanceReply
	if err := client.call(ledger.ServiceName+".Balance", ledger.BalanceArguments{Address: address}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Airdrop - create value at an address on a test chain
func (client *Client) Airdrop(to account.Address, amount uint64) (*ledger.BalanceReply, error) {
	arguments := ledger.AirdropArguments{
		To:     to,
		Amount: amount,
	}
	var reply ledger.BalanceReply
	if err := client.call(ledger.ServiceName+".Airdrop", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
