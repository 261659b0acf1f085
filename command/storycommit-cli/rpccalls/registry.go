// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/storycommitd/account"
	tokenregistry "github.com/bitmark-inc/storycommitd/registry"
	"github.com/bitmark-inc/storycommitd/rpc/registry"
)

// PutHolding - create or replace a holding account on a test chain
func (client *Client) PutHolding(address account.Address, holding *tokenregistry.Holding) (*registry.HoldingReply, error) {
	arguments := registry.HoldingArguments{
		Address: address,
		Holding: holding,
	}
	var reply registry.HoldingReply
	if err := client.call(registry.ServiceName+".PutHolding", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetHolding - read a holding account
func (client *Client) GetHolding(address account.Address) (*registry.HoldingReply, error) {
	var reply registry.HoldingReply
	if err := client.call(registry.ServiceName+".GetHolding", registry.HoldingArguments{Address: address}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// PutMetadata - create or replace a metadata entry on a test chain
func (client *Client) PutMetadata(metadata *tokenregistry.Metadata) (*registry.MetadataReply, error) {
	var reply registry.MetadataReply
	if err := client.call(registry.ServiceName+".PutMetadata", metadata, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetMetadata - read the metadata entry of a mint
func (client *Client) GetMetadata(mint account.Address) (*registry.MetadataReply, error) {
	var reply registry.MetadataReply
	if err := client.call(registry.ServiceName+".GetMetadata", registry.MetadataArguments{Mint: mint}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
