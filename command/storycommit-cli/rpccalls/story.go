// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/storycommitd/account"
	"github.com/bitmark-inc/storycommitd/derive"
	"github.com/bitmark-inc/storycommitd/instruction"
	"github.com/bitmark-inc/storycommitd/keypair"
	"github.com/bitmark-inc/storycommitd/record"
	"github.com/bitmark-inc/storycommitd/rpc/story"
	"github.com/bitmark-inc/storycommitd/storycommit"
)

// InitialiseBankData - the parameters for creating the bank
type InitialiseBankData struct {
	Payer   *keypair.KeyPair
	Creator *account.Address
}

// InitialiseData - the parameters for opening a commit record
type InitialiseData struct {
	Caller   *keypair.KeyPair
	Holding  account.Address
	Mint     account.Address
	Metadata *account.Address
	Traits   record.Traits
}

// CommitData - the parameters for a trait update
//
// a zero Sequence is replaced by the one following the stored record
type CommitData struct {
	Caller   *keypair.KeyPair
	Holding  account.Address
	Mint     account.Address
	Traits   record.Traits
	Sequence uint64
}

// InitialiseBank - sign and send a bank creation
func (client *Client) InitialiseBank(data *InitialiseBankData) (*story.AddressReply, error) {
	programId, err := client.ProgramId()
	if nil != err {
		return nil, err
	}

	_, bump, err := derive.FindAddress(derive.BankSeeds(), programId)
	if nil != err {
		return nil, err
	}

	arguments := &instruction.InitialiseBank{
		Payer:   data.Payer.Address,
		Bump:    bump,
		Creator: data.Creator,
	}
	arguments.Sign(programId, data.Payer.PrivateKey)

	var reply story.AddressReply
	if err := client.call(story.ServiceName+".InitialiseBank", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Initialise - sign and send a commit record creation
func (client *Client) Initialise(data *InitialiseData) (*story.AddressReply, error) {
	programId, err := client.ProgramId()
	if nil != err {
		return nil, err
	}

	_, bump, err := derive.FindAddress(derive.CommitSeeds(data.Mint), programId)
	if nil != err {
		return nil, err
	}

	arguments := &instruction.Initialise{
		Caller:   data.Caller.Address,
		Holding:  data.Holding,
		Mint:     data.Mint,
		Metadata: data.Metadata,
		Bump:     bump,
		Traits:   data.Traits,
	}
	arguments.Sign(programId, data.Caller.PrivateKey)

	var reply story.AddressReply
	if err := client.call(story.ServiceName+".Initialise", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Commit - sign and send a trait update
func (client *Client) Commit(data *CommitData) (*story.AddressReply, error) {
	programId, err := client.ProgramId()
	if nil != err {
		return nil, err
	}

	sequence := data.Sequence
	if 0 == sequence {
		state, err := client.GetCommit(data.Mint)
		if nil != err {
			return nil, err
		}
		sequence = state.Commit.Sequence + 1
	}

	arguments := &instruction.Commit{
		Caller:   data.Caller.Address,
		Holding:  data.Holding,
		Mint:     data.Mint,
		Traits:   data.Traits,
		Sequence: sequence,
	}
	arguments.Sign(programId, data.Caller.PrivateKey)

	var reply story.AddressReply
	if err := client.call(story.ServiceName+".Commit", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetBank - read the bank record
func (client *Client) GetBank() (*storycommit.BankState, error) {
	var reply storycommit.BankState
	if err := client.call(story.ServiceName+".Bank", story.BankArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetCommit - read the commit record of a mint
func (client *Client) GetCommit(mint account.Address) (*storycommit.CommitState, error) {
	var reply storycommit.CommitState
	if err := client.call(story.ServiceName+".Get", story.GetArguments{Mint: mint}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ListCommits - one page of commit records
func (client *Client) ListCommits(start *account.Address, count int) (*story.ListReply, error) {
	arguments := story.ListArguments{
		Start: start,
		Count: count,
	}
	var reply story.ListReply
	if err := client.call(story.ServiceName+".List", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
