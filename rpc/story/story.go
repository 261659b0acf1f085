// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package story

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/storycommitd/account"
	"github.com/bitmark-inc/storycommitd/fault"
	"github.com/bitmark-inc/storycommitd/instruction"
	"github.com/bitmark-inc/storycommitd/record"
	"github.com/bitmark-inc/storycommitd/rpc/ratelimit"
	"github.com/bitmark-inc/storycommitd/store"
	"github.com/bitmark-inc/storycommitd/storycommit"
)

const (
	rateLimitStory = 100
	rateBurstStory = 200

	// ServiceName - name registered with the RPC server
	ServiceName = "StoryCommit"
)

// Program - the operations the service forwards to
type Program interface {
	ProgramId() account.Address
	InitialiseBank(*storycommit.InitialiseBankArguments) (account.Address, error)
	Initialise(*storycommit.InitialiseArguments) (account.Address, error)
	Commit(*storycommit.CommitArguments) (account.Address, error)
	Bank() (*storycommit.BankState, error)
	GetCommit(account.Address) (*storycommit.CommitState, error)
	ListCommits(account.Address, int) ([]store.Entry, *account.Address, error)
}

// Story - type for RPC calls
type Story struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Program Program
}

// New - create the story commit service
func New(log *logger.L, program Program) *Story {
	return &Story{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitStory, rateBurstStory),
		Program: program,
	}
}

// ---

// AddressReply - the record written by a signed request
type AddressReply struct {
	Address account.Address `json:"address"`
}

// InitialiseBank - create the bank, signed by the payer
func (s *Story) InitialiseBank(arguments *instruction.InitialiseBank, reply *AddressReply) error {
	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}
	if err := instruction.Verify(arguments, s.Program.ProgramId()); nil != err {
		return err
	}

	s.Log.Infof("initialise bank: payer: %s", arguments.Payer)

	address, err := s.Program.InitialiseBank(arguments.Arguments())
	if nil != err {
		s.Log.Warnf("initialise bank: payer: %s  error: %s", arguments.Payer, err)
		return err
	}
	reply.Address = address
	return nil
}

// Initialise - open a commit record, signed by the holder
func (s *Story) Initialise(arguments *instruction.Initialise, reply *AddressReply) error {
	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}
	if err := instruction.Verify(arguments, s.Program.ProgramId()); nil != err {
		return err
	}

	s.Log.Infof("initialise: caller: %s  mint: %s", arguments.Caller, arguments.Mint)

	address, err := s.Program.Initialise(arguments.Arguments())
	if nil != err {
		s.Log.Warnf("initialise: mint: %s  error: %s", arguments.Mint, err)
		return err
	}
	reply.Address = address
	return nil
}

// Commit - overwrite the traits, signed by the holder
func (s *Story) Commit(arguments *instruction.Commit, reply *AddressReply) error {
	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}
	if err := instruction.Verify(arguments, s.Program.ProgramId()); nil != err {
		return err
	}

	s.Log.Infof("commit: caller: %s  mint: %s  sequence: %d  traits: %s", arguments.Caller, arguments.Mint, arguments.Sequence, arguments.Traits)

	address, err := s.Program.Commit(arguments.Arguments())
	if nil != err {
		s.Log.Warnf("commit: mint: %s  error: %s", arguments.Mint, err)
		return err
	}
	reply.Address = address
	return nil
}

// ---

// BankArguments - empty arguments for bank request
type BankArguments struct{}

// Bank - read the bank record and its balance
func (s *Story) Bank(_ *BankArguments, reply *storycommit.BankState) error {
	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	state, err := s.Program.Bank()
	if nil != err {
		return err
	}
	*reply = *state
	return nil
}

// GetArguments - the mint to look up
type GetArguments struct {
	Mint account.Address `json:"mint"`
}

// Get - read the commit record of a mint
func (s *Story) Get(arguments *GetArguments, reply *storycommit.CommitState) error {
	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}
	if nil == arguments || arguments.Mint.IsZero() {
		return fault.ErrMissingParameters
	}

	state, err := s.Program.GetCommit(arguments.Mint)
	if nil != err {
		return err
	}
	*reply = *state
	return nil
}

// ListArguments - page request, a nil start begins at the lowest address
type ListArguments struct {
	Start *account.Address `json:"start,omitempty"`
	Count int              `json:"count"`
}

// CommitEntry - a commit record and its address
type CommitEntry struct {
	Address account.Address `json:"address"`
	Commit  *record.Commit  `json:"commit"`
}

// ListReply - one page of commit records
type ListReply struct {
	Commits   []CommitEntry    `json:"commits"`
	NextStart *account.Address `json:"nextStart,omitempty"`
}

// List - page through commit records in address order
func (s *Story) List(arguments *ListArguments, reply *ListReply) error {
	if nil == arguments {
		return fault.ErrMissingParameters
	}
	if err := ratelimit.LimitN(s.Limiter, arguments.Count, store.MaximumListCount); nil != err {
		return err
	}

	start := account.Address{}
	if nil != arguments.Start {
		start = *arguments.Start
	}

	entries, next, err := s.Program.ListCommits(start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Commits = make([]CommitEntry, 0, len(entries))
	for _, e := range entries {
		commit, ok := e.Record.(*record.Commit)
		if !ok {
			return fault.ErrWrongRecordKind
		}
		reply.Commits = append(reply.Commits, CommitEntry{
			Address: e.Address,
			Commit:  commit,
		})
	}
	reply.NextStart = next
	return nil
}
