// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/storycommitd/account"
	"github.com/bitmark-inc/storycommitd/counter"
	"github.com/bitmark-inc/storycommitd/mode"
	"github.com/bitmark-inc/storycommitd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100

	// ServiceName - name registered with the RPC server
	ServiceName = "Node"
)

// ProgramInfo - fixed program settings reported to clients
type ProgramInfo interface {
	ProgramId() account.Address
	BankAddress() (account.Address, uint8)
	VerifyCreator() bool
	ServiceFee() uint64
}

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	program ProgramInfo
	counter *counter.Counter
}

// New - create the node information service
func New(log *logger.L, start time.Time, version string, counter *counter.Counter, program ProgramInfo) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		program: program,
		counter: counter,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// ProgramReply - the program this node runs
type ProgramReply struct {
	ProgramId     account.Address `json:"programId"`
	Bank          account.Address `json:"bank"`
	BankBump      uint8           `json:"bankBump"`
	VerifyCreator bool            `json:"verifyCreator"`
	ServiceFee    uint64          `json:"serviceFee,string"`
}

// InfoReply - results from info request
type InfoReply struct {
	Chain   string       `json:"chain"`
	Mode    string       `json:"mode"`
	RPCs    uint64       `json:"rpcs"`
	Version string       `json:"version"`
	Uptime  string       `json:"uptime"`
	Program ProgramReply `json:"program"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	bank, bump := node.program.BankAddress()

	reply.Chain = mode.ChainName()
	reply.Mode = mode.String()
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.Program = ProgramReply{
		ProgramId:     node.program.ProgramId(),
		Bank:          bank,
		BankBump:      bump,
		VerifyCreator: node.program.VerifyCreator(),
		ServiceFee:    node.program.ServiceFee(),
	}
	return nil
}
