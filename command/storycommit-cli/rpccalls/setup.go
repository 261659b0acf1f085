// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpccalls - JSON RPC client for storycommitd
package rpccalls

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/bitmark-inc/storycommitd/account"
	"github.com/bitmark-inc/storycommitd/rpc/node"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here

	// fetched from the node on first signed request
	programId *account.Address
}

// NewClient - create a RPC connection to a storycommitd
//
// the node uses a self-signed certificate, so it is not verified here;
// compare its fingerprint out of band
func NewClient(connect string, verbose bool, handle io.Writer) (*Client, error) {
	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if nil != err {
		return nil, err
	}
	return newClient(conn, verbose, handle), nil
}

func newClient(conn net.Conn, verbose bool, handle io.Writer) *Client {
	return &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
}

// Close - shutdown the storycommitd connection
func (client *Client) Close() {
	client.client.Close()
	client.conn.Close()
}

// call a method, echoing request and reply in verbose mode
func (client *Client) call(method string, arguments interface{}, reply interface{}) error {
	client.printJson(method+" Request", arguments)

	if err := client.client.Call(method, arguments, reply); nil != err {
		return err
	}

	client.printJson(method+" Reply", reply)
	return nil
}

// ProgramId - the program the connected node runs
func (client *Client) ProgramId() (account.Address, error) {
	if nil != client.programId {
		return *client.programId, nil
	}
	info, err := client.GetInfo()
	if nil != err {
		return account.Address{}, err
	}
	programId := info.Program.ProgramId
	client.programId = &programId
	return programId, nil
}

// GetInfo - request status from storycommitd
func (client *Client) GetInfo() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := client.call(node.ServiceName+".Info", node.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

func (client *Client) printJson(title string, message interface{}) {
	if !client.verbose {
		return
	}

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Fprintf(client.handle, "%s: marshal error: %s\n", title, err)
		return
	}
	fmt.Fprintf(client.handle, "%s:\n%s\n", title, b)
}
