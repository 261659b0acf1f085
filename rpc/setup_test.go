// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"crypto/tls"
	"fmt"
	"math/rand"
	"os"
	"testing"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/storycommitd/fault"
	"github.com/bitmark-inc/storycommitd/fixtures"
	"github.com/bitmark-inc/storycommitd/rpc"
	"github.com/bitmark-inc/storycommitd/rpc/listeners"
	"github.com/bitmark-inc/storycommitd/rpc/server"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func TestInitialiseFinalise(t *testing.T) {
	cer, key, err := certgen.NewTLSCertPair("storycommitd test", time.Now().Add(time.Hour), false, nil)
	assert.Nil(t, err, "certgen error")

	listen := fmt.Sprintf("127.0.0.1:%d", rand.Intn(30000)+30000)
	configuration := &listeners.RPCConfiguration{
		MaximumConnections: 2,
		Bandwidth:          25000000,
		Listen:             []string{listen},
		Certificate:        string(cer),
		PrivateKey:         string(key),
	}

	err = rpc.Initialise(configuration, "0.1", server.Services{})
	assert.Nil(t, err, "wrong Initialise")
	assert.Equal(t, fault.ErrAlreadyInitialised, rpc.Initialise(configuration, "0.1", server.Services{}), "double initialise")

	conn, err := tls.Dial("tcp", listen, &tls.Config{InsecureSkipVerify: true})
	assert.Nil(t, err, "dial error")
	if nil == err {
		conn.Close()
	}

	assert.Nil(t, rpc.Finalise(), "wrong Finalise")
	assert.Equal(t, fault.ErrNotInitialised, rpc.Finalise(), "double finalise")
}

func TestInitialiseBadCertificate(t *testing.T) {
	configuration := &listeners.RPCConfiguration{
		MaximumConnections: 2,
		Bandwidth:          25000000,
		Listen:             []string{"127.0.0.1:2130"},
		Certificate:        "none",
		PrivateKey:         "none",
	}
	err := rpc.Initialise(configuration, "0.1", server.Services{})
	assert.NotNil(t, err, "bad certificate accepted")
}
