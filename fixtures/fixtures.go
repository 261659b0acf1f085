// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - common test setup
package fixtures

import (
	"crypto/ed25519"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/storycommitd/account"
	"github.com/bitmark-inc/storycommitd/storage"
)

// LogCategory - logger channel used by tests
const LogCategory = "testing"

var testingDirName string

// SetupTestLogger - start logging into a temporary directory
func SetupTestLogger() {
	dir, err := ioutil.TempDir("", "storycommit-test")
	if nil != err {
		panic(err)
	}
	testingDirName = dir

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the directory
func TeardownTestLogger() {
	logger.Finalise()
	os.RemoveAll(testingDirName)
}

// SetupTestStorage - open a fresh database for one test
func SetupTestStorage(t *testing.T) {
	database := filepath.Join(testingDirName, filepath.Base(t.Name())+".leveldb")
	os.RemoveAll(database)
	if err := storage.Initialise(database, storage.ReadWrite); nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// TeardownTestStorage - close the database
func TeardownTestStorage() {
	storage.Finalise()
}

// KeyPair - a generated test identity
type KeyPair struct {
	Address    account.Address
	PrivateKey ed25519.PrivateKey
}

// NewKeyPair - generate a random identity
func NewKeyPair(t *testing.T) KeyPair {
	publicKey, privateKey, err := ed25519.GenerateKey(nil)
	if nil != err {
		t.Fatalf("generate key error: %s", err)
	}
	a, _ := account.AddressFromBytes(publicKey)
	return KeyPair{
		Address:    a,
		PrivateKey: privateKey,
	}
}

// NewAddress - a random address
func NewAddress(t *testing.T) account.Address {
	return NewKeyPair(t).Address
}

// MustAddress - decode a Base58 address or fail the test
func MustAddress(t *testing.T, s string) account.Address {
	a, err := account.AddressFromBase58(s)
	if nil != err {
		t.Fatalf("address: %q  error: %s", s, err)
	}
	return a
}
