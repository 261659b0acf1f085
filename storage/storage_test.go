// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/storycommitd/fault"
	"github.com/bitmark-inc/storycommitd/storage"
)

var testingDirName string

func TestMain(m *testing.M) {
	dir, err := ioutil.TempDir("", "storage-test")
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
	_ = logger.Initialise(logging)

	rc := m.Run()

	logger.Finalise()
	os.RemoveAll(testingDirName)
	os.Exit(rc)
}

// configure for testing
func setup(t *testing.T) {
	database := filepath.Join(testingDirName, t.Name()+".leveldb")
	os.RemoveAll(database)
	err := storage.Initialise(database, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// post test cleanup
func teardown() {
	storage.Finalise()
}

func TestInitialiseTwice(t *testing.T) {
	setup(t)
	defer teardown()

	err := storage.Initialise(filepath.Join(testingDirName, "other.leveldb"), storage.ReadWrite)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise allowed")
}

func TestCommitIsVisible(t *testing.T) {
	setup(t)
	defer teardown()

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin error")

	trx.Put(storage.Pool.TestData, []byte("key-one"), []byte("data-one"))
	trx.PutN(storage.Pool.TestData, []byte("key-two"), 42)

	// staged data is visible inside the transaction
	assert.Equal(t, []byte("data-one"), trx.Get(storage.Pool.TestData, []byte("key-one")), "staged value not visible")
	n, found := trx.GetN(storage.Pool.TestData, []byte("key-two"))
	assert.True(t, found, "staged number not found")
	assert.Equal(t, uint64(42), n, "wrong staged number")

	err = trx.Commit()
	assert.Nil(t, err, "commit error")
	assert.False(t, trx.InUse(), "still in use after commit")

	assert.Equal(t, []byte("data-one"), storage.Pool.TestData.Get([]byte("key-one")), "committed value missing")
	assert.True(t, storage.Pool.TestData.Has([]byte("key-two")), "committed number missing")
	assert.Nil(t, storage.Pool.TestData.Get([]byte("nonexistent")), "unexpected value")
}

func TestAbortDiscards(t *testing.T) {
	setup(t)
	defer teardown()

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin error")
	trx.Put(storage.Pool.TestData, []byte("keep"), []byte("kept"))
	assert.Nil(t, trx.Commit(), "commit error")

	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err, "begin error")
	trx.Put(storage.Pool.TestData, []byte("discard"), []byte("gone"))
	trx.Delete(storage.Pool.TestData, []byte("keep"))

	assert.False(t, trx.Has(storage.Pool.TestData, []byte("keep")), "staged delete not visible")
	assert.Nil(t, trx.Get(storage.Pool.TestData, []byte("keep")), "staged delete returned value")

	trx.Abort()

	assert.False(t, storage.Pool.TestData.Has([]byte("discard")), "aborted write persisted")
	assert.Equal(t, []byte("kept"), storage.Pool.TestData.Get([]byte("keep")), "aborted delete persisted")
}

func TestBeginTwice(t *testing.T) {
	setup(t)
	defer teardown()

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "first begin error")

	_, err = storage.NewDBTransaction()
	assert.Equal(t, fault.ErrTransactionInUse, err, "second begin allowed")

	trx.Abort()

	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err, "begin after abort error")
	trx.Abort()

	assert.Equal(t, fault.ErrTransactionNotInUse, trx.Commit(), "commit without begin allowed")
}

func TestPoolsAreSeparate(t *testing.T) {
	setup(t)
	defer teardown()

	key := []byte("same-key")

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin error")
	trx.Put(storage.Pool.Records, key, []byte("record"))
	trx.PutN(storage.Pool.Balances, key, 7)
	assert.Nil(t, trx.Commit(), "commit error")

	assert.Equal(t, []byte("record"), storage.Pool.Records.Get(key), "wrong record")
	n, found := storage.Pool.Balances.GetN(key)
	assert.True(t, found, "balance missing")
	assert.Equal(t, uint64(7), n, "wrong balance")
	assert.False(t, storage.Pool.Holdings.Has(key), "key leaked into another pool")
}

func TestFetchCursor(t *testing.T) {
	setup(t)
	defer teardown()

	keys := []string{"key-a", "key-b", "key-c", "key-d", "key-e"}

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin error")
	for _, k := range keys {
		trx.Put(storage.Pool.TestData, []byte(k), []byte("data-"+k))
	}
	assert.Nil(t, trx.Commit(), "commit error")

	cursor := storage.Pool.TestData.NewFetchCursor()

	first, err := cursor.Fetch(2)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 2, len(first), "wrong first count")
	assert.Equal(t, []byte("key-a"), first[0].Key, "wrong first key")
	assert.Equal(t, []byte("data-key-b"), first[1].Value, "wrong second value")

	rest, err := cursor.Fetch(10)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 3, len(rest), "wrong rest count")
	assert.Equal(t, []byte("key-c"), rest[0].Key, "wrong continuation key")

	none, err := cursor.Fetch(10)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 0, len(none), "data beyond the end")

	_, err = cursor.Fetch(0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count allowed")

	seeked, err := storage.Pool.TestData.NewFetchCursor().Seek([]byte("key-d")).Fetch(10)
	assert.Nil(t, err, "seek fetch error")
	assert.Equal(t, 2, len(seeked), "wrong seek count")

	count := 0
	err = storage.Pool.TestData.NewFetchCursor().Map(func(key []byte, value []byte) error {
		count += 1
		return nil
	})
	assert.Nil(t, err, "map error")
	assert.Equal(t, len(keys), count, "wrong map count")
}
