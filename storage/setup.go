// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/storycommitd/fault"
)

// the program's key spaces, one prefix byte each
//
// every field must be exported, setPools assigns them by reflection
type pools struct {
	Records  *PoolHandle `prefix:"R"` // program owned Bank and Commit records
	Balances *PoolHandle `prefix:"L"` // ledger value per address
	Holdings *PoolHandle `prefix:"H"` // token holding accounts
	Metadata *PoolHandle `prefix:"M"` // collectible metadata entries
	TestData *PoolHandle `prefix:"Z"` // only written by tests
}

// Pool - handles to every key space, valid between Initialise and Finalise
var Pool pools

// stored under a key below every pool prefix
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
	versionLength    = 4
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

var database struct {
	sync.RWMutex
	log *logger.L
	db  *leveldb.DB
	trx Transaction
}

// Initialise - open the records database and bind the pools
func Initialise(name string, readOnly bool) error {
	database.Lock()
	defer database.Unlock()

	if nil != database.db {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("storage")

	db, err := leveldb.OpenFile(name, &ldb_opt.Options{
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	})
	if nil != err {
		log.Errorf("open: %q  error: %s", name, err)
		return err
	}

	if err := checkVersion(db, name, readOnly); nil != err {
		log.Criticalf("database: %q  error: %s", name, err)
		db.Close()
		return err
	}

	access := newDA(db, newCache())
	if err := setPools(access); nil != err {
		db.Close()
		Pool = pools{}
		return err
	}

	database.log = log
	database.db = db
	database.trx = newTransaction(access)

	log.Infof("opened: %q  read only: %t", name, readOnly)
	return nil
}

// Finalise - close the database, the pools become unusable
func Finalise() {
	database.Lock()
	defer database.Unlock()

	if nil == database.db {
		return
	}
	if err := database.db.Close(); nil != err {
		database.log.Errorf("close error: %s", err)
	}
	database.log.Info("closed")

	database.db = nil
	database.trx = nil
	Pool = pools{}
}

// NewDBTransaction - begin the single database transaction
//
// fails with fault.ErrTransactionInUse while another is open
func NewDBTransaction() (Transaction, error) {
	database.RLock()
	trx := database.trx
	database.RUnlock()

	if nil == trx {
		return nil, fault.ErrNotInitialised
	}
	if err := trx.Begin(); nil != err {
		return nil, err
	}
	return trx, nil
}

// a new database is stamped with the current version, an existing one
// must not be newer than this program
func checkVersion(db *leveldb.DB, name string, readOnly bool) error {
	value, err := db.Get(versionKey, nil)
	switch {
	case leveldb.ErrNotFound == err:
		if readOnly {
			return fmt.Errorf("database: %q is not initialised", name)
		}
		stamp := make([]byte, versionLength)
		binary.BigEndian.PutUint32(stamp, currentDBVersion)
		return db.Put(versionKey, stamp, nil)

	case nil != err:
		return err

	case versionLength != len(value):
		return fmt.Errorf("incompatible database version length: expected: %d  actual: %d", versionLength, len(value))
	}

	if version := binary.BigEndian.Uint32(value); version > currentDBVersion {
		return fmt.Errorf("database version: %d > current version: %d", version, currentDBVersion)
	}
	return nil
}

// give each tagged field of Pool a handle over its prefix
func setPools(access Access) error {
	value := reflect.ValueOf(&Pool).Elem()
	fields := value.Type()

	for i := 0; i < fields.NumField(); i += 1 {
		field := fields.Field(i)
		tag := field.Tag.Get("prefix")
		if 1 != len(tag) {
			return fmt.Errorf("pool: %s has invalid prefix: %q", field.Name, tag)
		}

		prefix := tag[0]
		var limit []byte
		if prefix < 0xff {
			limit = []byte{prefix + 1}
		}

		value.Field(i).Set(reflect.ValueOf(&PoolHandle{
			prefix:     prefix,
			limit:      limit,
			dataAccess: access,
		}))
	}
	return nil
}
