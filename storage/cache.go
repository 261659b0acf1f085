// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	cache "github.com/patrickmn/go-cache"
)

// Cache - staged operations keyed by database key
type Cache interface {
	Get(string) (dbOperation, []byte, bool)
	Set(dbOperation, string, []byte)
	Clear()
}

type dbOperation int

const (
	dbPut dbOperation = iota
	dbDelete
)

type dbCache struct {
	cache *cache.Cache
}

type cacheData struct {
	op    dbOperation
	value []byte
}

// staged entries live until the transaction ends, so no expiry and no janitor
func newCache() *dbCache {
	return &dbCache{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (c *dbCache) Get(key string) (dbOperation, []byte, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return dbPut, nil, false
	}
	data := obj.(cacheData)
	return data.op, data.value, true
}

func (c *dbCache) Set(op dbOperation, key string, value []byte) {
	stored := make([]byte, len(value))
	copy(stored, value)
	c.cache.Set(key, cacheData{op: op, value: stored}, cache.NoExpiration)
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}
