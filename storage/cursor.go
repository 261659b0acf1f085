// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/storycommitd/fault"
)

// FetchCursor - ordered walk through the committed keys of one pool
type FetchCursor struct {
	pool      *PoolHandle
	keyRange  util.Range
	exhausted bool
}

// NewFetchCursor - a cursor at the lowest key of the pool
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool: p,
		keyRange: util.Range{
			Start: []byte{p.prefix},
			Limit: p.limit,
		},
	}
}

// Seek - restart the walk at key, or the first key after it
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.keyRange.Start = cursor.pool.prefixKey(key)
	cursor.exhausted = false
	return cursor
}

// Fetch - up to count elements, then advance past the last one
//
// an empty result means the pool has no more keys
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.ErrInvalidCursor
	}
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	results := make([]Element, 0, count)
	err := cursor.scan(func(e Element) (bool, error) {
		results = append(results, e)
		return len(results) < count, nil
	})
	if nil != err || 0 == len(results) {
		return results, err
	}

	next, ok := successor(results[len(results)-1].Key)
	if ok {
		cursor.keyRange.Start = cursor.pool.prefixKey(next)
	} else {
		cursor.exhausted = true
	}
	return results, nil
}

// Map - call f on every remaining element, stopping at its first error
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.ErrInvalidCursor
	}
	return cursor.scan(func(e Element) (bool, error) {
		return true, f(e.Key, e.Value)
	})
}

// iterate the current range; visit returns false to stop early
func (cursor *FetchCursor) scan(visit func(Element) (bool, error)) error {
	if cursor.exhausted || nil == cursor.pool.dataAccess {
		return nil
	}

	iter := cursor.pool.dataAccess.Iterator(&cursor.keyRange)
	defer iter.Release()

	for iter.Next() {
		// iterator slices are reused by the next call to Next
		key := iter.Key()
		e := Element{
			Key:   append([]byte(nil), key[1:]...),
			Value: append([]byte(nil), iter.Value()...),
		}
		more, err := visit(e)
		if nil != err {
			return err
		}
		if !more {
			break
		}
	}
	return iter.Error()
}

// the smallest key of the same length greater than key; false if key is
// all 0xff
func successor(key []byte) ([]byte, bool) {
	next := append([]byte(nil), key...)
	for i := len(next) - 1; i >= 0; i -= 1 {
		next[i] += 1
		if 0 != next[i] {
			return next, true
		}
	}
	return nil, false
}
