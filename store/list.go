// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"github.com/bitmark-inc/storycommitd/account"
	"github.com/bitmark-inc/storycommitd/fault"
	"github.com/bitmark-inc/storycommitd/record"
)

// MaximumListCount - largest page List will return
const MaximumListCount = 100

// Entry - a record and its address
type Entry struct {
	Address account.Address `json:"address"`
	Record  record.Record   `json:"record"`
}

// List - committed records of one kind in address order from start
//
// next is the start of the following page, nil when there are no more
func (s *Store) List(kind record.Kind, start account.Address, count int) ([]Entry, *account.Address, error) {
	if count <= 0 || count > MaximumListCount {
		return nil, nil, fault.ErrInvalidCount
	}

	entries := make([]Entry, 0, count)
	var last *account.Address

	cursor := s.records.NewFetchCursor().Seek(start[:])
fetching:
	for len(entries) < count {
		elements, err := cursor.Fetch(count)
		if nil != err {
			return nil, nil, err
		}
		if 0 == len(elements) {
			last = nil
			break fetching
		}
		for _, element := range elements {
			address, err := account.AddressFromBytes(element.Key)
			if nil != err {
				return nil, nil, err
			}
			last = &address

			r, err := record.Unpack(element.Value)
			if nil != err {
				s.log.Errorf("list: %s  error: %s", address, err)
				return nil, nil, err
			}
			if kind != r.Kind() {
				continue
			}
			entries = append(entries, Entry{
				Address: address,
				Record:  r,
			})
			if len(entries) >= count {
				break fetching
			}
		}
	}

	if nil == last {
		return entries, nil, nil
	}
	next, ok := successor(*last)
	if !ok {
		return entries, nil, nil
	}
	return entries, &next, nil
}

// the address immediately following a, false if a is the highest
func successor(a account.Address) (account.Address, bool) {
	for i := account.AddressLength - 1; i >= 0; i -= 1 {
		a[i] += 1
		if 0 != a[i] {
			return a, true
		}
	}
	return a, false
}
