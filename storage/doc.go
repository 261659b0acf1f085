// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk ledger state
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a single LevelDB database split into a series of
// tables.  Each table is defined by a prefix byte that is obtained
// from the prefix tag in the struct defining the available tables.
//
// All writes go through the one Transaction: they are staged in a
// batch (with a cache so reads inside the transaction see them) and
// reach the database in a single atomic write on Commit, or are
// discarded by Abort.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++        = concatenation of byte data
// 3. address   = 32 byte ledger address
// 4. value     = big endian uint64 (8 bytes)
//
// Program records:
//
//   R ++ address               - bank and commit records owned by the program
//                                data: 8 byte kind discriminator ++ packed fields
//
// Ledger (value transfer collaborator):
//
//   L ++ address               - balance in minimal value units
//                                data: value
//
// Registries (read only collaborators):
//
//   H ++ holding address       - token holding account
//                                data: owner ++ mint ++ amount
//   M ++ metadata address      - collectible metadata entry
//                                data: mint ++ update authority ++ count ++ [ creator ++ verified ++ share ]
//
// Testing:
//   Z ++ key                   - testing data
package storage
