// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - ledger addresses
//
// every identity on the ledger is a 32 byte address: user keys,
// collectible mints, holding accounts, registry entries and the
// program derived records.  The text form is Base58.
package account
