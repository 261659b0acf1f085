// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

// StorageOverhead - bytes charged for every allocation on top of its data
const StorageOverhead = 128

// Rent - cost of keeping data on the ledger
type Rent struct {
	PerByteYear    uint64 `gluamapper:"per_byte_year" json:"per_byte_year"`
	ExemptionYears uint64 `gluamapper:"exemption_years" json:"exemption_years"`
}

// DefaultRent - the standard schedule
var DefaultRent = Rent{
	PerByteYear:    3480,
	ExemptionYears: 2,
}

// MinimumBalance - balance that keeps data of the given size rent exempt
func (r Rent) MinimumBalance(size int) uint64 {
	return (StorageOverhead + uint64(size)) * r.PerByteYear * r.ExemptionYears
}
