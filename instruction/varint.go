// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

// maximum number of bytes in an encoded uint64
const varint64MaximumBytes = 9

// append a uint64 as 7 bit groups, low first, high bit set on all but
// the final byte; the ninth byte carries a full 8 bits
func appendVarint64(buffer []byte, value uint64) []byte {
	for i := 1; i < varint64MaximumBytes; i += 1 {
		if value < 0x80 {
			return append(buffer, byte(value))
		}
		buffer = append(buffer, byte(value)|0x80)
		value >>= 7
	}
	return append(buffer, byte(value))
}

// decode a uint64 from the start of buffer, returns the value and the
// bytes used or 0, 0 if the buffer is truncated
func readVarint64(buffer []byte) (uint64, int) {
	value := uint64(0)
	shift := uint(0)
	for i, b := range buffer {
		if i == varint64MaximumBytes-1 {
			return value | uint64(b)<<shift, i + 1
		}
		value |= uint64(b&0x7f) << shift
		if 0 == b&0x80 {
			return value, i + 1
		}
		shift += 7
	}
	return 0, 0
}
