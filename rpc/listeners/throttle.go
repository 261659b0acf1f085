// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"context"
	"net"

	"golang.org/x/time/rate"
)

// connection whose reads are limited to a number of bits per second
type throttledConn struct {
	net.Conn
	limiter *rate.Limiter
}

func newThrottledConn(conn net.Conn, bitsPerSecond float64) net.Conn {
	bytesPerSecond := int(bitsPerSecond / 8)
	return &throttledConn{
		Conn:    conn,
		limiter: rate.NewLimiter(rate.Limit(bytesPerSecond), bytesPerSecond),
	}
}

func (c *throttledConn) Read(b []byte) (int, error) {
	n, err := c.Conn.Read(b)

	// WaitN rejects requests larger than the burst
	for remaining := n; remaining > 0; {
		chunk := remaining
		if chunk > c.limiter.Burst() {
			chunk = c.limiter.Burst()
		}
		if werr := c.limiter.WaitN(context.Background(), chunk); nil != werr {
			return n, werr
		}
		remaining -= chunk
	}
	return n, err
}
