// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/storycommitd/background"
)

const (
	initialCount1 = 246
	finalCount1   = 987654321
	initialCount2 = 777
	finalCount2   = 897645312
)

type ticker struct {
	count int
	final int
}

func (state *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	t := args.(*testing.T)

	if initialCount1 != state.count && initialCount2 != state.count {
		t.Errorf("unexpected initial count: %d", state.count)
	}

loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}
		state.count += 9
		time.Sleep(time.Millisecond)
	}

	state.count = state.final
}

func TestBackground(t *testing.T) {
	proc1 := &ticker{count: initialCount1, final: finalCount1}
	proc2 := &ticker{count: initialCount2, final: finalCount2}

	p := background.Start(background.Processes{proc1, proc2}, t)
	time.Sleep(20 * time.Millisecond)
	p.Stop()

	assert.Equal(t, finalCount1, proc1.count, "first process did not finish")
	assert.Equal(t, finalCount2, proc2.count, "second process did not finish")
}

func TestStopNil(t *testing.T) {
	var p *background.T
	p.Stop()
}
