// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - start and stop long running daemon tasks
package background

type stopper struct {
	shutdown chan struct{}
	finished chan struct{}
}

// T - handle to a running set of processes
type T struct {
	s []stopper
}

// Process - a task that runs until shutdown is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// Start - run each process in its own goroutine
func Start(processes Processes, args interface{}) *T {
	register := &T{
		s: make([]stopper, len(processes)),
	}

	for i, p := range processes {
		shutdown := make(chan struct{})
		finished := make(chan struct{})
		register.s[i].shutdown = shutdown
		register.s[i].finished = finished

		go func(p Process) {
			p.Run(args, shutdown)
			close(finished)
		}(p)
	}
	return register
}

// Stop - signal every process then wait for all to return
func (t *T) Stop() {
	if nil == t {
		return
	}
	for _, s := range t.s {
		close(s.shutdown)
	}
	for _, s := range t.s {
		<-s.finished
	}
}
