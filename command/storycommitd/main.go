// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/storycommitd/account"
	"github.com/bitmark-inc/storycommitd/background"
	"github.com/bitmark-inc/storycommitd/ledger"
	"github.com/bitmark-inc/storycommitd/mode"
	"github.com/bitmark-inc/storycommitd/registry"
	"github.com/bitmark-inc/storycommitd/rpc"
	"github.com/bitmark-inc/storycommitd/rpc/server"
	"github.com/bitmark-inc/storycommitd/storage"
	"github.com/bitmark-inc/storycommitd/storycommit"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "memory-stats", HasArg: getoptions.NO_ARGUMENT, Short: 'm'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
	}
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if nil != err {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// set the initial system mode - before any background tasks are started
	err = mode.Initialise(theConfiguration.Chain)
	if nil != err {
		log.Criticalf("mode initialise error: %s", err)
		exitwithstatus.Message("mode initialise error: %s", err)
	}
	defer mode.Finalise()

	log.Infof("test mode: %v", mode.IsTesting())
	log.Infof("database: %q", theConfiguration.Database.Name)
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC.Listen)

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	services, err := makeServices(theConfiguration)
	if nil != err {
		log.Criticalf("program initialise error: %s", err)
		exitwithstatus.Message("program initialise error: %s", err)
	}

	// these commands are allowed to access the internal database
	if len(arguments) > 0 && processDataCommand(log, arguments, services.Program) {
		return
	}

	// start up the rpc background processes
	err = rpc.Initialise(&theConfiguration.ClientRPC, version, services)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	processes := background.Start(background.Processes{
		&monitor{
			log:         logger.New("monitor"),
			program:     services.Program,
			interval:    time.Duration(theConfiguration.MonitorInterval) * time.Second,
			memoryStats: len(options["memory-stats"]) > 0,
		},
	}, nil)
	defer processes.Stop()

	mode.Set(mode.Serving)

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
	mode.Set(mode.Stopped)
}

// build the ledger, registries and program over the storage pools
func makeServices(theConfiguration *Configuration) (server.Services, error) {
	settings := theConfiguration.Program

	programId, err := account.AddressFromBase58(settings.ProgramId)
	if nil != err {
		return server.Services{}, err
	}
	metadataProgramId, err := account.AddressFromBase58(settings.MetadataProgramId)
	if nil != err {
		return server.Services{}, err
	}

	l := ledger.New(logger.New("ledger"), storage.Pool.Balances, settings.Rent)
	r := registry.New(logger.New("registry"), storage.Pool.Holdings, storage.Pool.Metadata, metadataProgramId)

	p, err := storycommit.New(
		logger.New("storycommit"),
		storage.Pool.Records,
		storage.NewDBTransaction,
		storycommit.Options{
			ProgramId:         programId,
			MetadataProgramId: metadataProgramId,
			VerifyCreator:     settings.VerifyCreator,
		},
		storycommit.Collaborators{
			Transfer:  l,
			Balances:  l,
			Allocator: l,
			Holdings:  r,
			Metadata:  r,
		},
	)
	if nil != err {
		return server.Services{}, err
	}

	return server.Services{
		Program:  p,
		Ledger:   l,
		Registry: r,
	}, nil
}
