// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/storycommitd/account"
	"github.com/bitmark-inc/storycommitd/record"
	"github.com/bitmark-inc/storycommitd/rpc/certificate"
	"github.com/bitmark-inc/storycommitd/store"
	"github.com/bitmark-inc/storycommitd/storycommit"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"

	defaultListCount = 20
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {
	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := makeSelfSignedCertificate("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "start", "run":
		return false // continue processing

	case "config-test", "cfg", "fingerprint", "fp":
		return false // defer processing until configuration is read

	case "show-bank", "bank", "show-commit", "commit", "list-commits", "list":
		return false // defer processing until database is loaded

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] [--memory-stats] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)    - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]         - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  fingerprint                (fp)     - SHA3-256 fingerprint of the RPC certificate\n")
		fmt.Printf("\n")

		fmt.Printf("  show-bank                  (bank)   - display the bank record and balance\n")
		fmt.Printf("\n")

		fmt.Printf("  show-commit MINT           (commit) - display the commit record of a mint\n")
		fmt.Printf("\n")

		fmt.Printf("  list-commits [START [N]]   (list)   - display N commit records from address START\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {
	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		printJSON(options)

	case "fingerprint", "fp":
		rpc := options.ClientRPC
		keyPair, err := tls.X509KeyPair([]byte(rpc.Certificate), []byte(rpc.PrivateKey))
		if nil != err {
			exitwithstatus.Message("error: cannot decode certificate  error: %s", err)
		}
		fmt.Printf("SHA3-256 fingerprint: %x\n", certificate.Fingerprint(keyPair.Certificate[0]))

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the storage pools and program are available so these commands can
// read the committed records
func processDataCommand(log *logger.L, arguments []string, program *storycommit.Program) bool {
	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "start", "run":
		return false // continue processing

	case "show-bank", "bank":
		state, err := program.Bank()
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}
		printJSON(state)

	case "show-commit", "commit":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing mint argument")
		}
		mint, err := account.AddressFromBase58(arguments[0])
		if nil != err {
			exitwithstatus.Message("error in mint: %q  error: %s", arguments[0], err)
		}
		state, err := program.GetCommit(mint)
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}
		printJSON(state)

	case "list-commits", "list":
		start := account.Address{}
		if len(arguments) > 0 && "" != arguments[0] && "-" != arguments[0] {
			a, err := account.AddressFromBase58(arguments[0])
			if nil != err {
				exitwithstatus.Message("error in start: %q  error: %s", arguments[0], err)
			}
			start = a
		}

		count := defaultListCount
		if len(arguments) > 1 {
			n, err := strconv.Atoi(arguments[1])
			if nil != err || n <= 0 || n > store.MaximumListCount {
				exitwithstatus.Message("error: count: %q must be 1..%d", arguments[1], store.MaximumListCount)
			}
			count = n
		}

		entries, next, err := program.ListCommits(start, count)
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}
		for _, e := range entries {
			commit := e.Record.(*record.Commit)
			fmt.Printf("%s  bump: %3d  traits: %s\n", e.Address, commit.Bump, commit.Traits)
		}
		if nil != next {
			fmt.Printf("next: %s\n", next)
		}
		log.Debugf("listed: %d commits from: %s", len(entries), start)

	default:
		exitwithstatus.Message("error: no such command: %s", command)
	}

	// indicate processing complete and perform normal exit from main
	return true
}

func getFilenameWithDirectory(arguments []string, name string) string {
	directory := "."
	if len(arguments) >= 1 {
		directory = arguments[0]
	}
	return filepath.Join(directory, name)
}

func printJSON(item interface{}) {
	b, err := json.Marshal(item)
	if nil != err {
		exitwithstatus.Message("error: %s", err)
	}
	var out bytes.Buffer
	_ = json.Indent(&out, b, "", "  ")
	_, _ = out.WriteTo(os.Stdout)
	_, _ = os.Stdout.WriteString("\n")
}
