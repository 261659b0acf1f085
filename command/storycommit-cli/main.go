// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/storycommitd/chain"
)

type metadata struct {
	connect   string
	programId string
	seed      string
	testnet   bool
	verbose   bool
	e         io.Writer
	w         io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const (
	defaultConnect   = "127.0.0.1:2130"
	defaultProgramId = "2HV1ywovUQmKbVkadpBPpb9fSAE4sYfhpPxCUFg26FCp"
)

func main() {
	app := cli.NewApp()
	app.Name = "storycommit-cli"
	app.Usage = "client for the storycommitd trait commit service"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: chain.Local,
			Usage: " select network `NETWORK` [live|testing|local]",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: defaultConnect,
			Usage: " storycommitd RPC `HOST:PORT`",
		},
		cli.StringFlag{
			Name:  "program, P",
			Value: defaultProgramId,
			Usage: " program id for offline address derivation `ADDRESS`",
		},
		cli.StringFlag{
			Name:   "seed, s",
			Value:  "",
			Usage:  " signing identity `SEED`",
			EnvVar: "STORYCOMMIT_SEED",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a new seed and key pair",
			ArgsUsage: "\n   (* = required)",
			Action:    runGenerate,
		},
		{
			Name:      "bank-address",
			Usage:     "derive the bank address of the program",
			ArgsUsage: "\n   (* = required)",
			Action:    runBankAddress,
		},
		{
			Name:      "commit-address",
			Usage:     "derive the commit record address of a mint",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "mint, m",
					Value: "",
					Usage: "*collectible mint `ADDRESS`",
				},
			},
			Action: runCommitAddress,
		},
		{
			Name:      "info",
			Usage:     "display storycommitd status",
			ArgsUsage: "\n   (* = required)",
			Action:    runInfo,
		},
		{
			Name:      "initialise-bank",
			Usage:     "create the program bank, paid by the seed identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "creator, C",
					Value: "",
					Usage: " trusted first creator `ADDRESS`",
				},
			},
			Action: runInitialiseBank,
		},
		{
			Name:      "initialise",
			Usage:     "open the commit record of a held collectible",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "holding, H",
					Value: "",
					Usage: "*holding account `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "mint, m",
					Value: "",
					Usage: "*collectible mint `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "metadata, M",
					Value: "",
					Usage: " metadata entry `ADDRESS`",
				},
				cli.StringSliceFlag{
					Name:  "trait, t",
					Usage: " trait value `NAME=VALUE` (repeatable)",
				},
			},
			Action: runInitialise,
		},
		{
			Name:      "commit",
			Usage:     "overwrite the traits of a held collectible",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "holding, H",
					Value: "",
					Usage: "*holding account `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "mint, m",
					Value: "",
					Usage: "*collectible mint `ADDRESS`",
				},
				cli.StringSliceFlag{
					Name:  "trait, t",
					Usage: " trait value `NAME=VALUE` (repeatable)",
				},
				cli.Uint64Flag{
					Name:  "sequence",
					Value: 0,
					Usage: " commit `NUMBER`, 0 uses the one after the stored record",
				},
			},
			Action: runCommit,
		},
		{
			Name:      "bank",
			Usage:     "display the bank record and balance",
			ArgsUsage: "\n   (* = required)",
			Action:    runBank,
		},
		{
			Name:      "show",
			Usage:     "display the commit record of a mint",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "mint, m",
					Value: "",
					Usage: "*collectible mint `ADDRESS`",
				},
			},
			Action: runShow,
		},
		{
			Name:      "list",
			Usage:     "list commit records in address order",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "start, S",
					Value: "",
					Usage: " first record `ADDRESS`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum records to return `COUNT`",
				},
			},
			Action: runList,
		},
		{
			Name:      "balance",
			Usage:     "display the balance of an address",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: " address to query `ADDRESS` [default seed identity]",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "airdrop",
			Usage:     "create value at an address (testing and local only)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "to, T",
					Value: "",
					Usage: " receiving `ADDRESS` [default seed identity]",
				},
				cli.Uint64Flag{
					Name:  "amount, A",
					Value: 0,
					Usage: "*value to create `AMOUNT`",
				},
			},
			Action: runAirdrop,
		},
		{
			Name:      "put-holding",
			Usage:     "create a holding account (testing and local only)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*holding account `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " holding owner `ADDRESS` [default seed identity]",
				},
				cli.StringFlag{
					Name:  "mint, m",
					Value: "",
					Usage: "*collectible mint `ADDRESS`",
				},
				cli.Uint64Flag{
					Name:  "amount, A",
					Value: 1,
					Usage: " units held `AMOUNT`",
				},
			},
			Action: runPutHolding,
		},
		{
			Name:      "put-metadata",
			Usage:     "create a metadata entry (testing and local only)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "mint, m",
					Value: "",
					Usage: "*collectible mint `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "authority, u",
					Value: "",
					Usage: " update authority `ADDRESS` [default seed identity]",
				},
				cli.StringSliceFlag{
					Name:  "creator, C",
					Usage: " creator `ADDRESS:SHARE[:verified]` (repeatable)",
				},
			},
			Action: runPutMetadata,
		},
		{
			Name:      "version",
			Usage:     "display storycommit-cli version",
			ArgsUsage: "\n   (* = required)",
			Action:    runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {
		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		network, ok := chain.Canonical(c.GlobalString("network"))
		if !ok {
			return fmt.Errorf("network: %q can only be live/testing/local", c.GlobalString("network"))
		}

		if verbose {
			fmt.Fprintf(e, "network: %s\n", network)
			fmt.Fprintf(e, "connect: %s\n", c.GlobalString("connect"))
		}

		c.App.Metadata["config"] = &metadata{
			connect:   c.GlobalString("connect"),
			programId: c.GlobalString("program"),
			seed:      c.GlobalString("seed"),
			testnet:   network != chain.Live,
			verbose:   verbose,
			e:         e,
			w:         w,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
