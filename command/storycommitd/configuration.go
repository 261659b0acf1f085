// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/storycommitd/account"
	"github.com/bitmark-inc/storycommitd/chain"
	"github.com/bitmark-inc/storycommitd/configuration"
	"github.com/bitmark-inc/storycommitd/ledger"
	"github.com/bitmark-inc/storycommitd/rpc/listeners"
	"github.com/bitmark-inc/storycommitd/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultProgramId         = "2HV1ywovUQmKbVkadpBPpb9fSAE4sYfhpPxCUFg26FCp"
	defaultMetadataProgramId = "metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s"

	defaultLevelDBDirectory = "data"
	defaultLiveDatabase     = chain.Live + ".leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "storycommitd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients   = 10
	defaultRPCBandwidth = 25000000

	defaultMonitorInterval = 60 // seconds
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

var defaultLogLevels = LoglevelMap{
	logger.DefaultTag: "critical",
}

// DatabaseType - location of the LevelDB files
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// ProgramType - story commit program settings
type ProgramType struct {
	ProgramId         string      `gluamapper:"program_id" json:"program_id"`
	MetadataProgramId string      `gluamapper:"metadata_program_id" json:"metadata_program_id"`
	VerifyCreator     bool        `gluamapper:"verify_creator" json:"verify_creator"`
	Rent              ledger.Rent `gluamapper:"rent" json:"rent"`
}

// Configuration - the daemon configuration file
type Configuration struct {
	DataDirectory   string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile         string       `gluamapper:"pidfile" json:"pidfile"`
	Chain           string       `gluamapper:"chain" json:"chain"`
	Database        DatabaseType `gluamapper:"database" json:"database"`
	MonitorInterval int          `gluamapper:"monitor_interval" json:"monitor_interval"`

	Program   ProgramType                `gluamapper:"program" json:"program"`
	ClientRPC listeners.RPCConfiguration `gluamapper:"client_rpc" json:"client_rpc"`
	Logging   logger.Configuration       `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {
	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory:   defaultDataDirectory,
		PidFile:         "", // no PidFile by default
		Chain:           chain.Live,
		MonitorInterval: defaultMonitorInterval,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultLiveDatabase,
		},

		Program: ProgramType{
			ProgramId:         defaultProgramId,
			MetadataProgramId: defaultMetadataProgramId,
			Rent:              ledger.DefaultRent,
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Bandwidth:          defaultRPCBandwidth,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	// switch the default database to match the chain; abort if the
	// chain name is not recognised
	name, ok := chain.Canonical(options.Chain)
	if !ok {
		return nil, fmt.Errorf("chain: %q is not supported", options.Chain)
	}
	options.Chain = name

	if options.Database.Name == defaultLiveDatabase {
		options.Database.Name = chain.DatabaseName(options.Chain)
	}

	if _, err := account.AddressFromBase58(options.Program.ProgramId); nil != err {
		return nil, fmt.Errorf("program id: %q  error: %s", options.Program.ProgramId, err)
	}
	if _, err := account.AddressFromBase58(options.Program.MetadataProgramId); nil != err {
		return nil, fmt.Errorf("metadata program id: %q  error: %s", options.Program.MetadataProgramId, err)
	}
	if 0 == options.Program.Rent.PerByteYear || 0 == options.Program.Rent.ExemptionYears {
		return nil, fmt.Errorf("rent: %+v must not be zero", options.Program.Rent)
	}
	if options.MonitorInterval <= 0 {
		return nil, fmt.Errorf("monitor interval: %d must be positive", options.MonitorInterval)
	}

	// ensure absolute data directory
	switch options.DataDirectory {
	case "", "~":
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	case ".":
		options.DataDirectory = dataDirectory // same directory as the configuration file
	default:
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if !util.EnsureFileExists(options.DataDirectory) {
		return nil, fmt.Errorf("path: %q does not exist", options.DataDirectory)
	}

	// optional absolute paths i.e. blank or an absolute path
	if "" != options.PidFile {
		options.PidFile = util.EnsureAbsolute(options.DataDirectory, options.PidFile)
	}

	// fail if any of these are not simple file names then add the
	// corresponding directory prefix
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
		default:
			return nil, fmt.Errorf("files: %q is not plain name", *f[0])
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := util.EnsureDirectory(*d); nil != err {
			return nil, err
		}
	}
	options.Database.Name = util.EnsureAbsolute(options.Database.Directory, options.Database.Name)

	return options, nil
}
