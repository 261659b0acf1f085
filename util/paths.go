// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package util - small file system helpers shared by the commands
package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureAbsolute - join a relative path onto directory
//
// absolute paths are only cleaned; a leading "~/" expands to the home
// directory
func EnsureAbsolute(directory string, filePath string) string {
	if strings.HasPrefix(filePath, "~/") {
		if home, err := os.UserHomeDir(); nil == err {
			filePath = filepath.Join(home, filePath[2:])
		}
	}
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - true if name can be stat'ed
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

// EnsureDirectory - create a directory tree if missing
//
// an existing non-directory at path is an error
func EnsureDirectory(path string) error {
	info, err := os.Stat(path)
	if nil == err {
		if !info.IsDir() {
			return fmt.Errorf("path: %q is not a directory", path)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}
	return os.MkdirAll(path, 0700)
}
