// Copyright (c) 2026, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

//go:build !windows

package main

import (
	"os"

	"github.com/google/renameio/v2"
)

// writeFile replaces the file at path atomically, so that readers never see a
// partially written output.
func writeFile(path string, data []byte, perm os.FileMode) error {
	return renameio.WriteFile(path, data, perm)
}
