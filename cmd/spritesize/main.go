// spritesize - resizes numbered sprites in place
//
// spritesize looks for 001.png through 050.png next to its own executable
// and resizes each one it finds to 128x128 pixels with a Lanczos filter.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/spritesize/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
