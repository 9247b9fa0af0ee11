// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"os"

	"github.com/luxfi/btcrpc/cmd/btcrpc/commands"
)

func main() {
	os.Exit(commands.Execute())
}
