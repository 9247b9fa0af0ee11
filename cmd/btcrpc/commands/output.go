// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luxfi/btcrpc"
)

// printResult writes the value as indented JSON, or returns the failure.
// Plain strings are printed without quotes, like bitcoin-cli does.
func printResult[T any](cmd *cobra.Command, res btcrpc.Result[T], err error) error {
	value, err := btcrpc.Flatten(res, err)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	var s string
	if json.Unmarshal(out, &s) == nil {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
