// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/luxfi/btcrpc"
)

// CallCmd invokes any method. Arguments that parse as JSON are sent as such,
// anything else is sent as a string.
var CallCmd = &cobra.Command{
	Use:   "call <method> [params...]",
	Short: "Call an arbitrary RPC method",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := btcrpc.Call[json.RawMessage](cmd.Context(), client, args[0], parseParams(args[1:])...)
		return printResult(cmd, res, err)
	},
}

func parseParams(args []string) []any {
	params := make([]any, 0, len(args))
	for _, arg := range args {
		if json.Valid([]byte(arg)) {
			params = append(params, json.RawMessage(arg))
			continue
		}
		params = append(params, arg)
	}
	return params
}
