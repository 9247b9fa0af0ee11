// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"github.com/spf13/cobra"

	"github.com/luxfi/btcrpc"
)

var GetBalanceCmd = &cobra.Command{
	Use:   "getbalance",
	Short: "Print the wallet balance",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := client.GetBalance(cmd.Context())
		return printResult(cmd, res, err)
	},
}

var GetNewAddressCmd = &cobra.Command{
	Use:   "getnewaddress",
	Short: "Print a new bech32 address of the wallet",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := client.GetNewAddress(cmd.Context())
		return printResult(cmd, res, err)
	},
}

var ValidateAddressCmd = &cobra.Command{
	Use:   "validateaddress <address>",
	Short: "Print information about an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := client.ValidateAddress(cmd.Context(), btcrpc.Address(args[0]))
		return printResult(cmd, res, err)
	},
}

var SendRawTransactionCmd = &cobra.Command{
	Use:   "sendrawtransaction <hex>",
	Short: "Broadcast a serialized transaction and print its id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := client.SendRawTransaction(cmd.Context(), btcrpc.SerializedRawTransaction(args[0]))
		return printResult(cmd, res, err)
	},
}
