// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/luxfi/btcrpc"
)

var GetBlockCountCmd = &cobra.Command{
	Use:   "getblockcount",
	Short: "Print the height of the most-work fully-validated chain",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := client.GetBlockCount(cmd.Context())
		return printResult(cmd, res, err)
	},
}

var GetBestBlockHashCmd = &cobra.Command{
	Use:   "getbestblockhash",
	Short: "Print the hash of the best block",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := client.GetBestBlockHash(cmd.Context())
		return printResult(cmd, res, err)
	},
}

var GetBlockHashCmd = &cobra.Command{
	Use:   "getblockhash <height>",
	Short: "Print the hash of the block at height",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		height, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid height %q: %w", args[0], err)
		}
		res, err := client.GetBlockHash(cmd.Context(), uint32(height))
		return printResult(cmd, res, err)
	},
}

var verboseBlock bool

var GetBlockCmd = &cobra.Command{
	Use:   "getblock <hash>",
	Short: "Print a block",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash := btcrpc.BlockHash(args[0])
		if verboseBlock {
			res, err := client.GetBlockVerbose(cmd.Context(), hash)
			return printResult(cmd, res, err)
		}
		res, err := client.GetBlock(cmd.Context(), hash)
		return printResult(cmd, res, err)
	},
}

var GetBlockchainInfoCmd = &cobra.Command{
	Use:   "getblockchaininfo",
	Short: "Print the state of the chain",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := client.GetBlockchainInfo(cmd.Context())
		return printResult(cmd, res, err)
	},
}

func init() {
	GetBlockCmd.Flags().BoolVarP(&verboseBlock, "verbose", "v", false, "decode every transaction of the block")
}
