// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package btcrpc

import (
	"context"

	"github.com/shopspring/decimal"
)

// API is the set of node methods exposed by Client. Each method only chooses
// the method name and parameter order; dispatch, retries and error
// classification happen in Call.
type API interface {
	AddMultiSigAddress(ctx context.Context, nRequired uint32, participants []Address) (Result[MultiSigAddress], error)
	CreateRawTransaction(ctx context.Context, inputs []NewTransactionInput, outputs NewTransactionOutput) (Result[SerializedRawTransaction], error)
	DecodeRawTransaction(ctx context.Context, tx SerializedRawTransaction) (Result[DecodedRawTransaction], error)
	DecodeScript(ctx context.Context, script Script) (Result[DecodedScript], error)
	DumpPrivKey(ctx context.Context, address Address) (Result[PrivateKey], error)
	FundRawTransaction(ctx context.Context, tx SerializedRawTransaction, options *FundingOptions) (Result[FundingResult], error)
	Generate(ctx context.Context, nBlocks uint32) (Result[[]BlockHash], error)
	GenerateToAddress(ctx context.Context, nBlocks uint32, address Address) (Result[[]BlockHash], error)
	GetAddressInfo(ctx context.Context, address Address) (Result[AddressInfoResult], error)
	GetBalance(ctx context.Context) (Result[decimal.Decimal], error)
	GetBestBlockHash(ctx context.Context) (Result[BlockHash], error)
	GetBlock(ctx context.Context, hash BlockHash) (Result[Block[TransactionID]], error)
	GetBlockVerbose(ctx context.Context, hash BlockHash) (Result[Block[DecodedRawTransaction]], error)
	GetBlockchainInfo(ctx context.Context) (Result[BlockchainInfo], error)
	GetBlockCount(ctx context.Context) (Result[BlockHeight], error)
	GetBlockHash(ctx context.Context, height uint32) (Result[BlockHash], error)
	GetNewAddress(ctx context.Context) (Result[Address], error)
	GetRawTransactionSerialized(ctx context.Context, tx TransactionID) (Result[SerializedRawTransaction], error)
	GetRawTransactionVerbose(ctx context.Context, tx TransactionID) (Result[VerboseRawTransaction], error)
	ListUnspent(ctx context.Context, minConf TxOutConfirmations, maxConf *uint32, addresses []Address) (Result[[]UnspentTransactionOutput], error)
	SendRawTransaction(ctx context.Context, tx SerializedRawTransaction) (Result[TransactionID], error)
	SendToAddress(ctx context.Context, address Address, amount decimal.Decimal) (Result[TransactionID], error)
	SignRawTransactionWithKey(ctx context.Context, tx SerializedRawTransaction, keys []PrivateKey, prevTxs []TransactionOutputDetail, sigHash SigHashType) (Result[SigningResult], error)
	ValidateAddress(ctx context.Context, address Address) (Result[AddressValidationResult], error)
}

var _ API = (*Client)(nil)

// Methods are ordered as in https://bitcoin.org/en/developer-reference#rpcs

func (c *Client) AddMultiSigAddress(ctx context.Context, nRequired uint32, participants []Address) (Result[MultiSigAddress], error) {
	return Call[MultiSigAddress](ctx, c, "addmultisigaddress", nRequired, participants)
}

func (c *Client) CreateRawTransaction(ctx context.Context, inputs []NewTransactionInput, outputs NewTransactionOutput) (Result[SerializedRawTransaction], error) {
	return Call[SerializedRawTransaction](ctx, c, "createrawtransaction", inputs, outputs)
}

func (c *Client) DecodeRawTransaction(ctx context.Context, tx SerializedRawTransaction) (Result[DecodedRawTransaction], error) {
	return Call[DecodedRawTransaction](ctx, c, "decoderawtransaction", tx)
}

func (c *Client) DecodeScript(ctx context.Context, script Script) (Result[DecodedScript], error) {
	return Call[DecodedScript](ctx, c, "decodescript", script)
}

func (c *Client) DumpPrivKey(ctx context.Context, address Address) (Result[PrivateKey], error) {
	return Call[PrivateKey](ctx, c, "dumpprivkey", address)
}

// FundRawTransaction adds inputs and change to tx. A nil options is sent as
// null and leaves every option to the node.
func (c *Client) FundRawTransaction(ctx context.Context, tx SerializedRawTransaction, options *FundingOptions) (Result[FundingResult], error) {
	return Call[FundingResult](ctx, c, "fundrawtransaction", tx, options)
}

// Generate mines blocks to the wallet. Only nodes older than v0.19 support it;
// use GenerateToAddress otherwise.
func (c *Client) Generate(ctx context.Context, nBlocks uint32) (Result[[]BlockHash], error) {
	return Call[[]BlockHash](ctx, c, "generate", nBlocks)
}

func (c *Client) GenerateToAddress(ctx context.Context, nBlocks uint32, address Address) (Result[[]BlockHash], error) {
	return Call[[]BlockHash](ctx, c, "generatetoaddress", nBlocks, address)
}

func (c *Client) GetAddressInfo(ctx context.Context, address Address) (Result[AddressInfoResult], error) {
	return Call[AddressInfoResult](ctx, c, "getaddressinfo", address)
}

func (c *Client) GetBalance(ctx context.Context) (Result[decimal.Decimal], error) {
	return Call[decimal.Decimal](ctx, c, "getbalance")
}

func (c *Client) GetBestBlockHash(ctx context.Context) (Result[BlockHash], error) {
	return Call[BlockHash](ctx, c, "getbestblockhash")
}

// GetBlock returns the block with transaction ids only.
func (c *Client) GetBlock(ctx context.Context, hash BlockHash) (Result[Block[TransactionID]], error) {
	return Call[Block[TransactionID]](ctx, c, "getblock", hash)
}

// GetBlockVerbose returns the block with every transaction decoded.
func (c *Client) GetBlockVerbose(ctx context.Context, hash BlockHash) (Result[Block[DecodedRawTransaction]], error) {
	return Call[Block[DecodedRawTransaction]](ctx, c, "getblock", hash, 2)
}

func (c *Client) GetBlockchainInfo(ctx context.Context) (Result[BlockchainInfo], error) {
	return Call[BlockchainInfo](ctx, c, "getblockchaininfo")
}

func (c *Client) GetBlockCount(ctx context.Context) (Result[BlockHeight], error) {
	return Call[BlockHeight](ctx, c, "getblockcount")
}

func (c *Client) GetBlockHash(ctx context.Context, height uint32) (Result[BlockHash], error) {
	return Call[BlockHash](ctx, c, "getblockhash", height)
}

// GetNewAddress returns a new bech32 address without a label.
func (c *Client) GetNewAddress(ctx context.Context) (Result[Address], error) {
	return Call[Address](ctx, c, "getnewaddress", "", "bech32")
}

func (c *Client) GetRawTransactionSerialized(ctx context.Context, tx TransactionID) (Result[SerializedRawTransaction], error) {
	return getRawTransaction[SerializedRawTransaction](ctx, c, tx, false)
}

func (c *Client) GetRawTransactionVerbose(ctx context.Context, tx TransactionID) (Result[VerboseRawTransaction], error) {
	return getRawTransaction[VerboseRawTransaction](ctx, c, tx, true)
}

func getRawTransaction[R any](ctx context.Context, c *Client, tx TransactionID, verbose bool) (Result[R], error) {
	return Call[R](ctx, c, "getrawtransaction", tx, verbose)
}

// ListUnspent returns wallet outputs with at least minConf confirmations.
// A nil maxConf or addresses is sent as null.
func (c *Client) ListUnspent(ctx context.Context, minConf TxOutConfirmations, maxConf *uint32, addresses []Address) (Result[[]UnspentTransactionOutput], error) {
	return Call[[]UnspentTransactionOutput](ctx, c, "listunspent", minConf.Min(), maxConf, addresses)
}

func (c *Client) SendRawTransaction(ctx context.Context, tx SerializedRawTransaction) (Result[TransactionID], error) {
	return Call[TransactionID](ctx, c, "sendrawtransaction", tx)
}

func (c *Client) SendToAddress(ctx context.Context, address Address, amount decimal.Decimal) (Result[TransactionID], error) {
	return Call[TransactionID](ctx, c, "sendtoaddress", address, amount)
}

// SignRawTransactionWithKey signs tx with keys. A nil keys or prevTxs and an
// empty sigHash are sent as null.
func (c *Client) SignRawTransactionWithKey(ctx context.Context, tx SerializedRawTransaction, keys []PrivateKey, prevTxs []TransactionOutputDetail, sigHash SigHashType) (Result[SigningResult], error) {
	var sigHashParam any
	if sigHash != "" {
		sigHashParam = sigHash
	}
	return Call[SigningResult](ctx, c, "signrawtransactionwithkey", tx, keys, prevTxs, sigHashParam)
}

func (c *Client) ValidateAddress(ctx context.Context, address Address) (Result[AddressValidationResult], error) {
	return Call[AddressValidationResult](ctx, c, "validateaddress", address)
}
