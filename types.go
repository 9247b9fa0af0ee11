// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package btcrpc

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Address is an encoded Bitcoin address.
type Address string

// BlockHash is a hex encoded block hash in the node's display order.
type BlockHash string

// TransactionID is a hex encoded transaction id in the node's display order.
type TransactionID string

// SerializedRawTransaction is a hex encoded serialized transaction.
type SerializedRawTransaction string

// PrivateKey is a private key in wallet import format.
type PrivateKey string

// Script is a hex encoded script.
type Script string

type BlockHeight uint32

// Block is a block as returned by getblock. T is TransactionID for
// verbosity 1 and DecodedRawTransaction for verbosity 2.
type Block[T any] struct {
	Hash              BlockHash  `json:"hash"`
	Confirmations     int64      `json:"confirmations"`
	Size              uint32     `json:"size"`
	StrippedSize      uint32     `json:"strippedsize"`
	Weight            uint32     `json:"weight"`
	Height            uint32     `json:"height"`
	Version           int32      `json:"version"`
	VersionHex        string     `json:"versionHex"`
	MerkleRoot        string     `json:"merkleroot"`
	Tx                []T        `json:"tx"`
	Time              int64      `json:"time"`
	MedianTime        int64      `json:"mediantime"`
	Nonce             uint32     `json:"nonce"`
	Bits              string     `json:"bits"`
	Difficulty        float64    `json:"difficulty"`
	ChainWork         string     `json:"chainwork"`
	NTx               uint32     `json:"nTx"`
	PreviousBlockHash *BlockHash `json:"previousblockhash,omitempty"`
	NextBlockHash     *BlockHash `json:"nextblockhash,omitempty"`
}

type BlockchainInfo struct {
	Chain                string    `json:"chain"`
	Blocks               uint32    `json:"blocks"`
	Headers              uint32    `json:"headers"`
	BestBlockHash        BlockHash `json:"bestblockhash"`
	Difficulty           float64   `json:"difficulty"`
	MedianTime           int64     `json:"mediantime"`
	VerificationProgress float64   `json:"verificationprogress"`
	InitialBlockDownload bool      `json:"initialblockdownload"`
	ChainWork            string    `json:"chainwork"`
	SizeOnDisk           uint64    `json:"size_on_disk"`
	Pruned               bool      `json:"pruned"`
	// Warnings is a string on older nodes and a list of strings on newer ones.
	Warnings json.RawMessage `json:"warnings,omitempty"`
}

type ScriptSig struct {
	Asm string `json:"asm"`
	Hex Script `json:"hex"`
}

type ScriptPubKey struct {
	Asm     string  `json:"asm"`
	Desc    string  `json:"desc,omitempty"`
	Hex     Script  `json:"hex"`
	Type    string  `json:"type"`
	Address Address `json:"address,omitempty"`
	// Addresses and ReqSigs are only reported by nodes older than v22.
	Addresses []Address `json:"addresses,omitempty"`
	ReqSigs   int       `json:"reqSigs,omitempty"`
}

type TransactionInput struct {
	TxID        TransactionID `json:"txid,omitempty"`
	Vout        uint32        `json:"vout"`
	Coinbase    string        `json:"coinbase,omitempty"`
	ScriptSig   *ScriptSig    `json:"scriptSig,omitempty"`
	TxInWitness []string      `json:"txinwitness,omitempty"`
	Sequence    uint32        `json:"sequence"`
}

type TransactionOutput struct {
	Value        decimal.Decimal `json:"value"`
	N            uint32          `json:"n"`
	ScriptPubKey ScriptPubKey    `json:"scriptPubKey"`
}

// DecodedRawTransaction is the result of decoderawtransaction.
type DecodedRawTransaction struct {
	TxID     TransactionID       `json:"txid"`
	Hash     string              `json:"hash"`
	Version  int32               `json:"version"`
	Size     uint32              `json:"size"`
	VSize    uint32              `json:"vsize"`
	Weight   uint32              `json:"weight"`
	LockTime uint32              `json:"locktime"`
	Vin      []TransactionInput  `json:"vin"`
	Vout     []TransactionOutput `json:"vout"`
}

// VerboseRawTransaction is the result of getrawtransaction with verbose set.
type VerboseRawTransaction struct {
	DecodedRawTransaction
	Hex           SerializedRawTransaction `json:"hex"`
	BlockHash     BlockHash                `json:"blockhash,omitempty"`
	Confirmations uint32                   `json:"confirmations,omitempty"`
	Time          int64                    `json:"time,omitempty"`
	BlockTime     int64                    `json:"blocktime,omitempty"`
}

type SegWitScript struct {
	Asm        string  `json:"asm"`
	Hex        Script  `json:"hex"`
	Type       string  `json:"type"`
	Address    Address `json:"address,omitempty"`
	Desc       string  `json:"desc,omitempty"`
	P2SHSegWit Address `json:"p2sh-segwit,omitempty"`
}

type DecodedScript struct {
	Asm     string        `json:"asm"`
	Desc    string        `json:"desc,omitempty"`
	Type    string        `json:"type"`
	Address Address       `json:"address,omitempty"`
	P2SH    Address       `json:"p2sh,omitempty"`
	SegWit  *SegWitScript `json:"segwit,omitempty"`
}

type MultiSigAddress struct {
	Address      Address `json:"address"`
	RedeemScript Script  `json:"redeemScript"`
	Descriptor   string  `json:"descriptor,omitempty"`
}

// NewTransactionInput references an output spent by createrawtransaction.
type NewTransactionInput struct {
	TxID     TransactionID `json:"txid"`
	Vout     uint32        `json:"vout"`
	Sequence *uint32       `json:"sequence,omitempty"`
}

// NewTransactionOutput maps destination addresses to amounts.
type NewTransactionOutput map[Address]decimal.Decimal

// FundingOptions are the options of fundrawtransaction. Unset fields are
// left to the node's defaults.
type FundingOptions struct {
	ChangeAddress          Address          `json:"changeAddress,omitempty"`
	ChangePosition         *int             `json:"changePosition,omitempty"`
	ChangeType             string           `json:"change_type,omitempty"`
	IncludeWatching        *bool            `json:"includeWatching,omitempty"`
	LockUnspents           *bool            `json:"lockUnspents,omitempty"`
	FeeRate                *decimal.Decimal `json:"feeRate,omitempty"`
	SubtractFeeFromOutputs []int            `json:"subtractFeeFromOutputs,omitempty"`
	Replaceable            *bool            `json:"replaceable,omitempty"`
	ConfTarget             *int             `json:"conf_target,omitempty"`
	EstimateMode           string           `json:"estimate_mode,omitempty"`
}

type FundingResult struct {
	Hex       SerializedRawTransaction `json:"hex"`
	Fee       decimal.Decimal          `json:"fee"`
	ChangePos int                      `json:"changepos"`
}

type UnspentTransactionOutput struct {
	TxID          TransactionID   `json:"txid"`
	Vout          uint32          `json:"vout"`
	Address       Address         `json:"address,omitempty"`
	Label         string          `json:"label,omitempty"`
	ScriptPubKey  Script          `json:"scriptPubKey"`
	Amount        decimal.Decimal `json:"amount"`
	Confirmations uint32          `json:"confirmations"`
	RedeemScript  Script          `json:"redeemScript,omitempty"`
	WitnessScript Script          `json:"witnessScript,omitempty"`
	Spendable     bool            `json:"spendable"`
	Solvable      bool            `json:"solvable"`
	Desc          string          `json:"desc,omitempty"`
	Safe          bool            `json:"safe"`
}

// TxOutConfirmations is the minimum number of confirmations listunspent
// requires of an output.
type TxOutConfirmations struct {
	min uint32
}

// Unconfirmed includes outputs with zero confirmations.
var Unconfirmed = TxOutConfirmations{}

// AtLeast requires n confirmations.
func AtLeast(n uint32) TxOutConfirmations {
	return TxOutConfirmations{min: n}
}

func (c TxOutConfirmations) Min() uint32 {
	return c.min
}

// TransactionOutputDetail describes a previous output for
// signrawtransactionwithkey, needed when the node does not know it.
type TransactionOutputDetail struct {
	TxID          TransactionID    `json:"txid"`
	Vout          uint32           `json:"vout"`
	ScriptPubKey  Script           `json:"scriptPubKey"`
	RedeemScript  Script           `json:"redeemScript,omitempty"`
	WitnessScript Script           `json:"witnessScript,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
}

type SigHashType string

const (
	SigHashAll                SigHashType = "ALL"
	SigHashNone               SigHashType = "NONE"
	SigHashSingle             SigHashType = "SINGLE"
	SigHashAllAnyoneCanPay    SigHashType = "ALL|ANYONECANPAY"
	SigHashNoneAnyoneCanPay   SigHashType = "NONE|ANYONECANPAY"
	SigHashSingleAnyoneCanPay SigHashType = "SINGLE|ANYONECANPAY"
)

type SigningError struct {
	TxID      TransactionID `json:"txid"`
	Vout      uint32        `json:"vout"`
	ScriptSig Script        `json:"scriptSig"`
	Sequence  uint32        `json:"sequence"`
	Error     string        `json:"error"`
}

type SigningResult struct {
	Hex      SerializedRawTransaction `json:"hex"`
	Complete bool                     `json:"complete"`
	Errors   []SigningError           `json:"errors,omitempty"`
}

type AddressInfoResult struct {
	Address             Address  `json:"address"`
	ScriptPubKey        Script   `json:"scriptPubKey"`
	IsMine              bool     `json:"ismine"`
	IsWatchOnly         bool     `json:"iswatchonly"`
	Solvable            bool     `json:"solvable"`
	Desc                string   `json:"desc,omitempty"`
	IsScript            bool     `json:"isscript"`
	IsChange            bool     `json:"ischange"`
	IsWitness           bool     `json:"iswitness"`
	WitnessVersion      *int     `json:"witness_version,omitempty"`
	WitnessProgram      string   `json:"witness_program,omitempty"`
	PubKey              string   `json:"pubkey,omitempty"`
	IsCompressed        *bool    `json:"iscompressed,omitempty"`
	Timestamp           int64    `json:"timestamp,omitempty"`
	HDKeyPath           string   `json:"hdkeypath,omitempty"`
	HDSeedID            string   `json:"hdseedid,omitempty"`
	HDMasterFingerprint string   `json:"hdmasterfingerprint,omitempty"`
	Labels              []string `json:"labels"`
}

type AddressValidationResult struct {
	IsValid        bool    `json:"isvalid"`
	Address        Address `json:"address,omitempty"`
	ScriptPubKey   Script  `json:"scriptPubKey,omitempty"`
	IsScript       bool    `json:"isscript"`
	IsWitness      bool    `json:"iswitness"`
	WitnessVersion *int    `json:"witness_version,omitempty"`
	WitnessProgram string  `json:"witness_program,omitempty"`
	Error          string  `json:"error,omitempty"`
}
