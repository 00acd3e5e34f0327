package domain

import (
	"bytes"
	"crypto/sha256"
	"regexp"

	"github.com/mr-tron/base58"
	"github.com/shopspring/decimal"
)

// TransferContract is the TRON contract type for a native TRX transfer.
const TransferContract = "TransferContract"

// One major unit (TRX) is 10^6 minor units (sun).
const sunExponent = -6

var txHashPattern = regexp.MustCompile(`^[A-Za-z0-9]{64}$`)

// ValidTxHash reports whether hash is shaped like a chain transaction id.
func ValidTxHash(hash string) bool {
	return txHashPattern.MatchString(hash)
}

// chainAddressPrefix is the TRON address version byte.
const chainAddressPrefix = 0x41

// ValidChainAddress reports whether addr is a base58check TRON address:
// 0x41, a 20-byte account id and a 4-byte double-SHA256 checksum.
func ValidChainAddress(addr string) bool {
	raw, err := base58.Decode(addr)
	if err != nil || len(raw) != 25 || raw[0] != chainAddressPrefix {
		return false
	}
	first := sha256.Sum256(raw[:21])
	second := sha256.Sum256(first[:])
	return bytes.Equal(second[:4], raw[21:])
}

// ChainContract is one contract carried by a chain transaction.
type ChainContract struct {
	Type      string
	ToAddress string
	Amount    int64 // minor units
}

// MajorAmount converts the minor-unit amount to major units exactly.
func (c ChainContract) MajorAmount() decimal.Decimal {
	return decimal.New(c.Amount, sunExponent)
}

// ChainTx is the subset of a fetched chain transaction settlement needs.
type ChainTx struct {
	Hash      string
	Success   bool
	Contracts []ChainContract
}

// Transfer returns the first contract when it is a TransferContract.
func (t *ChainTx) Transfer() (ChainContract, bool) {
	if len(t.Contracts) == 0 || t.Contracts[0].Type != TransferContract {
		return ChainContract{}, false
	}
	return t.Contracts[0], true
}
