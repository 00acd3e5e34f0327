package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestWallet_Balance(t *testing.T) {
	w := &Wallet{
		BalanceFiat:  decimal.NewFromInt(100000),
		BalanceChain: decimal.RequireFromString("12.5"),
	}

	assert.True(t, w.Balance(CurrencyFiat).Equal(decimal.NewFromInt(100000)))
	assert.True(t, w.Balance(CurrencyChain).Equal(decimal.RequireFromString("12.5")))
}

func TestWallet_HasChainAddress(t *testing.T) {
	empty := ""
	addr := "TXYZ"

	assert.False(t, (&Wallet{}).HasChainAddress())
	assert.False(t, (&Wallet{ChainAddress: &empty}).HasChainAddress())
	assert.True(t, (&Wallet{ChainAddress: &addr}).HasChainAddress())
}

func TestTransaction_IsTerminal(t *testing.T) {
	tests := []struct {
		name   string
		status TransactionStatus
		want   bool
	}{
		{"pending", TransactionStatusPending, false},
		{"completed", TransactionStatusCompleted, true},
		{"failed", TransactionStatusFailed, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := &Transaction{Status: tt.status}
			assert.Equal(t, tt.want, tx.IsTerminal())
		})
	}
}

func TestTransaction_IsCartPayment(t *testing.T) {
	cartID := uuid.New()

	assert.True(t, (&Transaction{Kind: TransactionKindPayment, CartID: &cartID}).IsCartPayment())
	assert.False(t, (&Transaction{Kind: TransactionKindDeposit, CartID: &cartID}).IsCartPayment())
	assert.False(t, (&Transaction{Kind: TransactionKindPayment}).IsCartPayment())
}

func TestPaymentMethod(t *testing.T) {
	tests := []struct {
		method     PaymentMethod
		valid      bool
		currency   Currency
		usesWallet bool
	}{
		{PayMethodWalletFiat, true, CurrencyFiat, true},
		{PayMethodWalletChain, true, CurrencyChain, true},
		{PayMethodDirectFiat, true, CurrencyFiat, false},
		{PayMethodDirectChain, true, CurrencyChain, false},
		{PaymentMethod("cash"), false, CurrencyFiat, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.method), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.method.Valid())
			assert.Equal(t, tt.currency, tt.method.Currency())
			assert.Equal(t, tt.usesWallet, tt.method.UsesWallet())
		})
	}
}

func TestValidTxHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
		want bool
	}{
		{"64 hex chars", strings.Repeat("a1", 32), true},
		{"64 mixed alnum", strings.Repeat("Zz", 32), true},
		{"63 chars", strings.Repeat("a", 63), false},
		{"65 chars", strings.Repeat("a", 65), false},
		{"non alnum", strings.Repeat("a", 63) + "-", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidTxHash(tt.hash))
		})
	}
}

func TestValidChainAddress(t *testing.T) {
	tests := []struct {
		addr string
		want bool
	}{
		{"TMVQGm1qAQYVdetCeGRRkTWYYrLXuHK2HC", true},
		{"TDvSsdrNM5eeXNL3czpa6AxLDHZA9nwe9K", true},
		{"TMVQGm1qAQYVdetCeGRRkTWYYrLXuHK2HD", false}, // checksum
		{"0OIl", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidChainAddress(tt.addr), tt.addr)
	}
}

func TestChainContract_MajorAmount(t *testing.T) {
	c := ChainContract{Amount: 12_500_000}
	assert.Equal(t, "12.5", c.MajorAmount().String())

	c = ChainContract{Amount: 1}
	assert.Equal(t, "0.000001", c.MajorAmount().String())
}

func TestChainTx_Transfer(t *testing.T) {
	tx := &ChainTx{Contracts: []ChainContract{{Type: TransferContract, ToAddress: "T1", Amount: 5}}}
	c, ok := tx.Transfer()
	assert.True(t, ok)
	assert.Equal(t, "T1", c.ToAddress)

	_, ok = (&ChainTx{Contracts: []ChainContract{{Type: "TriggerSmartContract"}}}).Transfer()
	assert.False(t, ok)

	_, ok = (&ChainTx{}).Transfer()
	assert.False(t, ok)
}

func TestCart_IsPending(t *testing.T) {
	assert.True(t, (&Cart{Status: CartStatusPending}).IsPending())
	assert.False(t, (&Cart{Status: CartStatusCompleted}).IsPending())
	assert.False(t, (&Cart{Status: CartStatusCancelled}).IsPending())
}

func TestSettlementKeys(t *testing.T) {
	id := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")

	assert.Equal(t, "settle:fiat:A0001", FiatSettlementKey("A0001"))
	assert.Equal(t, "settle:chain:abc", ChainSettlementKey("abc"))
	assert.Equal(t, "settle:cart:550e8400-e29b-41d4-a716-446655440000", CartSettlementKey(id))
}
