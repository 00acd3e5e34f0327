package ports

//go:generate mockgen -source=clients.go -destination=mocks/mock_clients.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"wallet-settlement/internal/core/domain"

	"github.com/shopspring/decimal"
)

// Gateway result codes.
const (
	GatewayCodeSuccess         = 100
	GatewayCodeAlreadyVerified = 101
)

// PaymentGateway is the hosted fiat payment gateway.
type PaymentGateway interface {
	Initiate(ctx context.Context, req InitiateRequest) (*InitiateResult, error)
	Verify(ctx context.Context, authority string, amount decimal.Decimal) (*VerifyResult, error)
}

// InitiateRequest describes a payment to open at the gateway. Amount is in
// major units; the client converts.
type InitiateRequest struct {
	Amount      decimal.Decimal
	Description string
	CallbackURL string
	Email       string
}

type InitiateResult struct {
	Authority  string
	PaymentURL string
}

type VerifyResult struct {
	Code            int
	RefID           string
	AlreadyVerified bool
}

// GatewayError is a business rejection reported by the gateway.
type GatewayError struct {
	Code    int
	Message string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway error %d: %s", e.Code, e.Message)
}

// NetworkError is a transport failure, timeout, non-2xx status or
// unparseable body from an upstream service.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ErrChainTxNotFound is returned when the node does not know the hash.
var ErrChainTxNotFound = errors.New("chain transaction not found")

// ChainClient reads transactions from a TRON-compatible node.
type ChainClient interface {
	GetTransaction(ctx context.Context, hash string) (*domain.ChainTx, error)
}

// KeyGenerator creates chain keypairs for new wallets.
type KeyGenerator interface {
	// Generate returns a hex private key and its base58check address.
	Generate() (privateKeyHex string, address string, err error)
}
