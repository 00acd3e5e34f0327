package domain

import "errors"

// Ledger sentinel errors returned by repositories.
var (
	ErrInsufficientFunds     = errors.New("insufficient funds")
	ErrDuplicateReference    = errors.New("external reference already recorded")
	ErrTransactionNotPending = errors.New("transaction is not pending")
	ErrCartNotPending        = errors.New("cart is not pending")
	ErrWalletExists          = errors.New("wallet already exists for user")
)
