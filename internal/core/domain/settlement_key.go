package domain

import "github.com/google/uuid"

// Settlement lock keys. One key per external reference or cart so
// concurrent settlements of the same thing serialize before touching the DB.

func FiatSettlementKey(authority string) string {
	return "settle:fiat:" + authority
}

func ChainSettlementKey(hash string) string {
	return "settle:chain:" + hash
}

func CartSettlementKey(cartID uuid.UUID) string {
	return "settle:cart:" + cartID.String()
}
