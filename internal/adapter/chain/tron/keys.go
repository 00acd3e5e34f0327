package tron

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"
)

// addressPrefix is the mainnet/testnet TRON address version byte.
const addressPrefix = 0x41

// KeyGenerator implements ports.KeyGenerator with secp256k1 keys.
type KeyGenerator struct{}

// NewKeyGenerator creates a TRON key generator.
func NewKeyGenerator() *KeyGenerator {
	return &KeyGenerator{}
}

// Generate returns a fresh hex-encoded private key and its base58check address.
func (g *KeyGenerator) Generate() (string, string, error) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return "", "", fmt.Errorf("generate private key: %w", err)
	}
	privHex := hex.EncodeToString(priv.Serialize())
	addr, err := AddressFromPrivateKey(privHex)
	if err != nil {
		return "", "", err
	}
	return privHex, addr, nil
}

// AddressFromPrivateKey derives the base58check address for a hex private key.
func AddressFromPrivateKey(privHex string) (string, error) {
	raw, err := hex.DecodeString(privHex)
	if err != nil {
		return "", fmt.Errorf("decode private key: %w", err)
	}
	if len(raw) != secp256k1.PrivKeyBytesLen {
		return "", errors.New("private key must be 32 bytes")
	}
	return AddressFromPublicKey(secp256k1.PrivKeyFromBytes(raw).PubKey()), nil
}

// AddressFromPublicKey is 0x41 followed by the last 20 bytes of the
// Keccak-256 of the uncompressed key (without its 0x04 prefix), base58check encoded.
func AddressFromPublicKey(pub *secp256k1.PublicKey) string {
	uncompressed := pub.SerializeUncompressed()

	h := sha3.NewLegacyKeccak256()
	h.Write(uncompressed[1:])
	digest := h.Sum(nil)

	payload := make([]byte, 0, 21)
	payload = append(payload, addressPrefix)
	payload = append(payload, digest[len(digest)-20:]...)
	return encodeCheck(payload)
}

func encodeCheck(payload []byte) string {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	out := make([]byte, 0, len(payload)+4)
	out = append(out, payload...)
	out = append(out, second[:4]...)
	return base58.Encode(out)
}
