package common

import (
	"crypto/ecdsa"
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

func HexToPrivateKey(privateKeyHex string) (*ecdsa.PrivateKey, error) {
	privateKeyBytes, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(privateKeyHex), "0x"))
	if err != nil {
		return nil, err
	}

	privateKey, err := crypto.ToECDSA(privateKeyBytes)
	if err != nil {
		return nil, err
	}

	return privateKey, nil
}

// GenerateHexPrivateKey creates a fresh development key and returns it hex encoded with its address.
func GenerateHexPrivateKey() (string, common.Address, error) {
	privateKey, err := crypto.GenerateKey()
	if err != nil {
		return "", common.Address{}, err
	}

	return hex.EncodeToString(crypto.FromECDSA(privateKey)), crypto.PubkeyToAddress(privateKey.PublicKey), nil
}
