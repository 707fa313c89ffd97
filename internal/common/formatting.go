package common

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// ShortenAddress keeps length hex digits on each side of the checksummed address.
func ShortenAddress(addr common.Address, length int) string {
	s := addr.Hex()
	if len(s) <= 2+length*2 {
		return s
	}

	return fmt.Sprintf("%s…%s", s[:2+length], s[len(s)-length:])
}
