package common

import (
	"errors"
	"math/big"
	"strings"
)

var (
	ErrInvalidAmount = errors.New("invalid ether amount")

	weiPerEther = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
)

// ParseEther converts a decimal ether amount such as "0.25" into wei.
// Signs, exponents and fractions below one wei are rejected.
func ParseEther(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.Count(s, ".") > 1 || s == "." {
		return nil, ErrInvalidAmount
	}

	for _, c := range s {
		if (c < '0' || c > '9') && c != '.' {
			return nil, ErrInvalidAmount
		}
	}

	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}

	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, ErrInvalidAmount
	}

	r.Mul(r, new(big.Rat).SetInt(weiPerEther))
	if !r.IsInt() {
		return nil, ErrInvalidAmount
	}

	return new(big.Int).Set(r.Num()), nil
}

// FormatEther renders wei as a decimal ether amount without trailing zeros.
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0"
	}

	s := new(big.Rat).SetFrac(wei, weiPerEther).FloatString(18)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}

	return s
}
