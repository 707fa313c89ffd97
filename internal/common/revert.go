package common

import (
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

const revertPrefix = "execution reverted:"

// RevertReason extracts the human readable reason from a failed call or transaction.
// Errors that do not come from a revert are returned as their message.
func RevertReason(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	if i := strings.Index(msg, revertPrefix); i >= 0 {
		return strings.TrimSpace(msg[i+len(revertPrefix):])
	}

	// nodes that omit the reason from the message still return the encoded Error(string)
	var derr rpc.DataError
	if errors.As(err, &derr) {
		if data, ok := derr.ErrorData().(string); ok {
			b, herr := hexutil.Decode(data)
			if herr == nil {
				if reason, uerr := abi.UnpackRevert(b); uerr == nil {
					return reason
				}
			}
		}
	}

	return msg
}
