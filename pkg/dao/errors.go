package dao

import (
	"errors"
	"fmt"
)

var (
	ErrWrongNetwork    = errors.New("wrong network")
	ErrNotConnected    = errors.New("wallet not connected")
	ErrNoSigner        = errors.New("wallet cannot sign transactions")
	ErrNotMember       = errors.New("no membership tokens found")
	ErrInvalidVote     = errors.New("vote must be YES or NO")
	ErrInvalidProposal = errors.New("invalid proposal")
	ErrInvalidTab      = errors.New("invalid tab")
	ErrBusy            = errors.New("action already in progress")
	ErrTxFailed        = errors.New("tx failed")
)

// ActionError ties a failure to the user action and request token that caused it.
type ActionError struct {
	Action string
	Token  string
	Reason string
	Err    error
}

func NewActionError(action, token, reason string, err error) *ActionError {
	return &ActionError{
		Action: action,
		Token:  token,
		Reason: reason,
		Err:    err,
	}
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Action, e.Reason)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}
