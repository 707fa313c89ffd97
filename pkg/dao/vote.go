package dao

import "strings"

type Vote string

const (
	VoteYes Vote = "YES"
	VoteNo  Vote = "NO"
)

// ParseVote accepts user input in any letter case.
func ParseVote(s string) (Vote, error) {
	v := Vote(strings.ToUpper(strings.TrimSpace(s)))
	if _, err := v.Encode(); err != nil {
		return "", err
	}

	return v, nil
}

// Encode maps a vote onto the contract's enum. YES is 0, NO is 1.
func (v Vote) Encode() (uint8, error) {
	switch v {
	case VoteYes:
		return 0, nil
	case VoteNo:
		return 1, nil
	}

	return 0, ErrInvalidVote
}
