package dao

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

type Proposal struct {
	ID        int64          `json:"id"`
	Content   string         `json:"content"`
	Recipient common.Address `json:"recipient"`
	Amount    *big.Int       `json:"amount"`
	Deadline  time.Time      `json:"deadline"`
	YesVotes  *big.Int       `json:"yes_votes"`
	NoVotes   *big.Int       `json:"no_votes"`
	Executed  bool           `json:"executed"`
}

// ProposalRequest holds the inputs of a propose transaction. Amount is in wei.
type ProposalRequest struct {
	Content   string
	Amount    *big.Int
	Recipient common.Address
}

func (r ProposalRequest) Validate() error {
	if r.Content == "" {
		return ErrInvalidProposal
	}

	if r.Amount == nil || r.Amount.Sign() < 0 {
		return ErrInvalidProposal
	}

	if r.Recipient == (common.Address{}) {
		return ErrInvalidProposal
	}

	return nil
}

type Action string

const (
	ActionVote     Action = "vote"
	ActionExecute  Action = "execute"
	ActionFinished Action = "finished"
)

// Action decides which control a proposal card offers at the given time.
//
// A proposal whose deadline passed without a yes majority is finished, it
// never offers an execute control.
func (p *Proposal) Action(now time.Time) Action {
	if p.Deadline.After(now) && !p.Executed {
		return ActionVote
	}

	if p.Deadline.Before(now) && !p.Executed && p.YesWins() {
		return ActionExecute
	}

	return ActionFinished
}

// YesWins reports whether yes votes strictly exceed no votes.
func (p *Proposal) YesWins() bool {
	return bigOrZero(p.YesVotes).Cmp(bigOrZero(p.NoVotes)) > 0
}

// Outcome labels the winning side the way the execute control shows it.
func (p *Proposal) Outcome() Vote {
	if p.YesWins() {
		return VoteYes
	}

	return VoteNo
}

func bigOrZero(i *big.Int) *big.Int {
	if i == nil {
		return common.Big0
	}

	return i
}
