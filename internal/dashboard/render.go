package dashboard

import (
	"math/big"
	"time"

	"github.com/dustin/go-humanize"
	comm "github.com/govdao/dashboard/internal/common"
	"github.com/govdao/dashboard/pkg/dao"
)

const (
	MessageNoProposals = "No proposals have been created"
	MessageNotMember   = "No Gallery Keys found. You cannot create or vote on proposals"
)

// Page is the presentation model of the dashboard.
type Page struct {
	Connected    bool   `json:"connected"`
	Account      string `json:"account"`
	AccountShort string `json:"account_short"`
	Network      string `json:"network"`
	CanSign      bool   `json:"can_sign"`

	MembershipBalance string `json:"membership_balance"`
	TreasuryBalance   string `json:"treasury_balance"`
	ProposalCount     int64  `json:"proposal_count"`

	Tab Tab `json:"tab"`

	IsMember         bool   `json:"is_member"`
	NotMemberMessage string `json:"not_member_message,omitempty"`

	Creating  bool `json:"creating"`
	CanCreate bool `json:"can_create"`

	EmptyMessage string         `json:"empty_message,omitempty"`
	Proposals    []ProposalCard `json:"proposals"`
}

type ProposalCard struct {
	ID             int64     `json:"id"`
	Content        string    `json:"content"`
	Recipient      string    `json:"recipient"`
	RecipientShort string    `json:"recipient_short"`
	Amount         string    `json:"amount"`
	Deadline       time.Time `json:"deadline"`
	DeadlineText   string    `json:"deadline_text"`
	YesVotes       string    `json:"yes_votes"`
	NoVotes        string    `json:"no_votes"`
	Executed       bool      `json:"executed"`

	Action  dao.Action `json:"action"`
	Outcome dao.Vote   `json:"outcome"`
	Busy    bool       `json:"busy"`

	CanVote    bool `json:"can_vote"`
	CanExecute bool `json:"can_execute"`
}

// Render derives the page for v at time now. It has no side effects.
func Render(v View, network dao.Network, now time.Time) Page {
	p := Page{
		Connected:         v.Connected,
		Network:           network.Name,
		CanSign:           v.CanSign,
		MembershipBalance: intOrZero(v.MembershipBalance),
		TreasuryBalance:   comm.FormatEther(v.TreasuryBalance),
		ProposalCount:     v.ProposalCount,
		Tab:               v.Tab,
		IsMember:          v.IsMember(),
		Creating:          v.Loading(TabCreateProposal),
		Proposals:         []ProposalCard{},
	}

	if v.Connected && v.CanSign {
		p.Account = v.Account.Hex()
		p.AccountShort = comm.ShortenAddress(v.Account, 4)
	}

	if v.Connected && !p.IsMember {
		p.NotMemberMessage = MessageNotMember
	}

	p.CanCreate = v.CanParticipate() && !p.Creating

	for _, prop := range v.Proposals {
		p.Proposals = append(p.Proposals, card(v, prop, now))
	}

	if v.Tab == TabViewProposals && len(p.Proposals) == 0 {
		p.EmptyMessage = MessageNoProposals
	}

	return p
}

func card(v View, prop dao.Proposal, now time.Time) ProposalCard {
	busy := v.IsPending(VoteKey(prop.ID)) || v.IsPending(ExecuteKey(prop.ID))
	action := prop.Action(now)

	return ProposalCard{
		ID:             prop.ID,
		Content:        prop.Content,
		Recipient:      prop.Recipient.Hex(),
		RecipientShort: comm.ShortenAddress(prop.Recipient, 4),
		Amount:         comm.FormatEther(prop.Amount),
		Deadline:       prop.Deadline,
		DeadlineText:   humanize.RelTime(prop.Deadline, now, "ago", "from now"),
		YesVotes:       intOrZero(prop.YesVotes),
		NoVotes:        intOrZero(prop.NoVotes),
		Executed:       prop.Executed,
		Action:         action,
		Outcome:        prop.Outcome(),
		Busy:           busy,
		CanVote:        action == dao.ActionVote && v.CanParticipate() && !busy,
		CanExecute:     action == dao.ActionExecute && v.Connected && v.CanSign && !busy,
	}
}

func intOrZero(i *big.Int) string {
	if i == nil {
		return "0"
	}

	return i.String()
}
