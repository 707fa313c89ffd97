package dashboard

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/govdao/dashboard/pkg/dao"
)

type Tab string

const (
	TabNone           Tab = ""
	TabCreateProposal Tab = "create_proposal"
	TabViewProposals  Tab = "view_proposals"
)

func ParseTab(s string) (Tab, error) {
	switch Tab(s) {
	case TabNone, TabCreateProposal, TabViewProposals:
		return Tab(s), nil
	}

	return TabNone, fmt.Errorf("%w: %q", dao.ErrInvalidTab, s)
}

const KeyCreate = "create"

func VoteKey(id int64) string {
	return fmt.Sprintf("vote:%d", id)
}

func ExecuteKey(id int64) string {
	return fmt.Sprintf("execute:%d", id)
}

// View is a snapshot of the dashboard. It is only ever replaced, never
// mutated, so a View handed out by the controller stays valid.
type View struct {
	Connected bool           `json:"connected"`
	Account   common.Address `json:"account"`
	ChainID   int64          `json:"chain_id"`
	CanSign   bool           `json:"can_sign"`

	TreasuryBalance   *big.Int `json:"treasury_balance"`
	ProposalCount     int64    `json:"proposal_count"`
	MembershipBalance *big.Int `json:"membership_balance"`

	Tab       Tab            `json:"tab"`
	Proposals []dao.Proposal `json:"proposals"`

	// Pending maps an action key to the request token of its in-flight transaction.
	Pending map[string]string `json:"pending"`
}

type Event interface {
	event()
}

type (
	Connected struct {
		Account common.Address
		ChainID int64
		CanSign bool
	}
	Disconnected     struct{}
	TreasuryLoaded   struct{ Balance *big.Int }
	CountLoaded      struct{ Count int64 }
	MembershipLoaded struct{ Balance *big.Int }
	TabSelected      struct{ Tab Tab }
	ProposalsLoaded  struct{ Proposals []dao.Proposal }
	ActionStarted    struct{ Key, Token string }
	ActionFinished   struct{ Key, Token string }
)

func (Connected) event()        {}
func (Disconnected) event()     {}
func (TreasuryLoaded) event()   {}
func (CountLoaded) event()      {}
func (MembershipLoaded) event() {}
func (TabSelected) event()      {}
func (ProposalsLoaded) event()  {}
func (ActionStarted) event()    {}
func (ActionFinished) event()   {}

// Reduce returns the view that results from applying e to v. v is left untouched.
func Reduce(v View, e Event) View {
	switch e := e.(type) {
	case Connected:
		// membership is per account
		if e.Account != v.Account || !e.CanSign {
			v.MembershipBalance = nil
		}
		v.Connected = true
		v.Account = e.Account
		v.ChainID = e.ChainID
		v.CanSign = e.CanSign
	case Disconnected:
		return View{}
	case TreasuryLoaded:
		v.TreasuryBalance = e.Balance
	case CountLoaded:
		v.ProposalCount = e.Count
	case MembershipLoaded:
		v.MembershipBalance = e.Balance
	case TabSelected:
		v.Tab = e.Tab
	case ProposalsLoaded:
		ps := make([]dao.Proposal, len(e.Proposals))
		copy(ps, e.Proposals)
		v.Proposals = ps
	case ActionStarted:
		pending := make(map[string]string, len(v.Pending)+1)
		for k, t := range v.Pending {
			pending[k] = t
		}
		pending[e.Key] = e.Token
		v.Pending = pending
	case ActionFinished:
		// a stale token must not clear a newer action on the same key
		if v.Pending[e.Key] != e.Token {
			return v
		}
		pending := make(map[string]string, len(v.Pending))
		for k, t := range v.Pending {
			if k != e.Key {
				pending[k] = t
			}
		}
		v.Pending = pending
	}

	return v
}

// clone copies everything v references, so changes to the copy never reach v.
func (v View) clone() View {
	v.TreasuryBalance = cloneInt(v.TreasuryBalance)
	v.MembershipBalance = cloneInt(v.MembershipBalance)

	if v.Proposals != nil {
		ps := make([]dao.Proposal, len(v.Proposals))
		for i, p := range v.Proposals {
			p.Amount = cloneInt(p.Amount)
			p.YesVotes = cloneInt(p.YesVotes)
			p.NoVotes = cloneInt(p.NoVotes)
			ps[i] = p
		}
		v.Proposals = ps
	}

	if v.Pending != nil {
		pending := make(map[string]string, len(v.Pending))
		for k, t := range v.Pending {
			pending[k] = t
		}
		v.Pending = pending
	}

	return v
}

func cloneInt(i *big.Int) *big.Int {
	if i == nil {
		return nil
	}

	return new(big.Int).Set(i)
}

func (v View) IsPending(key string) bool {
	_, ok := v.Pending[key]
	return ok
}

func (v View) IsMember() bool {
	return v.MembershipBalance != nil && v.MembershipBalance.Sign() > 0
}

// CanParticipate reports whether the connected account may propose and vote.
func (v View) CanParticipate() bool {
	return v.Connected && v.CanSign && v.IsMember()
}

// Loading reports whether the tab's controls are suppressed by a pending transaction.
func (v View) Loading(tab Tab) bool {
	switch tab {
	case TabCreateProposal:
		return v.IsPending(KeyCreate)
	case TabViewProposals:
		for k := range v.Pending {
			if k != KeyCreate {
				return true
			}
		}
	}

	return false
}
