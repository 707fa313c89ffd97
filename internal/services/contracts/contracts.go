package contracts

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/govdao/dashboard/pkg/contracts/gallerykeys"
	"github.com/govdao/dashboard/pkg/contracts/govdao"
	"github.com/govdao/dashboard/pkg/dao"
)

var ErrInvalidDeadline = errors.New("invalid proposal deadline")

// Governance adapts the generated GovDao binding to dao.Governance.
type Governance struct {
	contract *govdao.GovDao
}

func NewGovernance(addr common.Address, backend bind.ContractBackend) (*Governance, error) {
	c, err := govdao.NewGovDao(addr, backend)
	if err != nil {
		return nil, err
	}

	return &Governance{contract: c}, nil
}

func (g *Governance) NumProposals(ctx context.Context) (*big.Int, error) {
	return g.contract.NumProposals(&bind.CallOpts{Context: ctx})
}

// Proposal reads one proposal and normalizes its deadline from unix seconds.
func (g *Governance) Proposal(ctx context.Context, id int64) (*dao.Proposal, error) {
	p, err := g.contract.Proposals(&bind.CallOpts{Context: ctx}, big.NewInt(id))
	if err != nil {
		return nil, err
	}

	if p.Deadline == nil || !p.Deadline.IsInt64() {
		return nil, ErrInvalidDeadline
	}

	return &dao.Proposal{
		ID:        id,
		Content:   p.Content,
		Recipient: p.Recipient,
		Amount:    p.Amount,
		Deadline:  time.Unix(p.Deadline.Int64(), 0),
		YesVotes:  p.YesVotes,
		NoVotes:   p.NoVotes,
		Executed:  p.Executed,
	}, nil
}

func (g *Governance) CreateProposal(opts *bind.TransactOpts, content string, amount *big.Int, recipient common.Address) (*types.Transaction, error) {
	return g.contract.CreateProposal(opts, content, amount, recipient)
}

func (g *Governance) VoteOnProposal(opts *bind.TransactOpts, id int64, vote dao.Vote) (*types.Transaction, error) {
	v, err := vote.Encode()
	if err != nil {
		return nil, err
	}

	return g.contract.VoteOnProposal(opts, big.NewInt(id), v)
}

func (g *Governance) ExecuteProposal(opts *bind.TransactOpts, id int64) (*types.Transaction, error) {
	return g.contract.ExecuteProposal(opts, big.NewInt(id))
}

// Membership adapts the GalleryKeys caller to dao.Membership.
type Membership struct {
	contract *gallerykeys.GalleryKeysCaller
}

func NewMembership(addr common.Address, caller bind.ContractCaller) (*Membership, error) {
	c, err := gallerykeys.NewGalleryKeysCaller(addr, caller)
	if err != nil {
		return nil, err
	}

	return &Membership{contract: c}, nil
}

func (m *Membership) BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error) {
	return m.contract.BalanceOf(&bind.CallOpts{Context: ctx}, owner)
}

// NewBinder returns a dao.Binder for the two fixed contract addresses.
func NewBinder(daoAddr, membershipAddr common.Address) dao.Binder {
	return func(backend bind.ContractBackend) (dao.Governance, dao.Membership, error) {
		gov, err := NewGovernance(daoAddr, backend)
		if err != nil {
			return nil, nil, err
		}

		mem, err := NewMembership(membershipAddr, backend)
		if err != nil {
			return nil, nil, err
		}

		return gov, mem, nil
	}
}
