package dao

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Provider is a read handle on the chain. It never signs.
type Provider interface {
	Backend() bind.ContractBackend

	ChainID(ctx context.Context) (*big.Int, error)
	BalanceAt(ctx context.Context, account common.Address) (*big.Int, error)
	WaitForTx(ctx context.Context, tx *types.Transaction) error

	Close()
}

// Signer authorizes transactions on behalf of a single account.
type Signer interface {
	Address() common.Address
	TransactOpts(ctx context.Context) (*bind.TransactOpts, error)
}

// Connection is what a wallet hands out on connect. Signer is nil for read-only wallets.
type Connection struct {
	Provider Provider
	Signer   Signer
}

type Wallet interface {
	Connect(ctx context.Context) (*Connection, error)
}

// Governance is the call interface of the governance contract.
type Governance interface {
	NumProposals(ctx context.Context) (*big.Int, error)
	Proposal(ctx context.Context, id int64) (*Proposal, error)

	CreateProposal(opts *bind.TransactOpts, content string, amount *big.Int, recipient common.Address) (*types.Transaction, error)
	VoteOnProposal(opts *bind.TransactOpts, id int64, vote Vote) (*types.Transaction, error)
	ExecuteProposal(opts *bind.TransactOpts, id int64) (*types.Transaction, error)
}

// Membership is the call interface of the membership token contract.
type Membership interface {
	BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error)
}

// Binder binds both contracts to a backend obtained from a connection.
type Binder func(backend bind.ContractBackend) (Governance, Membership, error)
