package dashboard

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/govdao/dashboard/pkg/dao"
)

var (
	daoAddr = common.HexToAddress("0x1234567890123456789012345678901234567890")
	account = common.HexToAddress("0x480fbe37526226b6c6e2a7afa449cdf661939d2f")
	goerli  = dao.Network{Name: "Goerli", ChainID: 5}
)

type mockProvider struct {
	mu sync.Mutex

	chainID    *big.Int
	balance    *big.Int
	balanceErr error
	waitErr    error

	// release, when set, holds WaitForTx until it is closed
	release chan struct{}
	closed  bool
}

func (m *mockProvider) Backend() bind.ContractBackend { return nil }

func (m *mockProvider) ChainID(ctx context.Context) (*big.Int, error) {
	return m.chainID, nil
}

func (m *mockProvider) BalanceAt(ctx context.Context, addr common.Address) (*big.Int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.balanceErr != nil {
		return nil, m.balanceErr
	}

	return m.balance, nil
}

func (m *mockProvider) WaitForTx(ctx context.Context, tx *types.Transaction) error {
	if m.release != nil {
		select {
		case <-m.release:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return m.waitErr
}

func (m *mockProvider) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
}

type mockSigner struct {
	addr  common.Address
	calls atomic.Int32
}

func (m *mockSigner) Address() common.Address { return m.addr }

func (m *mockSigner) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	m.calls.Add(1)
	return &bind.TransactOpts{From: m.addr, Context: ctx}, nil
}

type mockWallet struct {
	conn *dao.Connection
	err  error
}

func (m *mockWallet) Connect(ctx context.Context) (*dao.Connection, error) {
	return m.conn, m.err
}

type vote struct {
	id   int64
	vote dao.Vote
}

type mockGov struct {
	mu sync.Mutex

	count     int64
	countErr  error
	proposals map[int64]*dao.Proposal
	// delay staggers proposal reads so they complete out of order
	delay func(id int64) time.Duration

	submitErr error
	created   []dao.ProposalRequest
	votes     []vote
	executed  []int64
}

func (m *mockGov) NumProposals(ctx context.Context) (*big.Int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.countErr != nil {
		return nil, m.countErr
	}

	return big.NewInt(m.count), nil
}

func (m *mockGov) Proposal(ctx context.Context, id int64) (*dao.Proposal, error) {
	if m.delay != nil {
		time.Sleep(m.delay(id))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.proposals[id]
	if !ok {
		return nil, errors.New("execution reverted")
	}

	cp := *p
	return &cp, nil
}

func (m *mockGov) tx() *types.Transaction {
	return types.NewTransaction(0, daoAddr, big.NewInt(0), 0, big.NewInt(0), nil)
}

func (m *mockGov) CreateProposal(opts *bind.TransactOpts, content string, amount *big.Int, recipient common.Address) (*types.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.submitErr != nil {
		return nil, m.submitErr
	}

	m.created = append(m.created, dao.ProposalRequest{Content: content, Amount: amount, Recipient: recipient})
	m.proposals[m.count] = &dao.Proposal{ID: m.count, Content: content, Amount: amount, Recipient: recipient}
	m.count++

	return m.tx(), nil
}

func (m *mockGov) VoteOnProposal(opts *bind.TransactOpts, id int64, v dao.Vote) (*types.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.submitErr != nil {
		return nil, m.submitErr
	}

	m.votes = append(m.votes, vote{id, v})

	return m.tx(), nil
}

func (m *mockGov) ExecuteProposal(opts *bind.TransactOpts, id int64) (*types.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.submitErr != nil {
		return nil, m.submitErr
	}

	m.executed = append(m.executed, id)

	return m.tx(), nil
}

type mockMembership struct {
	balance *big.Int
	err     error
}

func (m *mockMembership) BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error) {
	return m.balance, m.err
}

type fixture struct {
	provider *mockProvider
	signer   *mockSigner
	wallet   *mockWallet
	gov      *mockGov
	mem      *mockMembership
}

func newFixture(n int64) *fixture {
	gov := &mockGov{count: n, proposals: map[int64]*dao.Proposal{}}

	deadline := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := int64(0); i < n; i++ {
		gov.proposals[i] = &dao.Proposal{
			ID:       i,
			Content:  "proposal",
			Amount:   big.NewInt(1e17),
			Deadline: deadline,
			YesVotes: big.NewInt(i),
			NoVotes:  big.NewInt(1),
		}
	}

	provider := &mockProvider{chainID: big.NewInt(5), balance: big.NewInt(2e18)}
	signer := &mockSigner{addr: account}

	return &fixture{
		provider: provider,
		signer:   signer,
		wallet:   &mockWallet{conn: &dao.Connection{Provider: provider, Signer: signer}},
		gov:      gov,
		mem:      &mockMembership{balance: big.NewInt(1)},
	}
}

func (f *fixture) binder() dao.Binder {
	return func(backend bind.ContractBackend) (dao.Governance, dao.Membership, error) {
		return f.gov, f.mem, nil
	}
}

func (f *fixture) controller(n dao.Notifier) *Controller {
	return NewController(f.wallet, n, Options{
		DAO:              daoAddr,
		Network:          goerli,
		Binder:           f.binder(),
		FetchConcurrency: 3,
	})
}
