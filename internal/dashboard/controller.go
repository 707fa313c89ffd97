// Package dashboard holds the dashboard controller: the wallet connection,
// reads against the governance and membership contracts, transactions and
// the view they produce.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	comm "github.com/govdao/dashboard/internal/common"
	"github.com/govdao/dashboard/internal/metrics"
	"github.com/govdao/dashboard/pkg/dao"
	"golang.org/x/sync/errgroup"
)

const (
	defaultFetchConcurrency = 4

	// maxProposals bounds the count the contract may report
	maxProposals = 10000
)

var ErrCountOutOfRange = errors.New("proposal count out of range")

type Options struct {
	// DAO is the governance contract, its native balance is the treasury.
	DAO     common.Address
	Network dao.Network
	Binder  dao.Binder

	FetchConcurrency int
}

// session is everything a successful connect produces.
type session struct {
	provider dao.Provider
	signer   dao.Signer
	gov      dao.Governance
	mem      dao.Membership
}

type Controller struct {
	wallet   dao.Wallet
	notifier dao.Notifier
	opts     Options

	// ctx outlives requests, it bounds waits on submitted transactions
	ctx    context.Context
	cancel context.CancelFunc

	mu   sync.Mutex
	view View
	sess *session
}

func NewController(w dao.Wallet, n dao.Notifier, opts Options) *Controller {
	if opts.FetchConcurrency <= 0 {
		opts.FetchConcurrency = defaultFetchConcurrency
	}

	if n == nil {
		n = discard{}
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Controller{
		wallet:   w,
		notifier: n,
		opts:     opts,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Close abandons waits on submitted transactions and drops the connection.
func (c *Controller) Close() {
	c.cancel()
	c.Disconnect()
}

// View returns a copy of the current snapshot.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.view.clone()
}

// Render derives the page model for the current snapshot.
func (c *Controller) Render(now time.Time) Page {
	return Render(c.View(), c.opts.Network, now)
}

func (c *Controller) session() *session {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.sess
}

// apply reduces e into the view, unless s is no longer the live session.
func (c *Controller) apply(s *session, e Event) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s != nil && c.sess != s {
		return false
	}

	c.view = Reduce(c.view, e)

	return true
}

// ConnectWallet connects the wallet, checks its network and loads the header figures.
// On failure the previous state is kept.
func (c *Controller) ConnectWallet(ctx context.Context) error {
	conn, err := c.wallet.Connect(ctx)
	if err != nil {
		log.Default().Println("connect wallet:", err)
		c.notifier.NotifyError(ctx, dao.NewActionError("connect", "", err.Error(), err))
		return err
	}

	chainID, err := c.requireNetwork(ctx, conn.Provider)
	if err != nil {
		conn.Provider.Close()
		return err
	}

	gov, mem, err := c.opts.Binder(conn.Provider.Backend())
	if err != nil {
		conn.Provider.Close()
		log.Default().Println("bind contracts:", err)
		c.notifier.NotifyError(ctx, dao.NewActionError("connect", "", err.Error(), err))
		return err
	}

	s := &session{
		provider: conn.Provider,
		signer:   conn.Signer,
		gov:      gov,
		mem:      mem,
	}

	ev := Connected{ChainID: chainID.Int64(), CanSign: conn.Signer != nil}
	if conn.Signer != nil {
		ev.Account = conn.Signer.Address()
	}

	c.mu.Lock()
	old := c.sess
	c.sess = s
	c.view = Reduce(c.view, ev)
	c.mu.Unlock()

	if old != nil {
		old.provider.Close()
	}

	log.Default().Println("connected to chain", chainID.String(), "as", ev.Account.Hex())

	c.TreasuryBalance(ctx)
	if conn.Signer != nil {
		c.MembershipBalance(ctx, ev.Account)
	}
	c.ProposalCount(ctx)

	return nil
}

// RequireNetwork fails with dao.ErrWrongNetwork unless provider is on the configured chain.
func (c *Controller) RequireNetwork(ctx context.Context, provider dao.Provider) error {
	_, err := c.requireNetwork(ctx, provider)
	return err
}

func (c *Controller) requireNetwork(ctx context.Context, provider dao.Provider) (*big.Int, error) {
	chainID, err := provider.ChainID(ctx)
	if err != nil {
		log.Default().Println("chain id:", err)
		c.notifier.NotifyError(ctx, dao.NewActionError("connect", "", err.Error(), err))
		return nil, err
	}

	if chainID.Cmp(big.NewInt(c.opts.Network.ChainID)) != 0 {
		aerr := dao.NewActionError("connect", "", fmt.Sprintf("Please switch to the %s network!", c.networkName()), dao.ErrWrongNetwork)
		log.Default().Println("wrong network:", chainID.String())
		c.notifier.NotifyError(ctx, aerr)
		return nil, aerr
	}

	return chainID, nil
}

func (c *Controller) networkName() string {
	if c.opts.Network.Name != "" {
		return c.opts.Network.Name
	}

	return fmt.Sprintf("chain %d", c.opts.Network.ChainID)
}

// Disconnect drops the connection and returns to the initial view.
func (c *Controller) Disconnect() {
	c.mu.Lock()
	old := c.sess
	c.sess = nil
	c.view = Reduce(c.view, Disconnected{})
	c.mu.Unlock()

	if old != nil {
		old.provider.Close()
	}
}

// TreasuryBalance reads the native balance of the governance contract.
// On error the cached value is returned alongside it.
func (c *Controller) TreasuryBalance(ctx context.Context) (*big.Int, error) {
	s := c.session()
	if s == nil {
		return c.View().TreasuryBalance, dao.ErrNotConnected
	}

	bal, err := s.provider.BalanceAt(ctx, c.opts.DAO)
	if err != nil {
		log.Default().Println("treasury balance:", err)
		return c.View().TreasuryBalance, err
	}

	c.apply(s, TreasuryLoaded{Balance: bal})

	return bal, nil
}

// ProposalCount reads the number of proposals, falling back to the cached count on error.
func (c *Controller) ProposalCount(ctx context.Context) (int64, error) {
	s := c.session()
	if s == nil {
		return c.View().ProposalCount, dao.ErrNotConnected
	}

	n, err := s.gov.NumProposals(ctx)
	metrics.ObserveRPC("numProposals", err)
	if err != nil {
		log.Default().Println("proposal count:", err)
		return c.View().ProposalCount, err
	}

	if n.Sign() < 0 || n.Cmp(big.NewInt(maxProposals)) > 0 {
		log.Default().Println("proposal count:", n.String())
		return c.View().ProposalCount, fmt.Errorf("%w: %s", ErrCountOutOfRange, n.String())
	}

	c.apply(s, CountLoaded{Count: n.Int64()})

	return n.Int64(), nil
}

// MembershipBalance reads how many membership tokens owner holds.
// Only the connected account's balance is kept in the view.
func (c *Controller) MembershipBalance(ctx context.Context, owner common.Address) (*big.Int, error) {
	s := c.session()
	if s == nil {
		return c.View().MembershipBalance, dao.ErrNotConnected
	}

	bal, err := s.mem.BalanceOf(ctx, owner)
	metrics.ObserveRPC("balanceOf", err)
	if err != nil {
		log.Default().Println("membership balance:", err)
		return c.View().MembershipBalance, err
	}

	if s.signer != nil && s.signer.Address() == owner {
		c.apply(s, MembershipLoaded{Balance: bal})
	}

	return bal, nil
}

// FetchProposal reads a single proposal. Failures are logged and yield nil.
func (c *Controller) FetchProposal(ctx context.Context, id int64) *dao.Proposal {
	s := c.session()
	if s == nil {
		return nil
	}

	return fetchProposal(ctx, s, id)
}

func fetchProposal(ctx context.Context, s *session, id int64) *dao.Proposal {
	p, err := s.gov.Proposal(ctx, id)
	metrics.ObserveRPC("proposals", err)
	if err != nil {
		log.Default().Println("fetch proposal", id, ":", err)
		return nil
	}

	return p
}

// FetchAllProposals refreshes the count and reads every proposal in parallel.
// Results keep index order, failed indices are left out and the cache is replaced.
func (c *Controller) FetchAllProposals(ctx context.Context) []dao.Proposal {
	s := c.session()
	if s == nil {
		return c.View().Proposals
	}

	n, _ := c.ProposalCount(ctx)

	results := make([]*dao.Proposal, n)

	g := new(errgroup.Group)
	g.SetLimit(c.opts.FetchConcurrency)

	for i := int64(0); i < n; i++ {
		i := i
		g.Go(func() error {
			results[i] = fetchProposal(ctx, s, i)
			return nil
		})
	}

	g.Wait()

	proposals := make([]dao.Proposal, 0, n)
	for _, p := range results {
		if p != nil {
			proposals = append(proposals, *p)
		}
	}

	if c.apply(s, ProposalsLoaded{Proposals: proposals}) {
		metrics.SetProposalsCached(len(proposals))
	}

	return proposals
}

// SelectTab switches tabs. Entering the proposal list refetches it.
func (c *Controller) SelectTab(ctx context.Context, tab Tab) error {
	if _, err := ParseTab(string(tab)); err != nil {
		return err
	}

	s := c.session()
	if s == nil {
		return dao.ErrNotConnected
	}

	c.apply(s, TabSelected{Tab: tab})

	if tab == TabViewProposals {
		c.FetchAllProposals(ctx)
	}

	return nil
}

// CreateProposal submits a new proposal and waits for it to be mined. Amount is in wei.
func (c *Controller) CreateProposal(ctx context.Context, req dao.ProposalRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", c.reject(ctx, KeyCreate, err)
	}

	return c.transact(ctx, KeyCreate, "create", true, "Proposal created", func(s *session, opts *bind.TransactOpts) (*types.Transaction, error) {
		return s.gov.CreateProposal(opts, req.Content, req.Amount, req.Recipient)
	})
}

// VoteOnProposal casts vote on proposal id. Anything but YES or NO is rejected before any call.
func (c *Controller) VoteOnProposal(ctx context.Context, id int64, vote dao.Vote) (string, error) {
	key := VoteKey(id)

	if _, err := vote.Encode(); err != nil {
		return "", c.reject(ctx, key, err)
	}

	return c.transact(ctx, key, "vote", true, fmt.Sprintf("Vote on proposal %d confirmed", id), func(s *session, opts *bind.TransactOpts) (*types.Transaction, error) {
		return s.gov.VoteOnProposal(opts, id, vote)
	})
}

// ExecuteProposal executes proposal id. Membership is not required.
func (c *Controller) ExecuteProposal(ctx context.Context, id int64) (string, error) {
	return c.transact(ctx, ExecuteKey(id), "execute", false, fmt.Sprintf("Proposal %d executed", id), func(s *session, opts *bind.TransactOpts) (*types.Transaction, error) {
		return s.gov.ExecuteProposal(opts, id)
	})
}

type submitFunc func(s *session, opts *bind.TransactOpts) (*types.Transaction, error)

// transact runs one write: it claims key, signs and submits, waits for the receipt
// and refetches the proposals. The returned token identifies the attempt in notices.
func (c *Controller) transact(ctx context.Context, key, action string, member bool, done string, submit submitFunc) (string, error) {
	s := c.session()
	if s == nil {
		return "", c.reject(ctx, key, dao.ErrNotConnected)
	}

	if s.signer == nil {
		return "", c.reject(ctx, key, dao.ErrNoSigner)
	}

	if member && !c.View().IsMember() {
		return "", c.reject(ctx, key, dao.ErrNotMember)
	}

	token, err := c.begin(s, key)
	if err != nil {
		return "", c.reject(ctx, key, err)
	}
	defer c.apply(nil, ActionFinished{Key: key, Token: token})

	tx, err := c.send(ctx, s, submit)
	if err == nil {
		// once submitted the request may go away, the key stays claimed until the receipt
		ctx = c.ctx
		err = s.provider.WaitForTx(ctx, tx)
	}
	metrics.ObserveTx(action, err)
	if err != nil {
		aerr := dao.NewActionError(key, token, comm.RevertReason(err), err)
		log.Default().Println(key, "failed:", err)
		c.notifier.NotifyError(ctx, aerr)
		return token, aerr
	}

	log.Default().Println(key, "confirmed")

	c.FetchAllProposals(ctx)

	c.notifier.Notify(ctx, done)

	return token, nil
}

// send signs and submits, it does not wait for the receipt.
func (c *Controller) send(ctx context.Context, s *session, submit submitFunc) (*types.Transaction, error) {
	opts, err := s.signer.TransactOpts(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := submit(s, opts)
	if err != nil {
		return nil, err
	}

	log.Default().Println("tx submitted:", tx.Hash().Hex())

	return tx, nil
}

// begin claims key for a new request token, failing with dao.ErrBusy if it is taken.
func (c *Controller) begin(s *session, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sess != s {
		return "", dao.ErrNotConnected
	}

	if c.view.IsPending(key) {
		return "", dao.ErrBusy
	}

	token := uuid.NewString()
	c.view = Reduce(c.view, ActionStarted{Key: key, Token: token})

	return token, nil
}

// reject publishes a warning for a request that never reached the chain.
func (c *Controller) reject(ctx context.Context, key string, err error) error {
	c.notifier.NotifyWarning(ctx, dao.NewActionError(key, "", err.Error(), err))
	return err
}

type discard struct{}

func (discard) Notify(ctx context.Context, message string) error          { return nil }
func (discard) NotifyWarning(ctx context.Context, errorMessage error) error { return nil }
func (discard) NotifyError(ctx context.Context, errorMessage error) error   { return nil }
