package dashboard

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/govdao/dashboard/internal/notice"
	"github.com/govdao/dashboard/pkg/dao"
	"github.com/stretchr/testify/require"
)

func connected(t *testing.T, f *fixture) (*Controller, *notice.Board) {
	board := notice.NewBoard(50)
	c := f.controller(board)
	require.NoError(t, c.ConnectWallet(context.Background()))
	return c, board
}

func TestConnectWallet(t *testing.T) {
	f := newFixture(3)
	c, _ := connected(t, f)

	v := c.View()
	require.True(t, v.Connected)
	require.True(t, v.CanSign)
	require.Equal(t, account, v.Account)
	require.Equal(t, int64(5), v.ChainID)
	require.Equal(t, big.NewInt(2e18), v.TreasuryBalance)
	require.Equal(t, big.NewInt(1), v.MembershipBalance)
	require.Equal(t, int64(3), v.ProposalCount)
	require.Equal(t, TabNone, v.Tab)
}

func TestConnectWrongNetwork(t *testing.T) {
	f := newFixture(3)
	f.provider.chainID = big.NewInt(1)

	board := notice.NewBoard(10)
	c := f.controller(board)

	err := c.ConnectWallet(context.Background())
	require.ErrorIs(t, err, dao.ErrWrongNetwork)

	require.False(t, c.View().Connected)
	require.True(t, f.provider.closed)

	n, ok := board.Latest()
	require.True(t, ok)
	require.Equal(t, dao.NoticeLevelError, n.Level)
	require.Equal(t, "Please switch to the Goerli network!", n.Message)
}

func TestRequireNetwork(t *testing.T) {
	f := newFixture(0)
	c := f.controller(nil)

	require.NoError(t, c.RequireNetwork(context.Background(), &mockProvider{chainID: big.NewInt(5)}))
	require.ErrorIs(t, c.RequireNetwork(context.Background(), &mockProvider{chainID: big.NewInt(137)}), dao.ErrWrongNetwork)
}

func TestConnectWalletRejected(t *testing.T) {
	f := newFixture(3)
	f.wallet.err = errors.New("user rejected the request")

	board := notice.NewBoard(10)
	c := f.controller(board)

	require.Error(t, c.ConnectWallet(context.Background()))
	require.Equal(t, View{}, c.View())

	n, ok := board.Latest()
	require.True(t, ok)
	require.Equal(t, "connect", n.Action)
	require.Equal(t, "user rejected the request", n.Message)
}

func TestReconnectWrongNetworkKeepsState(t *testing.T) {
	f := newFixture(2)
	c, _ := connected(t, f)
	before := c.View()

	other := &mockProvider{chainID: big.NewInt(1)}
	f.wallet.conn = &dao.Connection{Provider: other, Signer: f.signer}

	require.ErrorIs(t, c.ConnectWallet(context.Background()), dao.ErrWrongNetwork)
	require.Equal(t, before, c.View())
	require.False(t, f.provider.closed)
}

func TestReconnectOtherAccountDoesNotKeepMembership(t *testing.T) {
	f := newFixture(2)
	c, _ := connected(t, f)
	require.True(t, c.View().CanParticipate())

	other := &mockSigner{addr: common.HexToAddress("0x00000000000000000000000000000000000000aa")}
	f.wallet.conn = &dao.Connection{Provider: f.provider, Signer: other}
	f.mem.err = errors.New("rpc down")

	require.NoError(t, c.ConnectWallet(context.Background()))

	v := c.View()
	require.Equal(t, other.addr, v.Account)
	require.Nil(t, v.MembershipBalance)
	require.False(t, v.CanParticipate())

	_, err := c.VoteOnProposal(context.Background(), 0, dao.VoteYes)
	require.ErrorIs(t, err, dao.ErrNotMember)
}

func TestReadsKeepCachedValues(t *testing.T) {
	f := newFixture(3)
	c, _ := connected(t, f)

	f.gov.mu.Lock()
	f.gov.countErr = errors.New("timeout")
	f.gov.mu.Unlock()

	n, err := c.ProposalCount(context.Background())
	require.Error(t, err)
	require.Equal(t, int64(3), n)

	f.provider.mu.Lock()
	f.provider.balanceErr = errors.New("timeout")
	f.provider.mu.Unlock()

	bal, err := c.TreasuryBalance(context.Background())
	require.Error(t, err)
	require.Equal(t, big.NewInt(2e18), bal)

	f.mem.err = errors.New("timeout")
	mbal, err := c.MembershipBalance(context.Background(), account)
	require.Error(t, err)
	require.Equal(t, big.NewInt(1), mbal)

	require.Equal(t, int64(3), c.View().ProposalCount)
}

func TestProposalCountOutOfRange(t *testing.T) {
	f := newFixture(3)
	c, _ := connected(t, f)

	f.gov.mu.Lock()
	f.gov.count = 1 << 40
	f.gov.mu.Unlock()

	n, err := c.ProposalCount(context.Background())
	require.ErrorIs(t, err, ErrCountOutOfRange)
	require.Equal(t, int64(3), n)

	require.Len(t, c.FetchAllProposals(context.Background()), 3)
	require.Equal(t, int64(3), c.View().ProposalCount)
}

func TestViewIsACopy(t *testing.T) {
	f := newFixture(2)
	c, _ := connected(t, f)
	c.FetchAllProposals(context.Background())

	v := c.View()
	v.Proposals[0].Content = "changed"
	v.Proposals[0].YesVotes.SetInt64(99)
	v.TreasuryBalance.SetInt64(0)
	v.MembershipBalance.SetInt64(0)

	fresh := c.View()
	require.Equal(t, "proposal", fresh.Proposals[0].Content)
	require.Equal(t, big.NewInt(0), fresh.Proposals[0].YesVotes)
	require.Equal(t, big.NewInt(2e18), fresh.TreasuryBalance)
	require.True(t, fresh.IsMember())
}

func TestReadsNotConnected(t *testing.T) {
	c := newFixture(1).controller(nil)

	_, err := c.ProposalCount(context.Background())
	require.ErrorIs(t, err, dao.ErrNotConnected)

	_, err = c.TreasuryBalance(context.Background())
	require.ErrorIs(t, err, dao.ErrNotConnected)

	require.Nil(t, c.FetchProposal(context.Background(), 0))
	require.Empty(t, c.FetchAllProposals(context.Background()))
}

func TestFetchProposal(t *testing.T) {
	f := newFixture(2)
	c, _ := connected(t, f)

	p := c.FetchProposal(context.Background(), 1)
	require.NotNil(t, p)
	require.Equal(t, int64(1), p.ID)

	require.Nil(t, c.FetchProposal(context.Background(), 9))
}

func TestFetchAllProposalsKeepsOrder(t *testing.T) {
	f := newFixture(10)
	// later indices finish first
	f.gov.delay = func(id int64) time.Duration {
		return time.Duration(10-id) * time.Millisecond
	}

	c, _ := connected(t, f)

	ps := c.FetchAllProposals(context.Background())
	require.Len(t, ps, 10)
	for i, p := range ps {
		require.Equal(t, int64(i), p.ID)
	}

	require.Equal(t, ps, c.View().Proposals)
}

func TestFetchAllProposalsOmitsFailures(t *testing.T) {
	f := newFixture(6)
	delete(f.gov.proposals, 1)
	delete(f.gov.proposals, 4)

	c, _ := connected(t, f)

	ps := c.FetchAllProposals(context.Background())

	ids := []int64{}
	for _, p := range ps {
		ids = append(ids, p.ID)
	}
	require.Equal(t, []int64{0, 2, 3, 5}, ids)
}

func TestFetchAllProposalsFallsBackToCachedCount(t *testing.T) {
	f := newFixture(2)
	c, _ := connected(t, f)

	f.gov.mu.Lock()
	f.gov.countErr = errors.New("timeout")
	f.gov.mu.Unlock()

	require.Len(t, c.FetchAllProposals(context.Background()), 2)
}

func TestSelectTab(t *testing.T) {
	f := newFixture(2)

	c := f.controller(nil)
	require.ErrorIs(t, c.SelectTab(context.Background(), TabCreateProposal), dao.ErrNotConnected)

	require.NoError(t, c.ConnectWallet(context.Background()))

	require.ErrorIs(t, c.SelectTab(context.Background(), Tab("settings")), dao.ErrInvalidTab)

	require.NoError(t, c.SelectTab(context.Background(), TabCreateProposal))
	require.Equal(t, TabCreateProposal, c.View().Tab)
	require.Empty(t, c.View().Proposals)

	require.NoError(t, c.SelectTab(context.Background(), TabViewProposals))
	require.Equal(t, TabViewProposals, c.View().Tab)
	require.Len(t, c.View().Proposals, 2)
}

func TestVoteEncodingRejectedBeforeCall(t *testing.T) {
	f := newFixture(2)
	c, board := connected(t, f)

	_, err := c.VoteOnProposal(context.Background(), 1, dao.Vote("MAYBE"))
	require.ErrorIs(t, err, dao.ErrInvalidVote)
	require.Empty(t, f.gov.votes)
	require.Equal(t, int32(0), f.signer.calls.Load())

	n, ok := board.Latest()
	require.True(t, ok)
	require.Equal(t, dao.NoticeLevelWarning, n.Level)
	require.Equal(t, "vote:1", n.Action)
}

func TestVote(t *testing.T) {
	f := newFixture(2)
	c, board := connected(t, f)

	token, err := c.VoteOnProposal(context.Background(), 1, dao.VoteNo)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	require.Equal(t, []vote{{1, dao.VoteNo}}, f.gov.votes)
	require.Empty(t, c.View().Pending)
	require.Len(t, c.View().Proposals, 2)

	n, _ := board.Latest()
	require.Equal(t, "Vote on proposal 1 confirmed", n.Message)
}

func TestNotMemberCannotParticipate(t *testing.T) {
	f := newFixture(2)
	f.mem.balance = big.NewInt(0)

	c, _ := connected(t, f)

	_, err := c.CreateProposal(context.Background(), dao.ProposalRequest{
		Content:   "paint the gallery",
		Amount:    big.NewInt(1),
		Recipient: account,
	})
	require.ErrorIs(t, err, dao.ErrNotMember)

	_, err = c.VoteOnProposal(context.Background(), 0, dao.VoteYes)
	require.ErrorIs(t, err, dao.ErrNotMember)

	require.Empty(t, f.gov.created)
	require.Empty(t, f.gov.votes)

	// executing does not need membership
	_, err = c.ExecuteProposal(context.Background(), 0)
	require.NoError(t, err)
	require.Equal(t, []int64{0}, f.gov.executed)
}

func TestReadOnlyCannotSign(t *testing.T) {
	f := newFixture(1)
	f.wallet.conn = &dao.Connection{Provider: f.provider}

	c, _ := connected(t, f)
	require.False(t, c.View().CanSign)
	require.Equal(t, common.Address{}, c.View().Account)

	_, err := c.ExecuteProposal(context.Background(), 0)
	require.ErrorIs(t, err, dao.ErrNoSigner)
}

func TestNotConnectedWrites(t *testing.T) {
	c := newFixture(1).controller(nil)

	_, err := c.ExecuteProposal(context.Background(), 0)
	require.ErrorIs(t, err, dao.ErrNotConnected)
}

func TestCreateProposalRefreshes(t *testing.T) {
	f := newFixture(1)
	c, board := connected(t, f)

	_, err := c.CreateProposal(context.Background(), dao.ProposalRequest{Content: ""})
	require.ErrorIs(t, err, dao.ErrInvalidProposal)

	req := dao.ProposalRequest{
		Content:   "buy a projector",
		Amount:    big.NewInt(5e17),
		Recipient: common.HexToAddress("0x5815E61eF72c9E6107b5c5A05FD121F334f7a7f1"),
	}

	_, err = c.CreateProposal(context.Background(), req)
	require.NoError(t, err)

	require.Equal(t, []dao.ProposalRequest{req}, f.gov.created)

	v := c.View()
	require.Equal(t, int64(2), v.ProposalCount)
	require.Len(t, v.Proposals, 2)
	require.Equal(t, "buy a projector", v.Proposals[1].Content)
	require.False(t, v.IsPending(KeyCreate))

	n, _ := board.Latest()
	require.Equal(t, "Proposal created", n.Message)
}

func TestTransactionFailure(t *testing.T) {
	f := newFixture(2)
	f.provider.waitErr = errors.New("execution reverted: Voting period has ended")

	c, board := connected(t, f)

	token, err := c.VoteOnProposal(context.Background(), 0, dao.VoteYes)
	require.Error(t, err)

	var aerr *dao.ActionError
	require.True(t, errors.As(err, &aerr))
	require.Equal(t, "Voting period has ended", aerr.Reason)
	require.Equal(t, token, aerr.Token)

	require.False(t, c.View().IsPending(VoteKey(0)))

	n, _ := board.Latest()
	require.Equal(t, dao.NoticeLevelError, n.Level)
	require.Equal(t, "vote:0", n.Action)
	require.Equal(t, token, n.Token)
	require.Equal(t, "Voting period has ended", n.Message)
}

func TestSubmitFailure(t *testing.T) {
	f := newFixture(2)
	f.gov.submitErr = errors.New("insufficient funds for gas * price + value")

	c, _ := connected(t, f)

	_, err := c.ExecuteProposal(context.Background(), 1)
	require.ErrorContains(t, err, "insufficient funds")
	require.Empty(t, c.View().Pending)
}

func TestDuplicateActionIsBusy(t *testing.T) {
	f := newFixture(3)
	f.provider.release = make(chan struct{})

	c, _ := connected(t, f)
	c.FetchAllProposals(context.Background())

	var wg sync.WaitGroup
	errs := make([]error, 2)

	wg.Add(1)
	go func() {
		defer wg.Done()
		_, errs[0] = c.VoteOnProposal(context.Background(), 1, dao.VoteYes)
	}()

	require.Eventually(t, func() bool { return c.View().IsPending(VoteKey(1)) }, time.Second, time.Millisecond)

	_, err := c.VoteOnProposal(context.Background(), 1, dao.VoteNo)
	require.ErrorIs(t, err, dao.ErrBusy)

	// a different proposal is not blocked
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, errs[1] = c.VoteOnProposal(context.Background(), 2, dao.VoteNo)
	}()

	require.Eventually(t, func() bool { return c.View().IsPending(VoteKey(2)) }, time.Second, time.Millisecond)

	page := c.Render(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))
	require.False(t, page.Proposals[0].Busy)
	require.True(t, page.Proposals[0].CanVote)
	require.True(t, page.Proposals[1].Busy)
	require.False(t, page.Proposals[1].CanVote)
	require.True(t, page.Proposals[2].Busy)

	close(f.provider.release)
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	require.Empty(t, c.View().Pending)

	f.gov.mu.Lock()
	defer f.gov.mu.Unlock()
	require.Len(t, f.gov.votes, 2)
}

func TestCancelledRequestKeepsWaiting(t *testing.T) {
	f := newFixture(3)
	f.provider.release = make(chan struct{})

	c, board := connected(t, f)
	defer c.Close()

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := c.VoteOnProposal(ctx, 1, dao.VoteYes)
		done <- err
	}()

	require.Eventually(t, func() bool {
		f.gov.mu.Lock()
		defer f.gov.mu.Unlock()
		return len(f.gov.votes) == 1
	}, time.Second, time.Millisecond)

	cancel()

	// the submitted vote still holds its key
	time.Sleep(20 * time.Millisecond)
	require.True(t, c.View().IsPending(VoteKey(1)))

	_, err := c.VoteOnProposal(context.Background(), 1, dao.VoteNo)
	require.ErrorIs(t, err, dao.ErrBusy)

	close(f.provider.release)
	require.NoError(t, <-done)

	require.Empty(t, c.View().Pending)
	require.Len(t, c.View().Proposals, 3)
	latest, ok := board.Latest()
	require.True(t, ok)
	require.Equal(t, "Vote on proposal 1 confirmed", latest.Message)
}

func TestCloseAbandonsWait(t *testing.T) {
	f := newFixture(1)
	f.provider.release = make(chan struct{})

	c, _ := connected(t, f)

	done := make(chan error, 1)
	go func() {
		_, err := c.VoteOnProposal(context.Background(), 0, dao.VoteYes)
		done <- err
	}()

	require.Eventually(t, func() bool { return c.View().IsPending(VoteKey(0)) }, time.Second, time.Millisecond)

	c.Close()

	require.ErrorIs(t, <-done, context.Canceled)
}

func TestDisconnect(t *testing.T) {
	f := newFixture(2)
	c, _ := connected(t, f)

	c.FetchAllProposals(context.Background())
	c.Disconnect()

	require.Equal(t, View{}, c.View())
	require.True(t, f.provider.closed)

	_, err := c.VoteOnProposal(context.Background(), 0, dao.VoteYes)
	require.ErrorIs(t, err, dao.ErrNotConnected)
}
