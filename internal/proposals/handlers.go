package proposals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/govdao/dashboard/internal/common"
	"github.com/govdao/dashboard/internal/dashboard"
	"github.com/govdao/dashboard/pkg/dao"
)

var errInvalidID = errors.New("invalid proposal id")

type Controller interface {
	View() dashboard.View
	FetchProposal(ctx context.Context, id int64) *dao.Proposal
	FetchAllProposals(ctx context.Context) []dao.Proposal

	CreateProposal(ctx context.Context, req dao.ProposalRequest) (string, error)
	VoteOnProposal(ctx context.Context, id int64, vote dao.Vote) (string, error)
	ExecuteProposal(ctx context.Context, id int64) (string, error)
}

type Service struct {
	ctrl Controller
}

func NewService(ctrl Controller) *Service {
	return &Service{ctrl: ctrl}
}

type listMeta struct {
	Count int64 `json:"count"`
}

type actionResponse struct {
	Token string `json:"token"`
}

// List returns the cached proposals, or refetches them with ?refresh=true
func (s *Service) List(w http.ResponseWriter, r *http.Request) {
	var ps []dao.Proposal
	if refresh, _ := strconv.ParseBool(r.URL.Query().Get("refresh")); refresh {
		ps = s.ctrl.FetchAllProposals(r.Context())
	} else {
		ps = s.ctrl.View().Proposals
	}

	if ps == nil {
		ps = []dao.Proposal{}
	}

	err := common.BodyMultiple(w, ps, &listMeta{Count: s.ctrl.View().ProposalCount})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// Get reads a single proposal from the chain
func (s *Service) Get(w http.ResponseWriter, r *http.Request) {
	id, err := proposalID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p := s.ctrl.FetchProposal(r.Context(), id)
	if p == nil {
		http.Error(w, "proposal not found", http.StatusNotFound)
		return
	}

	err = common.Body(w, p, nil)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}

type createRequest struct {
	Content   string `json:"content"`
	Amount    string `json:"amount"`
	Recipient string `json:"recipient"`
}

// Create submits a new proposal. The amount is given in ETH.
func (s *Service) Create(w http.ResponseWriter, r *http.Request) {
	var body createRequest
	if common.IsForm(r) {
		body.Content = r.FormValue("content")
		body.Amount = r.FormValue("amount")
		body.Recipient = r.FormValue("recipient")
	} else if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	// unparseable fields are left empty so the controller rejects the request with a notice
	req := dao.ProposalRequest{Content: strings.TrimSpace(body.Content)}
	if amount, err := common.ParseEther(body.Amount); err == nil {
		req.Amount = amount
	}
	if recipient, err := common.ParseAddress(body.Recipient); err == nil {
		req.Recipient = recipient
	}

	token, err := s.ctrl.CreateProposal(r.Context(), req)
	if err != nil {
		common.Fail(w, r, err)
		return
	}

	common.Done(w, r, &actionResponse{Token: token})
}

type voteRequest struct {
	Vote string `json:"vote"`
}

// Vote casts YES or NO on a proposal
func (s *Service) Vote(w http.ResponseWriter, r *http.Request) {
	id, err := proposalID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var body voteRequest
	if common.IsForm(r) {
		body.Vote = r.FormValue("vote")
	} else if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	token, err := s.ctrl.VoteOnProposal(r.Context(), id, dao.Vote(strings.ToUpper(strings.TrimSpace(body.Vote))))
	if err != nil {
		common.Fail(w, r, err)
		return
	}

	common.Done(w, r, &actionResponse{Token: token})
}

// Execute executes a proposal whose voting period is over
func (s *Service) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := proposalID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, err := s.ctrl.ExecuteProposal(r.Context(), id)
	if err != nil {
		common.Fail(w, r, err)
		return
	}

	common.Done(w, r, &actionResponse{Token: token})
}

func proposalID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 0 {
		return 0, errInvalidID
	}

	return id, nil
}
