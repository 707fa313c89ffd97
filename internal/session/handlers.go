package session

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/govdao/dashboard/internal/common"
	"github.com/govdao/dashboard/internal/dashboard"
)

type Controller interface {
	ConnectWallet(ctx context.Context) error
	Disconnect()
	SelectTab(ctx context.Context, tab dashboard.Tab) error
	View() dashboard.View
	Render(now time.Time) dashboard.Page
}

type Service struct {
	ctrl Controller
}

func NewService(ctrl Controller) *Service {
	return &Service{ctrl: ctrl}
}

type state struct {
	View dashboard.View `json:"view"`
	Page dashboard.Page `json:"page"`
}

// Connect connects the configured wallet
func (s *Service) Connect(w http.ResponseWriter, r *http.Request) {
	err := s.ctrl.ConnectWallet(r.Context())
	if err != nil {
		common.Fail(w, r, err)
		return
	}

	common.Done(w, r, s.state())
}

// Disconnect drops the wallet connection
func (s *Service) Disconnect(w http.ResponseWriter, r *http.Request) {
	s.ctrl.Disconnect()

	common.Done(w, r, s.state())
}

// State returns the current view and the page derived from it
func (s *Service) State(w http.ResponseWriter, r *http.Request) {
	err := common.Body(w, s.state(), nil)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}

type tabRequest struct {
	Tab string `json:"tab"`
}

// Tab selects a dashboard tab
func (s *Service) Tab(w http.ResponseWriter, r *http.Request) {
	var body tabRequest
	if common.IsForm(r) {
		body.Tab = r.FormValue("tab")
	} else if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	tab, err := dashboard.ParseTab(body.Tab)
	if err != nil {
		common.Fail(w, r, err)
		return
	}

	err = s.ctrl.SelectTab(r.Context(), tab)
	if err != nil {
		common.Fail(w, r, err)
		return
	}

	common.Done(w, r, s.state())
}

func (s *Service) state() *state {
	return &state{View: s.ctrl.View(), Page: s.ctrl.Render(time.Now())}
}
