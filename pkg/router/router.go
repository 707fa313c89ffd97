package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/govdao/dashboard/internal/auth"
	"github.com/govdao/dashboard/internal/dashboard"
	"github.com/govdao/dashboard/internal/notice"
	"github.com/govdao/dashboard/internal/notices"
	"github.com/govdao/dashboard/internal/page"
	"github.com/govdao/dashboard/internal/proposals"
	"github.com/govdao/dashboard/internal/session"
	"github.com/govdao/dashboard/internal/version"
	"github.com/govdao/dashboard/pkg/dao"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	apiKey  string
	network dao.Network
	ctrl    *dashboard.Controller
	board   *notice.Board
}

func NewServer(apiKey string, network dao.Network, ctrl *dashboard.Controller, board *notice.Board) *Router {
	return &Router{
		apiKey,
		network,
		ctrl,
		board,
	}
}

// Handler builds the routes of the dashboard
func (r *Router) Handler() (http.Handler, error) {
	cr := chi.NewRouter()

	a := auth.New(r.apiKey)

	// configure middleware
	cr.Use(middleware.RequestID)
	cr.Use(middleware.Logger)
	cr.Use(middleware.Recoverer)

	// configure custom middleware
	cr.Use(OptionsMiddleware)
	cr.Use(HealthMiddleware)
	cr.Use(RequestSizeLimitMiddleware(1 << 20)) // Limit request bodies to 1MB
	cr.Use(a.AuthMiddleware)

	// instantiate handlers
	pg, err := page.NewService(r.ctrl, r.board)
	if err != nil {
		return nil, err
	}

	se := session.NewService(r.ctrl)
	pr := proposals.NewService(r.ctrl)
	no := notices.NewService(r.board)
	v := version.NewService(r.network)

	// configure routes
	cr.Get("/", pg.Index)
	cr.Get("/static/*", pg.Static)
	cr.Get("/version", v.Current)
	cr.Handle("/metrics", promhttp.Handler())

	cr.Post("/connect", se.Connect)
	cr.Post("/disconnect", se.Disconnect)
	cr.Post("/tab", se.Tab)

	cr.Route("/proposals", func(cr chi.Router) {
		cr.Post("/", pr.Create)
		cr.Post("/{id}/vote", pr.Vote)
		cr.Post("/{id}/execute", pr.Execute)
	})

	cr.Route("/api", func(cr chi.Router) {
		cr.Get("/state", se.State)

		cr.Route("/proposals", func(cr chi.Router) {
			cr.Get("/", pr.List)
			cr.Get("/{id}", pr.Get)
		})

		cr.Route("/notices", func(cr chi.Router) {
			cr.Get("/", no.List)
			cr.Get("/stream", no.Stream)
		})
	})

	return cr, nil
}

// Start serves the dashboard until the listener fails
func (r *Router) Start(port int) error {
	h, err := r.Handler()
	if err != nil {
		return err
	}

	return http.ListenAndServe(fmt.Sprintf(":%v", port), h)
}
