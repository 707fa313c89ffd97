package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/govdao/dashboard/internal/config"
	"github.com/govdao/dashboard/internal/dashboard"
	"github.com/govdao/dashboard/internal/notice"
	"github.com/govdao/dashboard/internal/services/contracts"
	"github.com/govdao/dashboard/internal/services/webhook"
	"github.com/govdao/dashboard/internal/wallet"
	"github.com/govdao/dashboard/pkg/dao"
	"github.com/govdao/dashboard/pkg/router"
)

const noticeBoardSize = 50

func main() {
	log.Default().Println("launching dashboard...")

	env := flag.String("env", "", "path to .env file")

	confpath := flag.String("config", ".", "directory containing dao.json")

	port := flag.Int("port", 3000, "port to listen on")

	notify := flag.Bool("notify", true, "enable webhook notifications")

	connect := flag.Bool("connect", false, "connect the wallet on startup")

	flag.Parse()

	ctx := context.Background()

	conf, err := config.New(ctx, *env, *confpath)
	if err != nil {
		log.Fatal(err)
	}

	if conf.SentryURL != "" && conf.SentryURL != "x" {
		err = sentry.Init(sentry.ClientOptions{
			Dsn:              conf.SentryURL,
			TracesSampleRate: 1.0,
		})
		if err != nil {
			log.Fatalf("sentry.Init: %s", err)
		}
		// Flush buffered events before the program terminates.
		defer sentry.Flush(2 * time.Second)
	}

	board := notice.NewBoard(noticeBoardSize)

	var n dao.Notifier = board
	if conf.DiscordURL != "" {
		log.Default().Println("forwarding errors to webhook...")
		n = notice.Multi{board, notice.ErrorsOnly{Notifier: webhook.NewMessager(conf.DiscordURL, conf.NetworkName(), *notify)}}
	}

	log.Default().Println("wallet: ", conf.Wallet)

	w, err := wallet.New(conf.WalletOptions())
	if err != nil {
		log.Fatal(err)
	}

	ctrl := dashboard.NewController(w, n, dashboard.Options{
		DAO:              conf.DAO.DAOAddress(),
		Network:          conf.DAO.Network,
		Binder:           contracts.NewBinder(conf.DAO.DAOAddress(), conf.DAO.MembershipAddress()),
		FetchConcurrency: conf.FetchConcurrency,
	})
	defer ctrl.Close()

	if *connect {
		log.Default().Println("connecting wallet...")

		// failures are already on the notice board, the page can retry
		if err := ctrl.ConnectWallet(ctx); err == nil {
			log.Default().Println("connected: ", ctrl.View().Account.Hex())
		}
	}

	quitAck := make(chan error)

	api := router.NewServer(conf.APIKey, conf.DAO.Network, ctrl, board)

	go func() {
		quitAck <- api.Start(*port)
	}()

	log.Default().Println("listening on port: ", *port)

	for err := range quitAck {
		if err != nil {
			n.NotifyError(ctx, err)
			sentry.CaptureException(err)
			log.Fatal(err)
		}
	}
}
