// Command govctl drives the governance contract from a terminal with the
// same controller the dashboard uses.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/govdao/dashboard/internal/config"
	"github.com/govdao/dashboard/internal/dashboard"
	"github.com/govdao/dashboard/internal/services/contracts"
	"github.com/govdao/dashboard/internal/wallet"
	"github.com/govdao/dashboard/pkg/dao"
	"github.com/spf13/cobra"
)

const appName = "govctl"

func main() {
	if err := rootCmd(openController).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	envPath  string
	confPath string
}

// opener builds an unconnected controller. Notices go to errOut.
type opener func(ctx context.Context, opts options, errOut io.Writer) (*dashboard.Controller, error)

func openController(ctx context.Context, opts options, errOut io.Writer) (*dashboard.Controller, error) {
	conf, err := config.New(ctx, opts.envPath, opts.confPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	w, err := wallet.New(conf.WalletOptions())
	if err != nil {
		return nil, err
	}

	return dashboard.NewController(w, &printer{out: errOut}, dashboard.Options{
		DAO:              conf.DAO.DAOAddress(),
		Network:          conf.DAO.Network,
		Binder:           contracts.NewBinder(conf.DAO.DAOAddress(), conf.DAO.MembershipAddress()),
		FetchConcurrency: conf.FetchConcurrency,
	}), nil
}

func rootCmd(open opener) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   appName,
		Short: "GOV.DAO governance from the command line",
		Long: `govctl reads the treasury, membership and proposals of a GOV.DAO
governance contract and submits proposals, votes and executions.

Contract addresses and the expected network are read from dao.json,
the wallet is configured through the environment (WALLET, WALLET_KEY,
KEYSTORE_PATH, CLEF_URL, ...).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.envPath, "env", "", "path to .env file")
	cmd.PersistentFlags().StringVar(&opts.confPath, "config", ".", "directory containing dao.json")

	// connect opens a controller and connects its wallet for a subcommand.
	connect := func(cmd *cobra.Command) (*dashboard.Controller, error) {
		ctrl, err := open(cmd.Context(), opts, cmd.ErrOrStderr())
		if err != nil {
			return nil, err
		}

		if err := ctrl.ConnectWallet(cmd.Context()); err != nil {
			return nil, err
		}

		return ctrl, nil
	}

	cmd.AddCommand(
		statusCmd(connect),
		proposalsCmd(connect),
		proposalCmd(connect),
		proposeCmd(connect),
		voteCmd(connect),
		executeCmd(connect),
		keygenCmd(),
	)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, dao.Version)
		},
	})

	return cmd
}
