package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/govdao/dashboard/internal/common"
	"github.com/govdao/dashboard/internal/dashboard"
	"github.com/govdao/dashboard/internal/storage"
	"github.com/govdao/dashboard/pkg/dao"
	"github.com/spf13/cobra"
)

var errInvalidID = errors.New("invalid proposal id")

type connectFunc func(cmd *cobra.Command) (*dashboard.Controller, error)

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("%w: %q", errInvalidID, s)
	}

	return id, nil
}

func statusCmd(connect connectFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the account, treasury and proposal count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := connect(cmd)
			if err != nil {
				return err
			}
			defer ctrl.Close()

			p := ctrl.Render(time.Now())
			out := cmd.OutOrStdout()

			account := p.Account
			if !p.CanSign {
				account = "read-only"
			}

			fmt.Fprintf(out, "network:     %s\n", p.Network)
			fmt.Fprintf(out, "account:     %s\n", account)
			fmt.Fprintf(out, "membership:  %s\n", p.MembershipBalance)
			fmt.Fprintf(out, "treasury:    %s ETH\n", p.TreasuryBalance)
			fmt.Fprintf(out, "proposals:   %d\n", p.ProposalCount)

			if p.CanSign && p.NotMemberMessage != "" {
				fmt.Fprintln(out, p.NotMemberMessage)
			}

			return nil
		},
	}
}

func proposalsCmd(connect connectFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "proposals",
		Short: "List every proposal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := connect(cmd)
			if err != nil {
				return err
			}
			defer ctrl.Close()

			ctrl.FetchAllProposals(cmd.Context())

			p := ctrl.Render(time.Now())
			out := cmd.OutOrStdout()

			if len(p.Proposals) == 0 {
				fmt.Fprintln(out, dashboard.MessageNoProposals)
				return nil
			}

			for i, c := range p.Proposals {
				if i > 0 {
					fmt.Fprintln(out)
				}
				printCard(out, c)
			}

			return nil
		},
	}
}

func proposalCmd(connect connectFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "proposal <id>",
		Short: "Show a single proposal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctrl, err := connect(cmd)
			if err != nil {
				return err
			}
			defer ctrl.Close()

			prop := ctrl.FetchProposal(cmd.Context(), id)
			if prop == nil {
				return fmt.Errorf("proposal %d not found", id)
			}

			v := ctrl.View()
			v.Proposals = []dao.Proposal{*prop}

			p := dashboard.Render(v, dao.Network{}, time.Now())

			printCard(cmd.OutOrStdout(), p.Proposals[0])

			return nil
		},
	}
}

func proposeCmd(connect connectFunc) *cobra.Command {
	var content, amount, recipient string

	cmd := &cobra.Command{
		Use:   "propose",
		Short: "Create a proposal to pay an amount of ETH from the treasury",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wei, err := common.ParseEther(amount)
			if err != nil {
				return err
			}

			to, err := common.ParseAddress(recipient)
			if err != nil {
				return err
			}

			req := dao.ProposalRequest{Content: content, Amount: wei, Recipient: to}
			if err := req.Validate(); err != nil {
				return err
			}

			ctrl, err := connect(cmd)
			if err != nil {
				return err
			}
			defer ctrl.Close()

			token, err := ctrl.CreateProposal(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "proposal created (%s)\n", token)

			return nil
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "description of the proposal")
	cmd.Flags().StringVar(&amount, "amount", "", "amount of ETH to pay out")
	cmd.Flags().StringVar(&recipient, "recipient", "", "address receiving the amount")

	cmd.MarkFlagRequired("content")
	cmd.MarkFlagRequired("amount")
	cmd.MarkFlagRequired("recipient")

	return cmd
}

func voteCmd(connect connectFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "vote <id> yes|no",
		Short: "Vote on a proposal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			vote, err := dao.ParseVote(args[1])
			if err != nil {
				return err
			}

			ctrl, err := connect(cmd)
			if err != nil {
				return err
			}
			defer ctrl.Close()

			token, err := ctrl.VoteOnProposal(cmd.Context(), id, vote)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "voted %s on proposal %d (%s)\n", vote, id, token)

			return nil
		},
	}
}

func executeCmd(connect connectFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "execute <id>",
		Short: "Execute a proposal whose deadline has passed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctrl, err := connect(cmd)
			if err != nil {
				return err
			}
			defer ctrl.Close()

			token, err := ctrl.ExecuteProposal(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "proposal %d executed (%s)\n", id, token)

			return nil
		},
	}
}

func keygenCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a development private key for WALLET=key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pk, address, err := common.GenerateHexPrivateKey()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			if out == "" {
				fmt.Fprintf(w, "private key: %s\n", pk)
				fmt.Fprintf(w, "address: %s\n", address.Hex())
				return nil
			}

			if err := storage.Save(out, []byte(pk+"\n"), 0600); err != nil {
				return err
			}

			fmt.Fprintf(w, "private key written to %s\n", out)
			fmt.Fprintf(w, "address: %s\n", address.Hex())

			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write the key to a new file instead of stdout")

	return cmd
}

func printCard(w io.Writer, c dashboard.ProposalCard) {
	fmt.Fprintf(w, "#%d %s\n", c.ID, c.Content)
	fmt.Fprintf(w, "  pays %s ETH to %s\n", c.Amount, c.Recipient)
	fmt.Fprintf(w, "  deadline %s (%s)\n", c.Deadline.Local().Format(time.RFC1123), c.DeadlineText)
	fmt.Fprintf(w, "  yes %s, no %s, executed %t\n", c.YesVotes, c.NoVotes, c.Executed)

	switch c.Action {
	case dao.ActionVote:
		fmt.Fprintln(w, "  open for voting")
	case dao.ActionExecute:
		fmt.Fprintf(w, "  ready to execute (%s)\n", c.Outcome)
	default:
		fmt.Fprintln(w, "  proposal finished")
	}
}
