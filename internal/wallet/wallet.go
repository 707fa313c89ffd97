// Package wallet hands out chain connections together with a signer for the
// configured account. Signing itself stays inside go-ethereum or clef.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/govdao/dashboard/internal/services/ethrequest"
	"github.com/govdao/dashboard/pkg/dao"
)

type Kind string

const (
	KindKey      Kind = "key"
	KindKeystore Kind = "keystore"
	KindClef     Kind = "clef"
	KindReadOnly Kind = "readonly"
)

var (
	ErrUnknownKind = errors.New("unknown wallet kind")
	ErrNoAccount   = errors.New("no account available")
	ErrMissingKey  = errors.New("wallet key is required")
)

// Dialer opens a provider for an RPC endpoint.
type Dialer func(ctx context.Context, endpoint string) (dao.Provider, error)

type Options struct {
	Kind   Kind
	RPCURL string

	// Account selects among several keystore or clef accounts. Empty picks the first.
	Account string

	Key string

	KeystorePath       string
	KeystorePassphrase string

	ClefURL string
}

type Wallet struct {
	opts Options
	dial Dialer
}

func New(opts Options) (*Wallet, error) {
	switch opts.Kind {
	case KindKey:
		if opts.Key == "" {
			return nil, ErrMissingKey
		}
	case KindKeystore:
		if opts.KeystorePath == "" {
			return nil, errors.New("keystore path is required")
		}
	case KindClef:
		if opts.ClefURL == "" {
			return nil, errors.New("clef url is required")
		}
	case KindReadOnly:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, opts.Kind)
	}

	return &Wallet{opts: opts, dial: ethrequest.Dial}, nil
}

// WithDialer replaces the RPC dialer.
func (w *Wallet) WithDialer(d Dialer) *Wallet {
	w.dial = d
	return w
}

func (w *Wallet) Kind() Kind {
	return w.opts.Kind
}

// Connect dials the node and unlocks the configured account.
func (w *Wallet) Connect(ctx context.Context) (*dao.Connection, error) {
	provider, err := w.dial(ctx, w.opts.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", w.opts.RPCURL, err)
	}

	signer, err := w.signer(provider)
	if err != nil {
		provider.Close()
		return nil, err
	}

	if signer != nil {
		log.Default().Println("wallet connected:", w.opts.Kind, signer.Address().Hex())
	} else {
		log.Default().Println("wallet connected: read only")
	}

	return &dao.Connection{Provider: provider, Signer: signer}, nil
}

func (w *Wallet) signer(provider dao.Provider) (dao.Signer, error) {
	switch w.opts.Kind {
	case KindKey:
		s, err := newKeySigner(w.opts.Key, provider)
		if err != nil {
			return nil, err
		}
		return s, nil
	case KindKeystore:
		s, err := newKeystoreSigner(w.opts.KeystorePath, w.opts.KeystorePassphrase, w.opts.Account, provider)
		if err != nil {
			return nil, err
		}
		return s, nil
	case KindClef:
		s, err := newClefSigner(w.opts.ClefURL, w.opts.Account)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, nil
	}
}

// selectAccount returns the account matching want, or the first one when want is empty.
func selectAccount(accs []accounts.Account, want string) (accounts.Account, error) {
	if len(accs) == 0 {
		return accounts.Account{}, ErrNoAccount
	}

	if strings.TrimSpace(want) == "" {
		return accs[0], nil
	}

	if !common.IsHexAddress(want) {
		return accounts.Account{}, fmt.Errorf("%w: %q", ErrNoAccount, want)
	}

	addr := common.HexToAddress(want)
	for _, acc := range accs {
		if acc.Address == addr {
			return acc, nil
		}
	}

	return accounts.Account{}, fmt.Errorf("%w: %s", ErrNoAccount, addr.Hex())
}
