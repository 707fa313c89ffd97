package wallet

import (
	"context"
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/external"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	comm "github.com/govdao/dashboard/internal/common"
	"github.com/govdao/dashboard/pkg/dao"
)

// keySigner signs with a raw private key. Development only.
type keySigner struct {
	key      *ecdsa.PrivateKey
	address  common.Address
	provider dao.Provider
}

func newKeySigner(hexKey string, provider dao.Provider) (*keySigner, error) {
	key, err := comm.HexToPrivateKey(hexKey)
	if err != nil {
		return nil, err
	}

	return &keySigner{
		key:      key,
		address:  crypto.PubkeyToAddress(key.PublicKey),
		provider: provider,
	}, nil
}

func (s *keySigner) Address() common.Address {
	return s.address
}

func (s *keySigner) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	chainID, err := s.provider.ChainID(ctx)
	if err != nil {
		return nil, err
	}

	opts, err := bind.NewKeyedTransactorWithChainID(s.key, chainID)
	if err != nil {
		return nil, err
	}

	opts.Context = ctx

	return opts, nil
}

// keystoreSigner signs with an unlocked account of an encrypted keystore directory.
type keystoreSigner struct {
	ks       *keystore.KeyStore
	account  accounts.Account
	provider dao.Provider
}

func newKeystoreSigner(dir, passphrase, want string, provider dao.Provider) (*keystoreSigner, error) {
	ks := keystore.NewKeyStore(dir, keystore.StandardScryptN, keystore.StandardScryptP)

	account, err := selectAccount(ks.Accounts(), want)
	if err != nil {
		return nil, err
	}

	if err := ks.Unlock(account, passphrase); err != nil {
		return nil, err
	}

	return &keystoreSigner{ks: ks, account: account, provider: provider}, nil
}

func (s *keystoreSigner) Address() common.Address {
	return s.account.Address
}

func (s *keystoreSigner) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	chainID, err := s.provider.ChainID(ctx)
	if err != nil {
		return nil, err
	}

	opts, err := bind.NewKeyStoreTransactorWithChainID(s.ks, s.account, chainID)
	if err != nil {
		return nil, err
	}

	opts.Context = ctx

	return opts, nil
}

// clefSigner forwards every signature request to an external clef instance,
// which prompts its operator for approval.
type clefSigner struct {
	clef    *external.ExternalSigner
	account accounts.Account
}

func newClefSigner(endpoint, want string) (*clefSigner, error) {
	clef, err := external.NewExternalSigner(endpoint)
	if err != nil {
		return nil, err
	}

	account, err := selectAccount(clef.Accounts(), want)
	if err != nil {
		return nil, err
	}

	return &clefSigner{clef: clef, account: account}, nil
}

func (s *clefSigner) Address() common.Address {
	return s.account.Address
}

func (s *clefSigner) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	opts := bind.NewClefTransactor(s.clef, s.account)
	opts.Context = ctx

	return opts, nil
}
