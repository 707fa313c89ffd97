package config

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"

	"github.com/govdao/dashboard/internal/storage"
	"github.com/govdao/dashboard/internal/wallet"
	"github.com/govdao/dashboard/pkg/dao"
	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const ConfigFile = "dao.json"

type Config struct {
	RPCURL             string `env:"RPC_URL,default=http://localhost:8545"`
	Wallet             string `env:"WALLET,default=readonly"`
	WalletKey          string `env:"WALLET_KEY"`
	WalletAccount      string `env:"WALLET_ACCOUNT"`
	KeystorePath       string `env:"KEYSTORE_PATH"`
	KeystorePassphrase string `env:"KEYSTORE_PASSPHRASE"`
	ClefURL            string `env:"CLEF_URL,default=http://localhost:8550"`
	APIKey             string `env:"API_KEY"`
	SentryURL          string `env:"SENTRY_URL"`
	DiscordURL         string `env:"DISCORD_URL"`
	FetchConcurrency   int    `env:"FETCH_CONCURRENCY,default=4"`

	DAO *dao.Config
}

func New(ctx context.Context, envpath, confpath string) (*Config, error) {
	if envpath != "" {
		log.Default().Println("loading env from file: ", envpath)
		err := godotenv.Load(envpath)
		if err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	err := envconfig.Process(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.KeystorePath == "" {
		cfg.KeystorePath = storage.DefaultKeystoreDir()
	}

	if cfg.FetchConcurrency <= 0 {
		return nil, fmt.Errorf("FETCH_CONCURRENCY must be positive, got %d", cfg.FetchConcurrency)
	}

	daoconf, err := LoadDAO(filepath.Join(confpath, ConfigFile))
	if err != nil {
		return nil, err
	}

	cfg.DAO = daoconf

	return cfg, nil
}

// LoadDAO reads and validates the contract configuration file.
func LoadDAO(path string) (*dao.Config, error) {
	if !storage.Exists(path) {
		return nil, fmt.Errorf("%s not found", path)
	}

	b, err := storage.Read(path)
	if err != nil {
		return nil, err
	}

	daoconf := &dao.Config{}
	err = json.Unmarshal(b, daoconf)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := daoconf.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return daoconf, nil
}

func (c *Config) WalletOptions() wallet.Options {
	return wallet.Options{
		Kind:               wallet.Kind(c.Wallet),
		RPCURL:             c.RPCURL,
		Account:            c.WalletAccount,
		Key:                c.WalletKey,
		KeystorePath:       c.KeystorePath,
		KeystorePassphrase: c.KeystorePassphrase,
		ClefURL:            c.ClefURL,
	}
}

// NetworkName is the display name of the expected network, falling back to the chain id.
func (c *Config) NetworkName() string {
	if c.DAO == nil {
		return ""
	}

	if c.DAO.Network.Name != "" {
		return c.DAO.Network.Name
	}

	return fmt.Sprintf("chain %d", c.DAO.Network.ChainID)
}
