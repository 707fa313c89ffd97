package dao

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

type Contract struct {
	Name    string `json:"name"`
	Symbol  string `json:"symbol,omitempty"`
	Address string `json:"address"`
}

type Network struct {
	Name    string `json:"name"`
	ChainID int64  `json:"chain_id"`
}

// Config describes the contracts the dashboard talks to.
type Config struct {
	DAO        Contract `json:"dao"`
	Membership Contract `json:"membership"`
	Network    Network  `json:"network"`
	Version    int      `json:"version"`
}

func (c *Config) Validate() error {
	if !common.IsHexAddress(c.DAO.Address) {
		return fmt.Errorf("invalid dao address: %q", c.DAO.Address)
	}

	if !common.IsHexAddress(c.Membership.Address) {
		return fmt.Errorf("invalid membership address: %q", c.Membership.Address)
	}

	if c.Network.ChainID <= 0 {
		return fmt.Errorf("invalid chain id: %d", c.Network.ChainID)
	}

	return nil
}

func (c *Config) DAOAddress() common.Address {
	return common.HexToAddress(c.DAO.Address)
}

func (c *Config) MembershipAddress() common.Address {
	return common.HexToAddress(c.Membership.Address)
}
