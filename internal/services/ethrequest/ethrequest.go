package ethrequest

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/govdao/dashboard/internal/metrics"
	"github.com/govdao/dashboard/pkg/dao"
)

const (
	ETHChainID               = "eth_chainId"
	ETHGetBalance            = "eth_getBalance"
	ETHGetTransactionReceipt = "eth_getTransactionReceipt"
)

var ErrInvalidChainID = errors.New("invalid chain id")

type EthService struct {
	rpc    *rpc.Client
	client *ethclient.Client
}

func NewEthService(ctx context.Context, endpoint string) (*EthService, error) {
	rpc, err := rpc.DialContext(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	client := ethclient.NewClient(rpc)

	return &EthService{rpc, client}, nil
}

// Dial matches the wallet dialer signature.
func Dial(ctx context.Context, endpoint string) (dao.Provider, error) {
	return NewEthService(ctx, endpoint)
}

func (e *EthService) Close() {
	e.client.Close()
}

func (e *EthService) Backend() bind.ContractBackend {
	return e.client
}

func (e *EthService) ChainID(ctx context.Context) (*big.Int, error) {
	var id string
	err := e.rpc.CallContext(ctx, &id, ETHChainID)
	metrics.ObserveRPC(ETHChainID, err)
	if err != nil {
		return nil, err
	}

	return parseChainID(id)
}

func (e *EthService) BalanceAt(ctx context.Context, account common.Address) (*big.Int, error) {
	balance, err := e.client.BalanceAt(ctx, account, nil)
	metrics.ObserveRPC(ETHGetBalance, err)

	return balance, err
}

// WaitForTx blocks until tx is mined and fails if the receipt reports a revert.
func (e *EthService) WaitForTx(ctx context.Context, tx *types.Transaction) error {
	rcpt, err := bind.WaitMined(ctx, e.client, tx)
	metrics.ObserveRPC(ETHGetTransactionReceipt, err)
	if err != nil {
		return err
	}

	if rcpt.Status != types.ReceiptStatusSuccessful {
		return dao.ErrTxFailed
	}

	return nil
}

func parseChainID(id string) (*big.Int, error) {
	chid, ok := big.NewInt(0).SetString(evenHex(strip0x(id)), 16)
	if !ok {
		return nil, ErrInvalidChainID
	}

	return chid, nil
}

func strip0x(h string) string {
	if len(h) > 2 && h[:2] == "0x" {
		return h[2:]
	}

	return h
}

func evenHex(h string) string {
	if len(h)%2 == 0 {
		return h
	}

	return "0" + h
}
