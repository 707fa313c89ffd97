package version

import (
	"net/http"

	"github.com/govdao/dashboard/internal/common"
	"github.com/govdao/dashboard/pkg/dao"
)

type Service struct {
	network dao.Network
}

func NewService(network dao.Network) *Service {
	return &Service{network: network}
}

type response struct {
	Version string `json:"version"`
	Network string `json:"network"`
	ChainID int64  `json:"chain_id"`
}

// Current returns the current version of the dashboard and the network it expects
func (s *Service) Current(w http.ResponseWriter, r *http.Request) {
	err := common.Body(w, &response{
		Version: dao.Version,
		Network: s.network.Name,
		ChainID: s.network.ChainID,
	}, nil)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}
