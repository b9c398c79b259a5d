package app

import (
	"fmt"

	"github.com/highvale/orchard-backend/internal/clients/redis"
	"github.com/highvale/orchard-backend/internal/pkg/logger"
)

type Clients struct {
	TokenStore redis.TokenStore
}

func wireClients(log *logger.Logger) (Clients, error) {
	tokenStore, err := redis.NewTokenStore(log)
	if err != nil {
		return Clients{}, fmt.Errorf("init redis token store: %w", err)
	}
	return Clients{TokenStore: tokenStore}, nil
}
