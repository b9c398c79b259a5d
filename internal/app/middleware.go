package app

import (
	"github.com/highvale/orchard-backend/internal/middleware"
	"github.com/highvale/orchard-backend/internal/pkg/logger"
)

type Middleware struct {
	Auth *middleware.AuthMiddleware
}

func wireMiddleware(log *logger.Logger, s Services) Middleware {
	return Middleware{
		Auth: middleware.NewAuthMiddleware(log, s.Auth),
	}
}
