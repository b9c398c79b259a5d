package app

import (
	"strings"
	"time"

	"github.com/highvale/orchard-backend/internal/pkg/logger"
	"github.com/highvale/orchard-backend/internal/utils"
)

type Config struct {
	JWTSecretKey    string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	AllowedOrigins  []string
	VarietiesPath   string
	RotationsPath   string
	Environment     string
	Version         string
}

func LoadConfig(log *logger.Logger) Config {
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTLSeconds := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTLSeconds := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)
	origins := utils.GetEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173", log)
	varietiesPath := utils.GetEnv("VARIETIES_PATH", "config/varieties.yaml", log)
	rotationsPath := utils.GetEnv("ROTATIONS_PATH", "config/rotations.yaml", log)
	environment := utils.GetEnv("ENVIRONMENT", "development", log)
	version := utils.GetEnv("APP_VERSION", "dev", log)

	return Config{
		JWTSecretKey:    jwtSecretKey,
		AccessTokenTTL:  time.Duration(accessTokenTTLSeconds) * time.Second,
		RefreshTokenTTL: time.Duration(refreshTokenTTLSeconds) * time.Second,
		AllowedOrigins:  splitOrigins(origins),
		VarietiesPath:   varietiesPath,
		RotationsPath:   rotationsPath,
		Environment:     environment,
		Version:         version,
	}
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			origins = append(origins, part)
		}
	}
	return origins
}
