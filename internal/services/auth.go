package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/highvale/orchard-backend/internal/clients/redis"
	"github.com/highvale/orchard-backend/internal/pkg/logger"
	"github.com/highvale/orchard-backend/internal/repos"
	"github.com/highvale/orchard-backend/internal/requestdata"
	"github.com/highvale/orchard-backend/internal/types"
	"github.com/highvale/orchard-backend/internal/utils"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user *types.User) error
	LoginUser(ctx context.Context, email, password string) (string, string, error)
	RefreshUser(ctx context.Context, refreshToken string) (string, string, error)
	LogoutUser(ctx context.Context, refreshToken string) error
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
}

type authService struct {
	db            *gorm.DB
	log           *logger.Logger
	userRepo      repos.UserRepo
	avatarService AvatarService
	tokenStore    redis.TokenStore
	jwtSecretKey  string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewAuthService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo repos.UserRepo,
	avatarService AvatarService,
	tokenStore redis.TokenStore,
	jwtSecretKey string,
	accessTTL time.Duration,
	refreshTTL time.Duration,
) AuthService {
	return &authService{
		db:            db,
		log:           log.With("service", "AuthService"),
		userRepo:      userRepo,
		avatarService: avatarService,
		tokenStore:    tokenStore,
		jwtSecretKey:  jwtSecretKey,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (as *authService) RegisterUser(ctx context.Context, user *types.User) error {
	user.Email = utils.NormalizeEmail(user.Email)
	if user.Email == "" {
		return validationErrorf("email is required")
	}
	if user.Name == "" {
		return validationErrorf("name is required")
	}

	exists, err := as.userRepo.EmailExists(ctx, nil, user.Email)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if exists {
		return validationErrorf("email already registered")
	}

	hashed, err := utils.HashPassword(user.Password)
	if err != nil {
		return validationErrorf("%v", err)
	}
	user.Password = hashed

	return as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user.ID = uuid.New()
		user.JoinDate = time.Now()
		if user.Role == "" {
			user.Role = types.RoleOwner
		}
		user.Status = types.UserStatusActive

		if _, err := as.userRepo.Create(ctx, tx, []*types.User{user}); err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		if err := as.avatarService.CreateUserAvatar(ctx, tx, user); err != nil {
			// Avatar is cosmetic, registration still succeeds without one.
			as.log.Warn("Could not create user avatar", "user_id", user.ID, "error", err)
		}
		return nil
	})
}

func (as *authService) LoginUser(ctx context.Context, email, password string) (string, string, error) {
	email = utils.NormalizeEmail(email)
	if email == "" || password == "" {
		return "", "", validationErrorf("email and password are required")
	}

	users, err := as.userRepo.GetByEmails(ctx, nil, []string{email})
	if err != nil {
		return "", "", fmt.Errorf("look up user: %w", err)
	}
	if len(users) == 0 {
		return "", "", validationErrorf("invalid email or password")
	}
	user := users[0]

	if err := utils.CheckPassword(user.Password, password); err != nil {
		return "", "", validationErrorf("invalid email or password")
	}
	if user.Status == types.UserStatusPending {
		return "", "", validationErrorf("account is pending activation")
	}

	accessToken, err := as.generateAccessToken(user)
	if err != nil {
		return "", "", fmt.Errorf("generate access token: %w", err)
	}

	refreshToken := uuid.New().String()
	if err := as.tokenStore.SaveRefreshToken(ctx, refreshToken, user.ID, as.refreshTTL); err != nil {
		return "", "", fmt.Errorf("save refresh token: %w", err)
	}

	return accessToken, refreshToken, nil
}

// RefreshUser rotates the refresh token: the presented one is spent whether
// or not issuing the replacement succeeds.
func (as *authService) RefreshUser(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", validationErrorf("refresh token is required")
	}

	userID, err := as.tokenStore.ResolveRefreshToken(ctx, refreshToken)
	if err != nil {
		return "", "", validationErrorf("invalid refresh token")
	}
	if err := as.tokenStore.DeleteRefreshToken(ctx, refreshToken); err != nil {
		as.log.Warn("Could not delete spent refresh token", "error", err)
	}

	users, err := as.userRepo.GetByIDs(ctx, nil, []uuid.UUID{userID})
	if err != nil {
		return "", "", fmt.Errorf("look up user: %w", err)
	}
	if len(users) == 0 {
		return "", "", validationErrorf("user no longer exists")
	}
	user := users[0]

	accessToken, err := as.generateAccessToken(user)
	if err != nil {
		return "", "", fmt.Errorf("generate access token: %w", err)
	}
	newRefresh := uuid.New().String()
	if err := as.tokenStore.SaveRefreshToken(ctx, newRefresh, user.ID, as.refreshTTL); err != nil {
		return "", "", fmt.Errorf("save refresh token: %w", err)
	}

	return accessToken, newRefresh, nil
}

func (as *authService) LogoutUser(ctx context.Context, refreshToken string) error {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return errMissingIdentity()
	}
	if refreshToken != "" {
		if err := as.tokenStore.DeleteRefreshToken(ctx, refreshToken); err != nil {
			as.log.Warn("Could not delete refresh token on logout", "error", err)
		}
	}
	return as.tokenStore.DeleteUserTokens(ctx, rd.UserID)
}

type accessClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (as *authService) generateAccessToken(user *types.User) (string, error) {
	now := time.Now()
	claims := accessClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(as.accessTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.jwtSecretKey))
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil || !token.Valid {
		return ctx, fmt.Errorf("invalid token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, fmt.Errorf("invalid token subject")
	}

	return requestdata.WithRequestData(ctx, &requestdata.RequestData{
		TokenString: tokenString,
		UserID:      userID,
		Role:        claims.Role,
	}), nil
}
