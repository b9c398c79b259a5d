package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/highvale/orchard-backend/internal/analytics"
	"github.com/highvale/orchard-backend/internal/pkg/logger"
	"github.com/highvale/orchard-backend/internal/repos"
	"github.com/highvale/orchard-backend/internal/requestdata"
	"github.com/highvale/orchard-backend/internal/types"
	"github.com/highvale/orchard-backend/internal/utils"
)

type UserService interface {
	ListUsers(ctx context.Context) ([]types.User, error)
	InviteUser(ctx context.Context, name, email string, role types.UserRole) (*types.User, error)
	ActivateUser(ctx context.Context, userID uuid.UUID) error
	Summary(ctx context.Context) (*analytics.UserSummary, error)
}

type userService struct {
	db            *gorm.DB
	log           *logger.Logger
	userRepo      repos.UserRepo
	avatarService AvatarService
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo, avatarService AvatarService) UserService {
	return &userService{
		db:            db,
		log:           log.With("service", "UserService"),
		userRepo:      userRepo,
		avatarService: avatarService,
	}
}

var validRoles = map[types.UserRole]bool{
	types.RoleOwner:  true,
	types.RoleEditor: true,
	types.RoleViewer: true,
}

func (us *userService) ListUsers(ctx context.Context) ([]types.User, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, errMissingIdentity()
	}
	return us.userRepo.List(ctx, nil)
}

// InviteUser creates a pending account for a team member. Only owners can
// invite. The account holds a throwaway credential until the member completes
// registration and sets a real password.
func (us *userService) InviteUser(ctx context.Context, name, email string, role types.UserRole) (*types.User, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, errMissingIdentity()
	}
	if rd.Role != string(types.RoleOwner) {
		return nil, validationErrorf("only owners can invite team members")
	}

	email = utils.NormalizeEmail(email)
	if email == "" {
		return nil, validationErrorf("email is required")
	}
	if name == "" {
		return nil, validationErrorf("name is required")
	}
	if role == "" {
		role = types.RoleViewer
	}
	if !validRoles[role] {
		return nil, validationErrorf("unknown role %q", role)
	}

	exists, err := us.userRepo.EmailExists(ctx, nil, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, validationErrorf("email already registered")
	}

	placeholder, err := utils.HashPassword(uuid.New().String())
	if err != nil {
		return nil, fmt.Errorf("hash placeholder password: %w", err)
	}

	user := &types.User{
		ID:       uuid.New(),
		Email:    email,
		Password: placeholder,
		Name:     name,
		Role:     role,
		Status:   types.UserStatusPending,
		JoinDate: time.Now(),
	}

	err = us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := us.userRepo.Create(ctx, tx, []*types.User{user}); err != nil {
			return fmt.Errorf("create invited user: %w", err)
		}
		if err := us.avatarService.CreateUserAvatar(ctx, tx, user); err != nil {
			us.log.Warn("Could not create avatar for invited user", "user_id", user.ID, "error", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (us *userService) ActivateUser(ctx context.Context, userID uuid.UUID) error {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return errMissingIdentity()
	}
	if rd.Role != string(types.RoleOwner) {
		return validationErrorf("only owners can activate team members")
	}
	return us.userRepo.UpdateStatus(ctx, nil, userID, types.UserStatusActive)
}

func (us *userService) Summary(ctx context.Context) (*analytics.UserSummary, error) {
	users, err := us.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	summary := analytics.SummarizeUsers(users)
	return &summary, nil
}
