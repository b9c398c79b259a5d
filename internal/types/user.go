package types

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleOwner  UserRole = "owner"
	RoleEditor UserRole = "editor"
	RoleViewer UserRole = "viewer"
)

type UserStatus string

const (
	UserStatusActive  UserStatus = "active"
	UserStatusPending UserStatus = "pending"
)

type User struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email      string     `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Password   string     `gorm:"not null;column:password" json:"-"`
	Name       string     `gorm:"not null;column:name" json:"name"`
	Role       UserRole   `gorm:"not null;default:viewer;column:role" json:"role"`
	Status     UserStatus `gorm:"not null;default:pending;column:status" json:"status"`
	JoinDate   time.Time  `gorm:"not null;column:join_date" json:"join_date"`
	AvatarPath string     `gorm:"column:avatar_path" json:"avatar_path"`
	CreatedAt  time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"not null" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
