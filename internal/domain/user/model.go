package user

import "time"

type Role string

const (
	RoleAdmin        Role = "ADMIN"
	RoleProjectOwner Role = "PROJECT_OWNER"
	RoleInvestor     Role = "INVESTOR"
	RoleAccelerator  Role = "ACCELERATOR"
)

// ValidRole reports whether r is one of the platform roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleProjectOwner, RoleInvestor, RoleAccelerator:
		return true
	}
	return false
}

type User struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Email           string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash    string    `gorm:"size:255;not null" json:"-"`
	FirstName       *string   `gorm:"size:100" json:"first_name"`
	LastName        *string   `gorm:"size:100" json:"last_name"`
	Role            Role      `gorm:"type:user_role;default:'PROJECT_OWNER';not null" json:"role"`
	IsEmailVerified bool      `gorm:"default:false" json:"is_email_verified"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
